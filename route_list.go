package goodrouter

// RouteList represents a registered route for debugging and inspection
// purposes: route table visualization, diagnosing template conflicts,
// generating documentation.
type RouteList struct {
	Name     string
	Template string
}

// Routes lists the registered routes in registration order.
func (r *Router) Routes() []RouteList {
	routes := make([]RouteList, 0, len(r.order))
	for _, name := range r.order {
		routes = append(routes, RouteList{Name: name, Template: r.templates[name]})
	}
	return routes
}
