package goodrouter

// Route is a route instance: a route name plus concrete parameter values,
// in template order. ParseRoute produces routes; StringifyRoute consumes
// them. Parameter keys must be unique within one route.
type Route struct {
	Name       string
	Parameters []Parameter
}

// Param returns the value bound to the given parameter name.
func (r Route) Param(key string) (string, bool) {
	for _, p := range r.Parameters {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
