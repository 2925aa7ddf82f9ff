// Package goodrouter is a framework-agnostic route registry: it maps between
// route names and path templates with {name} parameter placeholders,
// supporting two inverse operations. ParseRoute resolves a concrete path to
// a route name plus extracted parameter values, preferring literal matches
// over parameter captures; StringifyRoute substitutes values back into the
// named route's template. The registry performs no dispatch and no I/O.
package goodrouter

import (
	"fmt"

	"github.com/goodrouter/goodrouter/core/rtn"
)

const defaultMaximumParameterValueLength = 20

// Router owns the compiled route tree and the name lookup tables.
//
// InsertRoute is the only mutating operation and is not synchronized; build
// the route table up front, after which the Router is safe for concurrent
// ParseRoute, StringifyRoute and Routes calls.
type Router struct {
	root        rtn.Node
	leaves      map[string]*rtn.Node
	templates   map[string]string
	order       []string
	staticPaths map[string]string // exact path to route name, for parameterless templates

	maximumParameterValueLength int
	parameterValueEncoder       func(string) string
	parameterValueDecoder       func(string) string
}

// RouterOptions tunes a Router. The zero value of every field keeps its
// default.
type RouterOptions struct {
	// MaximumParameterValueLength bounds how far a single parameter capture
	// scans for its literal continuation, in bytes. Defaults to 20.
	MaximumParameterValueLength int

	// ParameterValueEncoder transforms each parameter value during
	// StringifyRoute; ParameterValueDecoder is its inverse, applied to each
	// captured value during ParseRoute. Both default to identity: values
	// are substituted verbatim, with no escaping or validation.
	ParameterValueEncoder func(string) string
	ParameterValueDecoder func(string) string
}

// NewRouter creates an empty route registry.
func NewRouter(options ...RouterOptions) *Router {
	r := &Router{
		leaves:      make(map[string]*rtn.Node),
		templates:   make(map[string]string),
		staticPaths: make(map[string]string),

		maximumParameterValueLength: defaultMaximumParameterValueLength,
	}

	if len(options) == 1 {
		opts := options[0]
		if opts.MaximumParameterValueLength > 0 {
			r.maximumParameterValueLength = opts.MaximumParameterValueLength
		}
		r.parameterValueEncoder = opts.ParameterValueEncoder
		r.parameterValueDecoder = opts.ParameterValueDecoder
	}

	return r
}

// InsertRoute registers template under name. Registration is all-or-nothing:
// a rejected template leaves matching behavior unchanged. Re-registering a
// name, even with the identical template, fails with ErrDuplicateRouteName;
// registering a second template that accepts exactly the same paths as an
// earlier one fails with ErrAmbiguousRoute.
//
// Adjacent parameters with no literal text between them ("{a}{b}") compile,
// but the first parameter captures through the end of the path, so such a
// route can never match. Register a literal separator between parameters.
func (r *Router) InsertRoute(name string, template string) error {
	if _, exists := r.leaves[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRouteName, name)
	}

	leaf, err := r.root.Insert(name, template)
	if err != nil {
		return err
	}

	r.leaves[name] = leaf
	r.templates[name] = template
	r.order = append(r.order, name)

	if len(leaf.RouteParameterNames()) == 0 {
		r.staticPaths[template] = name
	}

	return nil
}

// ParseRoute matches path against the registered templates. The boolean is
// false when no template matches, which is a routine outcome rather than an
// error. Among all templates that could match, the one preferring literal
// continuations over parameter captures at every position wins. Parameter
// values are returned in template order.
func (r *Router) ParseRoute(path string) (Route, bool) {
	// Exact hit on a parameterless template needs no tree walk; a full
	// literal match is always the most specific one.
	if name, ok := r.staticPaths[path]; ok {
		return Route{Name: name}, true
	}

	leaf, values := r.root.Parse(path, r.maximumParameterValueLength)
	if leaf == nil {
		return Route{}, false
	}

	name, _ := leaf.RouteName()
	route := Route{Name: name}

	names := leaf.RouteParameterNames()
	if len(names) > 0 {
		route.Parameters = make([]Parameter, len(names))
		for i, key := range names {
			value := values[i]
			if r.parameterValueDecoder != nil {
				value = r.parameterValueDecoder(value)
			}
			route.Parameters[i] = Parameter{Key: key, Value: value}
		}
	}

	return route, true
}

// StringifyRoute rebuilds the concrete path for route from its name and
// parameter values. Values are substituted verbatim unless an encoder is
// configured; no URL escaping or validation is applied.
func (r *Router) StringifyRoute(route Route) (string, error) {
	leaf, ok := r.leaves[route.Name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRouteName, route.Name)
	}

	names := leaf.RouteParameterNames()
	values := make([]string, len(names))
	for i, key := range names {
		value, ok := route.Param(key)
		if !ok {
			return "", fmt.Errorf("%w: route %q requires %q", ErrMissingParameter, route.Name, key)
		}
		if r.parameterValueEncoder != nil {
			value = r.parameterValueEncoder(value)
		}
		values[i] = value
	}

	return leaf.Stringify(values), nil
}
