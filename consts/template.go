// Package consts holds the characters of the route template syntax, shared
// by the template compiler and the tests.
package consts

const (
	// RuneLeftBrace opens a parameter placeholder, e.g. {id}.
	RuneLeftBrace = byte('{')
	// RuneRightBrace closes a parameter placeholder.
	RuneRightBrace = byte('}')
	// RuneFwdSlash separates path segments. The matcher itself is not
	// segment aware; the slash matters only as the usual literal boundary
	// that ends a parameter capture.
	RuneFwdSlash = byte('/')
)
