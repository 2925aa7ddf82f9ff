package rtn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goodrouter/goodrouter/consts"
)

// Registration-time failures. Both are returned wrapped with the offending
// template or route names, so match with errors.Is.
var (
	ErrInvalidTemplate = errors.New("invalid route template")
	ErrAmbiguousRoute  = errors.New("ambiguous route")
)

// TemplatePair is one step of a compiled route template: an optional
// parameter placeholder followed by the literal anchor that runs up to the
// next placeholder or the end of the template.
type TemplatePair struct {
	Anchor       string
	Parameter    string
	HasParameter bool
}

// ParseTemplatePairs compiles a route template into its pair sequence.
// The first pair never carries a parameter:
//
//	"/a/{b}/{c}"  ->  ("/a/", -) ("/", b) ("", c)
//	""            ->  ("", -)
//
// Concatenating {parameter} plus anchor over all pairs reconstructs the
// template. Placeholders cannot be escaped; a '{' in literal text always
// starts one.
func ParseTemplatePairs(template string) ([]TemplatePair, error) {
	var pairs []TemplatePair
	var seen map[string]bool

	rest := template
	pair := TemplatePair{}

	for {
		open := strings.IndexByte(rest, consts.RuneLeftBrace)
		if open < 0 {
			pair.Anchor = rest
			return append(pairs, pair), nil
		}

		closing := strings.IndexByte(rest[open:], consts.RuneRightBrace)
		if closing < 0 {
			return nil, fmt.Errorf("%w: unterminated parameter placeholder in %q", ErrInvalidTemplate, template)
		}

		name := rest[open+1 : open+closing]
		if name == "" {
			return nil, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidTemplate, template)
		}
		if strings.IndexByte(name, consts.RuneLeftBrace) >= 0 {
			return nil, fmt.Errorf("%w: unterminated parameter placeholder in %q", ErrInvalidTemplate, template)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: parameter %q appears twice in %q", ErrInvalidTemplate, name, template)
		}
		if seen == nil {
			seen = make(map[string]bool)
		}
		seen[name] = true

		pair.Anchor = rest[:open]
		pairs = append(pairs, pair)

		pair = TemplatePair{Parameter: name, HasParameter: true}
		rest = rest[open+closing+1:]
	}
}
