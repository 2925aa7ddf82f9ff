package goodrouter

import (
	"errors"

	"github.com/goodrouter/goodrouter/core/rtn"
)

// Failures surfaced by InsertRoute and StringifyRoute. All are returned
// wrapped with the offending name, template or parameter, so match them
// with errors.Is. A path that matches no route is not an error; ParseRoute
// reports that with a false result instead.
var (
	ErrInvalidTemplate    = rtn.ErrInvalidTemplate
	ErrAmbiguousRoute     = rtn.ErrAmbiguousRoute
	ErrDuplicateRouteName = errors.New("duplicate route name")
	ErrUnknownRouteName   = errors.New("unknown route name")
	ErrMissingParameter   = errors.New("missing parameter value")
)
