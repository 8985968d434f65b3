package xmlscan

import (
	"github.com/mrjoshuak/xmlscan/internal/scanner"
	"github.com/mrjoshuak/xmlscan/types"
)

// Result is the outcome of locating one element.
// Its Next field is the scan cursor for a follow-up call.
type Result = types.Result

// Outcome tags a Result as Found, NoContent, NotFound or Malformed.
type Outcome = types.Outcome

// Outcomes reported by the scanning functions.
const (
	NotFound  = types.NotFound
	Found     = types.Found
	NoContent = types.NoContent
	Malformed = types.Malformed
)

// Errors returned by Result.Err. ErrUnterminatedTag and ErrUnclosedElement
// both wrap ErrMalformed.
var (
	ErrNotFound        = types.ErrNotFound
	ErrMalformed       = types.ErrMalformed
	ErrUnterminatedTag = types.ErrUnterminatedTag
	ErrUnclosedElement = types.ErrUnclosedElement
	ErrNoContent       = types.ErrNoContent
)

// IsNameChar reports whether c may appear in an element name: ASCII letters
// and digits, ':', '-' and '_'.
func IsNameChar(c byte) bool {
	return scanner.IsNameChar(c)
}

// BuildInfo contains version and build information for the xmlscan library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information for the xmlscan library.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the xmlscan library.
var Version = types.Version
