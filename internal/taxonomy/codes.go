// Package taxonomy handles the classification codes (art types and time
// periods) referenced by art entries, including normalization of display
// names into codes and resolution of legacy form values.
package taxonomy

import (
	"errors"
	"regexp"
	"strings"
)

// Defaults used when a caller chooses to coerce an unresolvable value
// instead of rejecting it.
const (
	DefaultType   = "other"
	DefaultPeriod = "contemporary"
)

// ErrUnknownCode reports a value that maps to no known taxonomy code. The
// caller decides whether to reject the input or fall back to a default;
// resolution never coerces silently.
var ErrUnknownCode = errors.New("unknown taxonomy code")

var nonAlnum = regexp.MustCompile(`[^a-z0-9 ]`)

// NormalizeCode derives a storage code from a display name: lowercased,
// non-alphanumerics stripped, spaces collapsed to underscores.
// "Wood Carving" becomes "wood_carving".
func NormalizeCode(name string) string {
	code := strings.ToLower(strings.TrimSpace(name))
	code = nonAlnum.ReplaceAllString(code, "")
	code = strings.Join(strings.Fields(code), "_")
	return code
}

// The original submission form posts numeric option values. These maps carry
// them onto taxonomy codes for backward compatibility.
var legacyTypeValues = map[string]string{
	"1": "rock_art",     // Cave Art
	"2": "rock_art",     // Rock Art
	"3": "contemporary", // Mural
	"4": "sculpture",    // Sculpture
	"5": "contemporary", // Installation
	"6": "contemporary", // Gallery Piece
}

var legacyPeriodValues = map[string]string{
	"1": "ancient",      // Pre-colonial
	"2": "historical",   // Colonial era
	"3": "contemporary", // 20th century
	"4": "contemporary", // 21st century
}

var seededTypes = map[string]bool{
	"rock_art":     true,
	"sculpture":    true,
	"contemporary": true,
	"other":        true,
}

var seededPeriods = map[string]bool{
	"ancient":      true,
	"historical":   true,
	"contemporary": true,
}

// ResolveType maps a client-supplied art type value (legacy numeric form
// value or a code) onto a taxonomy code. Values outside the seeded set
// return ErrUnknownCode; callers with access to the taxonomy table may still
// accept admin-added codes before falling back.
func ResolveType(input string) (string, error) {
	v := strings.TrimSpace(input)
	if code, ok := legacyTypeValues[v]; ok {
		return code, nil
	}
	if seededTypes[v] {
		return v, nil
	}
	return "", ErrUnknownCode
}

// ResolvePeriod is the time-period counterpart of ResolveType.
func ResolvePeriod(input string) (string, error) {
	v := strings.TrimSpace(input)
	if code, ok := legacyPeriodValues[v]; ok {
		return code, nil
	}
	if seededPeriods[v] {
		return v, nil
	}
	return "", ErrUnknownCode
}
