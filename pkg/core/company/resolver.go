// Package company maps report short codes to the display names used in the
// report collection.
package company

import (
	"fmt"
	"sort"
)

// displayNames is keyed by the lowercase cid used in case files.
var displayNames = map[string]string{
	"alchip":     "Alchip",
	"esun":       "E.SUN",
	"fpcc":       "FPCC",
	"gtg":        "GTG",
	"inx":        "INX",
	"kye":        "KYE",
	"largan":     "LARGAN",
	"mfhc":       "MFHC",
	"npc":        "NPC",
	"pegavision": "pegavision",
	"psi":        "PSI",
	"spt":        "SPT",
	"standard":   "Standard",
	"tcfh":       "TCFH",
	"tsmc":       "TSMC",
}

// UnknownIdentifierError is returned for a cid outside the table.
type UnknownIdentifierError struct {
	Code string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown document identifier: %q", e.Code)
}

// Resolve returns the display name for code. Matching is exact; there is no
// fallback name.
func Resolve(code string) (string, error) {
	name, ok := displayNames[code]
	if !ok {
		return "", &UnknownIdentifierError{Code: code}
	}
	return name, nil
}

// Codes returns every known cid in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(displayNames))
	for code := range displayNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
