// Package taxonomy maps HRSC2016 ship classes across the three granularity
// levels of the hierarchy.
//
// Level 3 (fine) has 31 classes, each paired with a two-digit id; the full
// class identifier found in source annotations is the constant prefix
// "1000000" followed by that id. Level 2 (coarse) merges the fine classes
// into four groups via an ordered keyword cascade, and level 1 (root) is the
// single class "ship". All lookup tables are built once at load time and are
// read-only afterwards.
package taxonomy

import (
	"regexp"
	"strings"

	"github.com/suker799/ReDet-v1/pkg/types"
)

// Fallback is the class name every unresolved lookup falls back to. The
// converter also uses it as the "could not merge" sentinel for level 2.
const Fallback = "ship"

// idPrefix is the constant leading part of every full class identifier.
const idPrefix = "1000000"

// fineNames lists the 31 fine-grained class names in table order. Several
// legacy names carry spaces and punctuation verbatim from the source
// annotations.
var fineNames = []string{
	"ship", "aircraft carrier", "warcraft", "merchant ship",
	"Nimitz", "Enterprise", "Arleigh Burke", "WhidbeyIsland",
	"Perry", "Sanantonio", "Ticonderoga", "Kitty Hawk",
	"Kuznetsov", "Abukuma", "Austen", "Tarawa", "Blue Ridge",
	"Container", "OXo|--)", "Car carrier([]==[])",
	"Hovercraft", "yacht", "CntShip(_|.--.--|_]=", "Cruise",
	"submarine", "lute", "Medical", "Car carrier(======|",
	"Ford-class", "Midway-class", "Invincible-class",
}

// fineIDs pairs each fine name with its two-digit id. The sequence is not
// contiguous: some ids were never assigned in the source dataset.
var fineIDs = []string{
	"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12",
	"13", "14", "15", "16", "17", "18", "19", "20", "22", "24", "25", "26",
	"27", "28", "29", "30", "31", "32", "33",
}

// coarseNames lists the four level-2 classes in category order.
var coarseNames = []string{"aircraft carrier", "warship", "merchant ship", "submarine"}

// sanitizedFineNames is the fixed token-safe form of fineNames, in the same
// order. It is maintained by hand rather than derived: the two "Car carrier"
// variants sanitize to the same token, so the second is disambiguated as
// car_carrier_eq.
var sanitizedFineNames = []string{
	"ship", "aircraft_carrier", "warcraft", "merchant_ship", "nimitz", "enterprise",
	"arleigh_burke", "whidbeyisland", "perry", "sanantonio", "ticonderoga",
	"kitty_hawk", "kuznetsov", "abukuma", "austen", "tarawa", "blue_ridge",
	"container", "oxo", "car_carrier", "hovercraft", "yacht", "cntship", "cruise",
	"submarine", "lute", "medical", "car_carrier_eq", "ford_class", "midway_class",
	"invincible_class",
}

// fullIDToName maps full class identifiers ("1000000"+two-digit id) to fine
// names.
var fullIDToName = func() map[string]string {
	m := make(map[string]string, len(fineNames))
	for i, id := range fineIDs {
		m[idPrefix+id] = fineNames[i]
	}
	return m
}()

// Keyword sets for the level-2 merge cascade. Ship-class model names are
// grouped by the vessel type they belong to.
var (
	carrierKeywords = []string{
		"nimitz", "enterprise", "kitty hawk", "kuznetsov",
		"ford-class", "midway-class", "invincible-class",
	}
	warshipKeywords = []string{
		"arleigh burke", "whidbeyisland", "perry", "sanantonio",
		"ticonderoga", "abukuma", "austen", "tarawa", "blue ridge",
	}
	merchantKeywords = []string{
		"container", "cntship", "car carrier", "cruise", "yacht",
		"hovercraft", "medical", "lute", "oxo|--)",
	}
)

// FineNameForID resolves a full class identifier to its fine-grained name.
// Identifiers outside the table resolve to the fallback name; the lookup
// never fails.
func FineNameForID(fullID string) string {
	if name, ok := fullIDToName[strings.TrimSpace(fullID)]; ok {
		return name
	}
	return Fallback
}

// CoarseNameForFine merges a fine-grained name into one of the four coarse
// classes. Rules are tried in order, so any name containing "carrier" is an
// aircraft carrier before the model-keyword sets are consulted. Names that no
// rule covers fall back to "ship", which the converter treats as the
// unresolved sentinel.
func CoarseNameForFine(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))

	if strings.Contains(n, "submarine") {
		return "submarine"
	}
	if strings.Contains(n, "aircraft carrier") || strings.Contains(n, "carrier") {
		return "aircraft carrier"
	}
	if n == "warcraft" {
		return "warship"
	}
	if n == "merchant ship" {
		return "merchant ship"
	}

	if containsAny(n, carrierKeywords) {
		return "aircraft carrier"
	}
	if containsAny(n, warshipKeywords) {
		return "warship"
	}
	if containsAny(n, merchantKeywords) {
		return "merchant ship"
	}

	return Fallback
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

var (
	nonTokenRe    = regexp.MustCompile(`[^0-9a-zA-Z_]+`)
	underscoresRe = regexp.MustCompile(`_+`)
)

// Sanitize canonicalizes a class name into a token-safe identifier: lower
// case, spaces to underscores, runs of other symbols collapsed to a single
// underscore, leading and trailing underscores stripped. An empty result
// defaults to the fallback name.
func Sanitize(name string) string {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	s = nonTokenRe.ReplaceAllString(s, "_")
	s = underscoresRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return Fallback
	}
	return s
}

// FineNames returns the fine-grained class names in table order.
func FineNames() []string {
	return append([]string(nil), fineNames...)
}

// CoarseNames returns the four coarse class names in category order.
func CoarseNames() []string {
	return append([]string(nil), coarseNames...)
}

// SanitizedFineNames returns the token-safe fine class names in table order.
func SanitizedFineNames() []string {
	return append([]string(nil), sanitizedFineNames...)
}

// NamesForLevel returns the category name list the assembler uses for a
// level. For level 3 the sanitized variant is selected when the labelTxt set
// was produced with sanitization enabled.
func NamesForLevel(level types.Level, sanitized bool) []string {
	switch level {
	case types.L1:
		return []string{Fallback}
	case types.L2:
		return CoarseNames()
	default:
		if sanitized {
			return SanitizedFineNames()
		}
		return FineNames()
	}
}
