// Package affiliation classifies free-text golf club names against a
// known organizational identity despite spelling and abbreviation
// variance. Matching is best-effort: the normalized input matches when
// it contains a known variant as a substring, or a variant contains the
// input ("club" typed against "Karen Country Club" matches both ways).
package affiliation

import "strings"

// DefaultVariants covers the host club spellings seen on registration
// forms. Deployments override the list in config.
var DefaultVariants = []string{
	"karen country club",
	"karen golf club",
	"karen country",
	"karen cc",
	"karen c.c.",
	"kcc",
	"karen",
}

// Normalizer matches free-text affiliation strings against a variant list
type Normalizer struct {
	variants []string
}

// NewNormalizer creates a Normalizer from the given variant list,
// lower-casing and trimming each entry. An empty list falls back to
// DefaultVariants.
func NewNormalizer(variants []string) *Normalizer {
	if len(variants) == 0 {
		variants = DefaultVariants
	}
	normalized := make([]string, 0, len(variants))
	for _, v := range variants {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			normalized = append(normalized, v)
		}
	}
	return &Normalizer{variants: normalized}
}

// IsKnownAffiliate reports whether the raw club name resolves to the
// known identity. Empty input never matches.
func (n *Normalizer) IsKnownAffiliate(raw string) bool {
	input := strings.ToLower(strings.TrimSpace(raw))
	if input == "" {
		return false
	}
	for _, variant := range n.variants {
		if strings.Contains(input, variant) || strings.Contains(variant, input) {
			return true
		}
	}
	return false
}
