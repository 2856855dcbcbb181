package services

import (
	"strings"
)

// matchStopWords are generic travel nouns and articles that carry no signal
// when comparing place names across languages.
var matchStopWords = map[string]struct{}{
	"the": {}, "de": {}, "la": {}, "el": {}, "di": {}, "da": {},
	"basilica": {}, "church": {}, "museum": {}, "palace": {}, "tower": {},
	"square": {}, "plaza": {}, "park": {}, "garden": {},
}

// placeNamesSimilar decides whether two place names refer to the same place.
// Exact match and substring containment count; otherwise the significant
// tokens of the shorter name must overlap the other's by at least half.
func placeNamesSimilar(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	ta := significantTokens(na)
	tb := significantTokens(nb)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}

	overlap := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			overlap++
		}
	}

	min := len(ta)
	if len(tb) < min {
		min = len(tb)
	}
	return float64(overlap) >= 0.5*float64(min)
}

func significantTokens(name string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(name) {
		tok = strings.Trim(tok, ".,()'\"")
		if tok == "" {
			continue
		}
		if _, stop := matchStopWords[tok]; stop {
			continue
		}
		tokens[tok] = struct{}{}
	}
	return tokens
}
