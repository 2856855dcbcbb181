package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var priceNumberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// ParsePrice extracts the leading numeric value from a free-form price
// string ("24£", "€29.90", "30,50 EUR"). Empty means free; a non-empty
// string with no number is treated as infinitely expensive so budget
// filters drop it.
func ParsePrice(price string) float64 {
	if strings.TrimSpace(price) == "" {
		return 0
	}
	match := priceNumberRe.FindString(strings.ReplaceAll(price, ",", "."))
	if match == "" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}
