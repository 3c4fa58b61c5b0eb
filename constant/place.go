package constant

import "strings"

const (
	CategoryShop       = "shop"
	CategoryDoctor     = "doctor"
	CategoryRestaurant = "restaurant"
	CategoryOther      = "other"
)

var placeCategories = map[string]struct{}{
	CategoryShop:       {},
	CategoryDoctor:     {},
	CategoryRestaurant: {},
	CategoryOther:      {},
}

// NormalizeCategory lowercases the input, defaulting to "other" when the
// value is blank. A non-blank value outside the known set is rejected; the
// second return reports whether the input was acceptable.
func NormalizeCategory(category string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return CategoryOther, true
	}
	if _, ok := placeCategories[c]; !ok {
		return "", false
	}
	return c, true
}