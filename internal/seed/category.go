// Package seed holds the canned content: the showcase templates cloned in
// when a subdomain project's category changes, and the default document a
// fresh install starts from.
package seed

// Category discriminates which showcase template a subdomain project uses.
type Category string

const (
	CategoryMobileApp Category = "mobile-app"
	CategoryEcommerce Category = "ecommerce"
	CategoryGame      Category = "game"
	CategorySaaS      Category = "saas"
	CategorySocial    Category = "social"
)

// ParseCategory normalizes a raw category string. "website" is a legacy
// alias for the social template; anything unrecognized falls back to
// mobile-app so a category change can never fail outright.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryMobileApp, CategoryEcommerce, CategoryGame, CategorySaaS, CategorySocial:
		return Category(raw)
	}
	if raw == "website" {
		return CategorySocial
	}
	return CategoryMobileApp
}

// Categories returns all recognized category values in display order.
func Categories() []Category {
	return []Category{CategoryMobileApp, CategoryEcommerce, CategoryGame, CategorySaaS, CategorySocial}
}
