package seed

import "github.com/google/uuid"

// templates maps each category to a fully populated sample project. The
// clone keeps all of this except identity: id is regenerated and
// name/subdomain are blanked so the admin has to supply their own.
var templates = map[Category]map[string]any{
	CategoryMobileApp: {
		"category":    string(CategoryMobileApp),
		"title":       "Fitness Tracking App",
		"tagline":     "Your workouts, measured and motivating",
		"description": "A cross-platform fitness companion with workout plans, progress charts, and social challenges. Built to demonstrate a polished mobile product page.",
		"features": []any{
			"Personalized workout plans",
			"Progress tracking with weekly charts",
			"Apple Health and Google Fit sync",
			"Social challenges with friends",
		},
		"techStack":   []any{"React Native", "TypeScript", "Node.js", "PostgreSQL"},
		"screenshots": []any{"/uploads/samples/fitness-home.png", "/uploads/samples/fitness-stats.png", "/uploads/samples/fitness-social.png"},
		"accentColor": "#34d399",
		"metadata": map[string]any{
			"metaTitle":       "Fitness Tracking App — Case Study",
			"metaDescription": "Mobile app case study: cross-platform fitness tracking with social challenges.",
			"keywords":        []any{"mobile app", "fitness", "react native"},
		},
	},
	CategoryEcommerce: {
		"category":    string(CategoryEcommerce),
		"title":       "Artisan Goods Store",
		"tagline":     "Handmade products, hand-built storefront",
		"description": "A boutique e-commerce storefront with product browsing, cart, checkout, and order tracking. Shows a complete shopping flow end to end.",
		"features": []any{
			"Product catalog with filtering",
			"Cart and one-page checkout",
			"Stripe payment integration",
			"Order history and tracking",
		},
		"techStack":   []any{"Next.js", "Stripe", "Tailwind CSS", "Prisma"},
		"screenshots": []any{"/uploads/samples/store-catalog.png", "/uploads/samples/store-product.png", "/uploads/samples/store-checkout.png"},
		"accentColor": "#f59e0b",
		"metadata": map[string]any{
			"metaTitle":       "Artisan Goods Store — Case Study",
			"metaDescription": "E-commerce case study: boutique storefront with full checkout flow.",
			"keywords":        []any{"ecommerce", "storefront", "stripe"},
		},
	},
	CategoryGame: {
		"category":    string(CategoryGame),
		"title":       "Orbital Drift",
		"tagline":     "A physics puzzler set in deep space",
		"description": "A browser game landing page with trailer, mechanics overview, and leaderboard. Demonstrates a playful, high-motion product site.",
		"features": []any{
			"60fps WebGL rendering",
			"Procedurally generated levels",
			"Global leaderboards",
			"Gamepad and touch support",
		},
		"techStack":   []any{"TypeScript", "WebGL", "Howler.js", "Firebase"},
		"screenshots": []any{"/uploads/samples/game-title.png", "/uploads/samples/game-level.png", "/uploads/samples/game-scores.png"},
		"accentColor": "#8b5cf6",
		"metadata": map[string]any{
			"metaTitle":       "Orbital Drift — Case Study",
			"metaDescription": "Game case study: WebGL physics puzzler with global leaderboards.",
			"keywords":        []any{"game", "webgl", "puzzle"},
		},
	},
	CategorySaaS: {
		"category":    string(CategorySaaS),
		"title":       "Inboxpilot",
		"tagline":     "Customer support that runs itself",
		"description": "A SaaS marketing page with pricing tiers, feature grid, and testimonial strip. Demonstrates a conversion-focused product site.",
		"features": []any{
			"Shared team inbox",
			"Automation rules and canned replies",
			"CSAT reporting dashboard",
			"Slack and email integrations",
		},
		"techStack":   []any{"Go", "React", "PostgreSQL", "Redis"},
		"screenshots": []any{"/uploads/samples/saas-landing.png", "/uploads/samples/saas-pricing.png", "/uploads/samples/saas-dashboard.png"},
		"accentColor": "#3b82f6",
		"metadata": map[string]any{
			"metaTitle":       "Inboxpilot — Case Study",
			"metaDescription": "SaaS case study: shared-inbox support tool with automation.",
			"keywords":        []any{"saas", "support", "automation"},
		},
	},
	CategorySocial: {
		"category":    string(CategorySocial),
		"title":       "Commonplace",
		"tagline":     "A quieter corner of the internet",
		"description": "A community site concept with profiles, topic feeds, and group spaces. Demonstrates a content-dense social layout.",
		"features": []any{
			"Topic-based feeds",
			"Member profiles and follows",
			"Group spaces with moderation",
			"Weekly digest emails",
		},
		"techStack":   []any{"Vue", "Go", "PostgreSQL", "S3"},
		"screenshots": []any{"/uploads/samples/social-feed.png", "/uploads/samples/social-profile.png", "/uploads/samples/social-groups.png"},
		"accentColor": "#ec4899",
		"metadata": map[string]any{
			"metaTitle":       "Commonplace — Case Study",
			"metaDescription": "Social platform case study: topic feeds and community spaces.",
			"keywords":        []any{"social", "community", "feeds"},
		},
	},
}

// Template returns a deep copy of the template for a category, falling back
// to the mobile-app template for anything unrecognized.
func Template(category Category) map[string]any {
	tpl, ok := templates[category]
	if !ok {
		tpl = templates[CategoryMobileApp]
	}
	return copyValue(tpl).(map[string]any)
}

// CloneForCategory applies a category change to a subdomain project item.
//
// If the item already carries identifying content (name, subdomain, or
// title) the template is NOT applied: only the category field changes, so a
// careless discriminant flip cannot wipe out typed-in work. Only a genuinely
// empty item gets the template, with a fresh id and blank name/subdomain.
func CloneForCategory(existing map[string]any, category Category) map[string]any {
	if hasText(existing, "name") || hasText(existing, "subdomain") || hasText(existing, "title") {
		out := make(map[string]any, len(existing)+1)
		for k, v := range existing {
			out[k] = v
		}
		out["category"] = string(ParseCategory(string(category)))
		return out
	}

	item := Template(ParseCategory(string(category)))
	if id, _ := existing["id"].(string); id != "" {
		item["id"] = id
	} else {
		item["id"] = uuid.NewString()
	}
	item["name"] = ""
	item["subdomain"] = ""
	item["category"] = string(ParseCategory(string(category)))
	return item
}

func hasText(item map[string]any, field string) bool {
	s, _ := item[field].(string)
	return s != ""
}

// copyValue deep-copies the JSON-shaped values templates are made of.
func copyValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = copyValue(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
