package seed

import "github.com/rmalloy/folio/internal/content"

// DefaultDocument is the content a fresh install starts from: every section
// present with enough sample copy that the public site renders immediately
// and the admin editor has something to edit.
func DefaultDocument() content.Document {
	return content.Document{
		"hero": map[string]any{
			"title":    "Ryan Malloy",
			"subtitle": "Full-stack developer",
			"tagline":  "I build fast, friendly web products.",
			"ctaText":  "See my work",
			"ctaLink":  "#projects",
			"image":    "/uploads/samples/portrait.jpg",
		},
		"about": map[string]any{
			"title":       "About me",
			"description": "I'm a developer with a decade of experience shipping web applications, from scrappy prototypes to production systems serving millions of requests. I care about fast pages, clear code, and products people actually enjoy using.",
			"location":    "Portland, OR",
			"email":       "hello@rmalloy.dev",
			"resumeUrl":   "/uploads/samples/resume.pdf",
		},
		"experience": map[string]any{
			"title":    "Experience",
			"subtitle": "Where I've worked",
			"items": []any{
				map[string]any{
					"id":          "exp-1",
					"role":        "Senior Software Engineer",
					"company":     "Driftwood Labs",
					"period":      "2022 — Present",
					"description": "Lead developer on the customer-facing dashboard; cut page load times by 60% and mentored a team of four.",
				},
				map[string]any{
					"id":          "exp-2",
					"role":        "Software Engineer",
					"company":     "Bluearc Systems",
					"period":      "2018 — 2022",
					"description": "Built internal tooling and public APIs for a logistics platform handling 2M shipments a year.",
				},
			},
		},
		"projects": map[string]any{
			"title":    "Projects",
			"subtitle": "Selected work",
			"items": []any{
				map[string]any{
					"id":          "proj-1",
					"title":       "Tidepool",
					"type":        "open-source",
					"description": "A self-hosted status page with uptime checks and incident timelines.",
					"link":        "https://github.com/rmalloy/tidepool",
					"tags":        []any{"Go", "SQLite", "HTMX"},
				},
			},
		},
		"subdomainProjects": []any{},
		"blog": map[string]any{
			"title":    "Writing",
			"subtitle": "Notes on building software",
			"posts": []any{
				map[string]any{
					"id":        "post-1",
					"slug":      "hello-world",
					"title":     "Hello, world",
					"excerpt":   "Why this site exists and what I plan to write about.",
					"body":      "Welcome! This site is both my portfolio and a **playground**.\n\nExpect posts about Go, web performance, and the occasional side project postmortem.",
					"published": true,
					"date":      "2025-06-01",
					"metadata": map[string]any{
						"metaTitle":       "Hello, world",
						"metaDescription": "First post.",
						"keywords":        []any{"intro"},
					},
				},
			},
		},
		"contact": map[string]any{
			"title":    "Get in touch",
			"subtitle": "I read everything",
			"email":    "hello@rmalloy.dev",
			"blurb":    "Have a project in mind, or just want to talk shop? Drop me a line.",
		},
		"social": []any{
			map[string]any{"id": "soc-1", "platform": "github", "label": "GitHub", "url": "https://github.com/rmalloy"},
			map[string]any{"id": "soc-2", "platform": "linkedin", "label": "LinkedIn", "url": "https://linkedin.com/in/rmalloy"},
		},
		"skills": map[string]any{
			"title": "Skills",
			"items": []any{
				map[string]any{"id": "skill-1", "name": "Go", "level": "expert"},
				map[string]any{"id": "skill-2", "name": "TypeScript", "level": "advanced"},
				map[string]any{"id": "skill-3", "name": "PostgreSQL", "level": "advanced"},
			},
		},
		"statistics": map[string]any{
			"title": "By the numbers",
			"items": []any{
				map[string]any{"id": "stat-1", "label": "Years shipping", "value": "10+"},
				map[string]any{"id": "stat-2", "label": "Projects delivered", "value": "40"},
			},
		},
		"services": map[string]any{
			"title":    "Services",
			"subtitle": "What I can help with",
			"items": []any{
				map[string]any{"id": "svc-1", "name": "Product engineering", "description": "From idea to deployed product."},
				map[string]any{"id": "svc-2", "name": "Performance audits", "description": "Find and fix the slow parts."},
			},
		},
		"faq": map[string]any{
			"title": "FAQ",
			"items": []any{
				map[string]any{"id": "faq-1", "question": "Are you available for freelance work?", "answer": "Occasionally — reach out and ask."},
			},
		},
	}
}
