// Package site renders the public portfolio pages from the content
// document: the home page, blog posts, and the subdomain showcase pages.
package site

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"

	"github.com/rmalloy/folio/internal/content"
	"github.com/rmalloy/folio/internal/seed"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/site.css
var siteCSS []byte

// StyleSheet returns the bundled site stylesheet.
func StyleSheet() []byte { return siteCSS }

// showcaseTemplates dispatches a subdomain project's category to its visual
// template. Unknown categories render like a mobile app.
var showcaseTemplates = map[seed.Category]string{
	seed.CategoryMobileApp: "showcase_app.html",
	seed.CategoryEcommerce: "showcase_store.html",
	seed.CategoryGame:      "showcase_game.html",
	seed.CategorySaaS:      "showcase_saas.html",
	seed.CategorySocial:    "showcase_social.html",
}

// Loader is the read side of the document store.
type Loader interface {
	Load(ctx context.Context) (content.Document, error)
}

// Renderer serves the public pages. The document is cached between
// requests; Invalidate drops the cache when the content file changes (a
// save through the admin API or an edit on disk).
type Renderer struct {
	store Loader
	tmpl  *template.Template
	md    goldmark.Markdown
	title string
	log   *zap.Logger

	mu     sync.RWMutex
	cached content.Document
}

func NewRenderer(store Loader, siteTitle string, log *zap.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	return &Renderer{store: store, tmpl: tmpl, md: md, title: siteTitle, log: log}, nil
}

// Invalidate drops the cached document; the next request reloads it.
func (r *Renderer) Invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
}

func (r *Renderer) document(ctx context.Context) (content.Document, error) {
	r.mu.RLock()
	doc := r.cached
	r.mu.RUnlock()
	if doc != nil {
		return doc, nil
	}
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.cached = doc
	r.mu.Unlock()
	return doc, nil
}

// page is the data every template receives.
type page struct {
	SiteTitle string
	PageTitle string
	Doc       content.Document
	Post      map[string]any
	Project   map[string]any
	Body      template.HTML
}

func (r *Renderer) render(w http.ResponseWriter, name string, data page) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Error("template render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// Home renders the portfolio landing page from every section.
func (r *Renderer) Home(w http.ResponseWriter, req *http.Request) {
	doc, err := r.document(req.Context())
	if err != nil {
		r.log.Error("load document failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	r.render(w, "home.html", page{SiteTitle: r.title, PageTitle: r.title, Doc: normalize(doc)})
}

// normalize resolves every section to its safe default and makes sure item
// arrays exist, so the templates never walk into a nil on a half-seeded
// document. The cached document is never modified.
func normalize(doc content.Document) content.Document {
	out := content.Document{}
	for _, name := range content.Sections() {
		_, value, _ := content.Resolve(name, doc)
		if field := content.ArrayField(name); field != "" {
			obj := value.(map[string]any)
			if _, ok := obj[field].([]any); !ok {
				withField := make(map[string]any, len(obj)+1)
				for k, v := range obj {
					withField[k] = v
				}
				withField[field] = []any{}
				value = withField
			}
		}
		out[name] = value
	}
	return out
}

// Post renders a published blog post by slug. Unpublished posts are as
// absent as missing ones.
func (r *Renderer) Post(w http.ResponseWriter, req *http.Request, slug string) {
	doc, err := r.document(req.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_, blog, err := content.Resolve("blog", doc)
	if err != nil {
		http.NotFound(w, req)
		return
	}
	posts, _ := blog.(map[string]any)["posts"].([]any)
	for _, raw := range posts {
		post, _ := raw.(map[string]any)
		if post == nil {
			continue
		}
		published, _ := post["published"].(bool)
		if s, _ := post["slug"].(string); s == slug && published {
			body, _ := post["body"].(string)
			title, _ := post["title"].(string)
			r.render(w, "post.html", page{
				SiteTitle: r.title,
				PageTitle: title,
				Post:      post,
				Body:      r.markdown(body),
			})
			return
		}
	}
	http.NotFound(w, req)
}

// Subdomain renders a showcase micro-site by its subdomain name, using the
// category dispatch table to pick the visual template.
func (r *Renderer) Subdomain(w http.ResponseWriter, req *http.Request, name string) {
	doc, err := r.document(req.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_, value, err := content.Resolve("subdomainProjects", doc)
	if err != nil {
		http.NotFound(w, req)
		return
	}
	for _, raw := range value.([]any) {
		project, _ := raw.(map[string]any)
		if project == nil {
			continue
		}
		if s, _ := project["subdomain"].(string); s != name {
			continue
		}
		category, _ := project["category"].(string)
		tmplName := showcaseTemplates[seed.ParseCategory(category)]
		title, _ := project["title"].(string)
		r.render(w, tmplName, page{SiteTitle: r.title, PageTitle: title, Project: project})
		return
	}
	http.NotFound(w, req)
}

func (r *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		r.log.Warn("markdown render failed", zap.Error(err))
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
