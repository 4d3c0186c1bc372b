package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rmalloy/folio/internal/auth"
	"github.com/rmalloy/folio/internal/content"
	"github.com/rmalloy/folio/internal/handler"
	"github.com/rmalloy/folio/internal/media"
	"github.com/rmalloy/folio/internal/seed"
	"github.com/rmalloy/folio/internal/site"
	"github.com/rmalloy/folio/internal/store"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "hunter2"
)

func setup(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()
	log := zap.NewNop()

	s := store.NewMemoryStore()
	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	authSvc := auth.New("test-secret", adminEmail, hash, time.Hour, log)
	mediaSvc, err := media.New(t.TempDir(), log)
	require.NoError(t, err)
	renderer, err := site.NewRenderer(s, "Test Site", log)
	require.NoError(t, err)
	saver := content.NewSaver(s, log)

	h := handler.New(s, saver, authSvc, mediaSvc, renderer, log)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, s
}

// client returns an http client with a cookie jar, optionally logged in.
func client(t *testing.T, ts *httptest.Server, login bool) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	c := &http.Client{Jar: jar}
	if login {
		body := mustJSON(t, map[string]string{"email": adminEmail, "password": adminPassword})
		resp, err := c.Post(ts.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	return c
}

// newMultipart writes a single-file multipart body and returns its
// Content-Type.
func newMultipart(t *testing.T, buf *bytes.Buffer, field, filename string, data []byte) string {
	t.Helper()
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return w.FormDataContentType()
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decodeJSON(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}

func putSection(t *testing.T, c *http.Client, ts *httptest.Server, section string, value any) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/content/"+section, bytes.NewReader(mustJSON(t, value)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Do(req)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	ts, _ := setup(t)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginLogoutMe(t *testing.T) {
	ts, _ := setup(t)
	c := client(t, ts, false)

	// Not logged in.
	resp, err := c.Get(ts.URL + "/api/auth/me")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Bad password.
	resp, err = c.Post(ts.URL+"/api/auth/login", "application/json",
		bytes.NewReader(mustJSON(t, map[string]string{"email": adminEmail, "password": "nope"})))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Good login.
	c = client(t, ts, true)
	resp, err = c.Get(ts.URL + "/api/auth/me")
	require.NoError(t, err)
	body := decodeJSON(t, resp.Body)
	resp.Body.Close()
	assert.Equal(t, adminEmail, body["email"])

	// Logout clears the session.
	resp, err = c.Post(ts.URL+"/api/auth/logout", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	resp, err = c.Get(ts.URL + "/api/auth/me")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetSectionDefaultsWhenEmpty(t *testing.T) {
	ts, _ := setup(t)

	resp, err := http.Get(ts.URL + "/api/content/social")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var arr []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&arr))
	assert.Empty(t, arr)

	resp, err = http.Get(ts.URL + "/api/content/hero")
	require.NoError(t, err)
	defer resp.Body.Close()
	obj := decodeJSON(t, resp.Body)
	assert.Empty(t, obj)
}

func TestGetUnknownSection(t *testing.T) {
	ts, _ := setup(t)
	resp, err := http.Get(ts.URL + "/api/content/gallery")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPutSectionRequiresAuth(t *testing.T) {
	ts, s := setup(t)
	c := client(t, ts, false)

	resp := putSection(t, c, ts, "social", []any{map[string]any{"id": "s1"}})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Nothing was written.
	_, ok, err := s.LoadSection(t.Context(), "social")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutSectionShapeMismatch(t *testing.T) {
	ts, s := setup(t)
	c := client(t, ts, true)

	resp := putSection(t, c, ts, "social", map[string]any{"not": "an array"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Contains(t, body["detail"], "shape")

	_, ok, err := s.LoadSection(t.Context(), "social")
	require.NoError(t, err)
	assert.False(t, ok, "persisted document must be unchanged")
}

func TestBlogEndToEnd(t *testing.T) {
	ts, _ := setup(t)
	c := client(t, ts, true)

	// Start from the empty default, edit in memory the way the studio
	// does, then save the section.
	resp, err := c.Get(ts.URL + "/api/content/blog")
	require.NoError(t, err)
	blog := decodeJSON(t, resp.Body)
	resp.Body.Close()

	blog["title"] = "Writing"
	blog["posts"] = []any{
		map[string]any{"id": "1", "title": "Hello", "published": true},
	}
	resp = putSection(t, c, ts, "blog", blog)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	resp.Body.Close()
	assert.Equal(t, true, body["success"])

	// Reload from scratch: the persisted section must match.
	resp, err = http.Get(ts.URL + "/api/content/blog")
	require.NoError(t, err)
	got := decodeJSON(t, resp.Body)
	resp.Body.Close()
	assert.Equal(t, "Writing", got["title"])
	posts := got["posts"].([]any)
	require.Len(t, posts, 1)
	post := posts[0].(map[string]any)
	assert.Equal(t, "1", post["id"])
	assert.Equal(t, "Hello", post["title"])
	assert.Equal(t, true, post["published"])
}

func TestPutWholeDocument(t *testing.T) {
	ts, _ := setup(t)
	c := client(t, ts, true)

	doc := seed.DefaultDocument()
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/content", bytes.NewReader(mustJSON(t, doc)))
	require.NoError(t, err)
	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/content")
	require.NoError(t, err)
	got := decodeJSON(t, resp.Body)
	resp.Body.Close()
	assert.Len(t, got, 12)
}

func TestHomePageRenders(t *testing.T) {
	ts, s := setup(t)
	require.NoError(t, s.Save(t.Context(), seed.DefaultDocument()))

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Ryan Malloy")
	assert.Contains(t, string(html), "Driftwood Labs")
}

func TestBlogPostPage(t *testing.T) {
	ts, s := setup(t)
	require.NoError(t, s.Save(t.Context(), seed.DefaultDocument()))

	resp, err := http.Get(ts.URL + "/blog/hello-world")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// Markdown body rendered to HTML.
	assert.Contains(t, string(html), "<strong>playground</strong>")

	resp, err = http.Get(ts.URL + "/blog/no-such-post")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubdomainShowcasePage(t *testing.T) {
	ts, _ := setup(t)
	c := client(t, ts, true)

	project := seed.CloneForCategory(map[string]any{}, seed.CategoryGame)
	project["name"] = "Orbital"
	project["subdomain"] = "orbital"
	resp := putSection(t, c, ts, "subdomainProjects", []any{project})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/p/orbital")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Orbital")
	assert.Contains(t, string(html), "title-screen", "game category must use the game template")

	resp, err = http.Get(ts.URL + "/p/unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadAndGallery(t *testing.T) {
	ts, _ := setup(t)
	c := client(t, ts, true)

	var buf bytes.Buffer
	mw := newMultipart(t, &buf, "file", "photo.png", []byte{0x89, 'P', 'N', 'G'})
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw)
	resp, err := c.Do(req)
	require.NoError(t, err)
	body := decodeJSON(t, resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	url, _ := body["url"].(string)
	require.NotEmpty(t, url)

	// Uploaded file is listed and servable.
	resp, err = http.Get(ts.URL + "/api/uploads")
	require.NoError(t, err)
	var files []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&files))
	resp.Body.Close()
	require.Len(t, files, 1)

	resp, err = http.Get(ts.URL + url)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadRequiresAuth(t *testing.T) {
	ts, _ := setup(t)
	c := client(t, ts, false)

	var buf bytes.Buffer
	mw := newMultipart(t, &buf, "file", "photo.png", []byte("png"))
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw)
	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
