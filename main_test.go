package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/config"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/content"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/store"
)

func newTestApp(t *testing.T) (*App, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg := config.Config{
		AdminUsername: "owner",
		AdminPassword: "correct horse",
		SphereFPS:     120,
	}
	log := zap.NewNop()
	app := &App{
		cfg:   cfg,
		log:   log,
		site:  content.Default(),
		view:  sphere.DefaultViewConfig(),
		store: st,
		admin: newAdminAuth(cfg, log),
		ctx:   context.Background(),
	}
	return app, setupRouter(app)
}

func doRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHomePage(t *testing.T) {
	_, r := newTestApp(t)

	rec := doRequest(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Praveen Kumar")
	assert.Contains(t, body, "Full Stack Software Engineer")
	assert.Contains(t, body, "E-Commerce Analytics Dashboard")
	assert.Contains(t, body, "Senior Frontend Engineer")
	assert.Contains(t, body, "Sarah Johnson")
	assert.Contains(t, body, `href="#projects"`)
	assert.Contains(t, body, `id="sphere"`)
}

func TestContentAPI(t *testing.T) {
	app, r := newTestApp(t)

	rec := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var site content.Site
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &site))
	assert.Equal(t, app.site, site)
}

func TestHealthz(t *testing.T) {
	_, r := newTestApp(t)
	rec := doRequest(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestContactForm(t *testing.T) {
	_, r := newTestApp(t)
	rec := doRequest(r, httptest.NewRequest(http.MethodGet, "/contact-form", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-post="/contact"`)
}

func TestContactSubmit(t *testing.T) {
	app, r := newTestApp(t)

	rec := doRequest(r, postForm("/contact", url.Values{
		"name":    {"  Jane Doe "},
		"email":   {"jane@example.com"},
		"message": {"Let's build something."},
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message Sent!")

	msgs, err := app.store.Messages(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Jane Doe", msgs[0].Name)
	assert.Equal(t, "jane@example.com", msgs[0].Email)
	assert.Len(t, msgs[0].HashedIP, 16)
}

func TestContactSubmit_Invalid(t *testing.T) {
	app, r := newTestApp(t)

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "missing name",
			form: url.Values{"email": {"a@example.com"}, "message": {"hi"}},
			want: "Please fill in your name.",
		},
		{
			name: "bad email",
			form: url.Values{"name": {"A"}, "email": {"not-an-email"}, "message": {"hi"}},
			want: "Please enter a valid email address.",
		},
		{
			name: "blank message",
			form: url.Values{"name": {"A"}, "email": {"a@example.com"}, "message": {"   "}},
			want: "Please fill in your name and a message.",
		},
		{
			name: "message too long",
			form: url.Values{"name": {"A"}, "email": {"a@example.com"}, "message": {strings.Repeat("x", 5001)}},
			want: "Your message is too long.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(r, postForm("/contact", tt.form))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}

	msgs, err := app.store.Messages(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestVisitorTracking(t *testing.T) {
	app, r := newTestApp(t)

	dnt := httptest.NewRequest(http.MethodGet, "/", nil)
	dnt.Header.Set("DNT", "1")
	doRequest(r, dnt)
	doRequest(r, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	doRequest(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	tracked := httptest.NewRequest(http.MethodGet, "/", nil)
	tracked.Header.Set("User-Agent", "test-agent")
	doRequest(r, tracked)

	assert.Eventually(t, func() bool {
		visits, err := app.store.Visits(context.Background(), 10)
		return err == nil && len(visits) == 1
	}, 2*time.Second, 10*time.Millisecond)

	visits, err := app.store.Visits(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "/", visits[0].Path)
	assert.Equal(t, "test-agent", visits[0].UserAgent)
	assert.NotEqual(t, "192.0.2.1", visits[0].HashedIP)
}
