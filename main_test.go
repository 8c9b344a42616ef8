package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/zach-dev/internal/config"
	"github.com/Zachkp/zach-dev/internal/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "portfolio.wasm"), []byte("\x00asm"), 0o644))
	return config.Config{Port: "0", GinMode: gin.TestMode, LogLevel: "info", WasmDir: dir}
}

func serve(t *testing.T, r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	r, err := newRouter(testConfig(t), logging.NewNop(), "salt")
	require.NoError(t, err)

	w := serve(t, r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="project-card`)
	assert.Contains(t, w.Body.String(), `id="page-roles"`)
	assert.Contains(t, w.Body.String(), "/wasm/portfolio.wasm")

	w = serve(t, r, httptest.NewRequest(http.MethodGet, "/static/css/style.css", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".project-card.hidden")

	w = serve(t, r, httptest.NewRequest(http.MethodGet, "/wasm/portfolio.wasm", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "\x00asm", w.Body.String())

	w = serve(t, r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouterRejectsBadContent(t *testing.T) {
	cfg := testConfig(t)
	cfg.ContentPath = filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(cfg.ContentPath, []byte(`sections: [{id: home}]`), 0o644))

	_, err := newRouter(cfg, logging.NewNop(), "salt")
	require.Error(t, err)
}

func TestRouterContentOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.ContentPath = filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(cfg.ContentPath, []byte(`
name: Override
roles: [Engineer]
sections: [{id: home}, {id: skills}, {id: projects}]
projects: [{title: Solo, category: web}]
`), 0o644))

	r, err := newRouter(cfg, logging.NewNop(), "salt")
	require.NoError(t, err)
	w := serve(t, r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Solo")
	assert.NotContains(t, w.Body.String(), `id="showMoreBtn"`)
}

func TestVisitorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, slog.LevelInfo)
	r, err := newRouter(testConfig(t), logger, "salt")
	require.NoError(t, err)
	buf.Reset()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5000"
	serve(t, r, req)
	assert.Contains(t, buf.String(), "page view")
	assert.Contains(t, buf.String(), "visitor="+hashIP("salt", "192.0.2.7"))
	assert.NotContains(t, buf.String(), "192.0.2.7")

	buf.Reset()
	serve(t, r, httptest.NewRequest(http.MethodGet, "/static/css/style.css", nil))
	serve(t, r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, buf.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	serve(t, r, req)
	assert.Empty(t, buf.String())
}

func TestHashIP(t *testing.T) {
	a := hashIP("one", "192.0.2.1")
	assert.Len(t, a, 16)
	assert.Equal(t, a, hashIP("one", "192.0.2.1"))
	assert.NotEqual(t, a, hashIP("two", "192.0.2.1"))
	assert.NotEqual(t, a, hashIP("one", "192.0.2.2"))
}

func TestNewSalt(t *testing.T) {
	a, err := newSalt()
	require.NoError(t, err)
	b, err := newSalt()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestServerNeverLogsClientAddress(t *testing.T) {
	var ginOut bytes.Buffer
	defaultWriter, errorWriter := gin.DefaultWriter, gin.DefaultErrorWriter
	gin.DefaultWriter, gin.DefaultErrorWriter = &ginOut, &ginOut
	t.Cleanup(func() {
		gin.DefaultWriter, gin.DefaultErrorWriter = defaultWriter, errorWriter
	})

	var appOut bytes.Buffer
	r, err := newRouter(testConfig(t), logging.NewWriter(&appOut, slog.LevelDebug), "salt")
	require.NoError(t, err)

	for _, dnt := range []string{"", "1"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.7:5000"
		if dnt != "" {
			req.Header.Set("DNT", dnt)
		}
		w := serve(t, r, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.NotContains(t, ginOut.String(), "192.0.2.7")
	assert.NotContains(t, appOut.String(), "192.0.2.7")
}
