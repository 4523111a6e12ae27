package web

import (
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-app/dusk/app/enum"
	"github.com/dusk-app/dusk/app/server/web/mocks"
)

func newTestHandler(t *testing.T, ctrl ThemeController) *httptest.Server {
	h, err := New(ctrl, Config{BaseURL: "", Version: "test"})
	require.NoError(t, err)

	router := routegroup.New(http.NewServeMux())
	h.Register(router)
	return httptest.NewServer(router)
}

func TestHandler_Index(t *testing.T) {
	tbl := []struct {
		name      string
		theme     enum.Theme
		wantAttr  string
		wantIcon  string
		wantLabel string
	}{
		{"light theme", enum.ThemeLight, `data-theme="light"`, "🌙", "Switch to dark mode"},
		{"dark theme", enum.ThemeDark, `data-theme="dark"`, "☀️", "Switch to light mode"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &mocks.ThemeControllerMock{
				CurrentFunc: func() enum.Theme { return tt.theme },
			}
			ts := newTestHandler(t, ctrl)
			defer ts.Close()

			resp, err := http.Get(ts.URL + "/")
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			page := string(body)
			assert.Contains(t, page, tt.wantAttr, "root carries the active theme")
			assert.Contains(t, page, tt.wantIcon, "toggle shows the glyph for the target state")
			assert.Contains(t, page, `aria-label="`+tt.wantLabel+`"`, "label names the switch target")
			assert.Contains(t, page, "dusk test", "footer carries the version")
		})
	}
}

func TestHandler_ThemeToggle(t *testing.T) {
	ctrl := &mocks.ThemeControllerMock{
		ToggleFunc: func(ctx context.Context) enum.Theme { return enum.ThemeDark },
	}
	ts := newTestHandler(t, ctrl)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/web/theme", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "dark", res["theme"])
	assert.Equal(t, "☀️", res["icon"])
	assert.Equal(t, "Switch to light mode", res["label"])
	assert.Len(t, ctrl.ToggleCalls(), 1)
}

func TestStaticFS(t *testing.T) {
	sub, err := StaticFS()
	require.NoError(t, err)

	appJS, err := fs.ReadFile(sub, "app.js")
	require.NoError(t, err)
	script := string(appJS)

	// the page script owns keyboard activation and the live-update wiring
	assert.Contains(t, script, "keydown")
	assert.Contains(t, script, "preventDefault")
	assert.Contains(t, script, "themeChanged")
	assert.Contains(t, script, "SPIN_MS = 300")

	css, err := fs.ReadFile(sub, "style.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), `[data-theme="dark"]`)
}
