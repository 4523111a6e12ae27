package api

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-app/dusk/app/enum"
	"github.com/dusk-app/dusk/app/server/api/mocks"
)

func newTestServer(ctrl ThemeController) *httptest.Server {
	router := routegroup.New(http.NewServeMux())
	New(ctrl).Register(router)
	return httptest.NewServer(router)
}

func TestHandler_Get(t *testing.T) {
	ctrl := &mocks.ThemeControllerMock{
		CurrentFunc: func() enum.Theme { return enum.ThemeDark },
		ResolveFunc: func(ctx context.Context) enum.Theme { return enum.ThemeDark },
	}
	ts := newTestServer(ctrl)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/theme")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info struct {
		Theme    string `json:"theme"`
		Icon     string `json:"icon"`
		Label    string `json:"label"`
		Resolved string `json:"resolved"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "dark", info.Theme)
	assert.Equal(t, "☀️", info.Icon)
	assert.Equal(t, "Switch to light mode", info.Label)
	assert.Equal(t, "dark", info.Resolved)
}

func TestHandler_Set(t *testing.T) {
	t.Run("valid theme applied", func(t *testing.T) {
		ctrl := &mocks.ThemeControllerMock{
			ApplyFunc: func(ctx context.Context, th enum.Theme) {},
		}
		ts := newTestServer(ctrl)
		defer ts.Close()

		req, err := http.NewRequest(http.MethodPut, ts.URL+"/theme", strings.NewReader(`{"theme":"dark"}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.Len(t, ctrl.ApplyCalls(), 1)
		assert.Equal(t, enum.ThemeDark, ctrl.ApplyCalls()[0].T)

		var info struct {
			Theme string `json:"theme"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
		assert.Equal(t, "dark", info.Theme)
	})

	t.Run("invalid theme rejected", func(t *testing.T) {
		ctrl := &mocks.ThemeControllerMock{
			ApplyFunc: func(ctx context.Context, th enum.Theme) {},
		}
		ts := newTestServer(ctrl)
		defer ts.Close()

		req, err := http.NewRequest(http.MethodPut, ts.URL+"/theme", strings.NewReader(`{"theme":"solarized"}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, ctrl.ApplyCalls())
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		ctrl := &mocks.ThemeControllerMock{
			ApplyFunc: func(ctx context.Context, th enum.Theme) {},
		}
		ts := newTestServer(ctrl)
		defer ts.Close()

		req, err := http.NewRequest(http.MethodPut, ts.URL+"/theme", strings.NewReader(`{broken`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, ctrl.ApplyCalls())
	})
}

func TestHandler_Toggle(t *testing.T) {
	ctrl := &mocks.ThemeControllerMock{
		ToggleFunc: func(ctx context.Context) enum.Theme { return enum.ThemeDark },
	}
	ts := newTestServer(ctrl)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/theme/toggle", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info struct {
		Theme string `json:"theme"`
		Icon  string `json:"icon"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "dark", info.Theme)
	assert.Equal(t, "☀️", info.Icon)
	assert.Len(t, ctrl.ToggleCalls(), 1)
}

func TestHandler_Events(t *testing.T) {
	notify := make(chan func(enum.Theme), 1)
	unsubscribed := make(chan struct{})
	ctrl := &mocks.ThemeControllerMock{
		CurrentFunc: func() enum.Theme { return enum.ThemeLight },
		OnChangeFunc: func(fn func(enum.Theme)) func() {
			notify <- fn
			return func() { close(unsubscribed) }
		},
	}
	ts := newTestServer(ctrl)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/theme/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readFrame := func() (event, data string) {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "":
				return event, data
			}
		}
	}

	// the current theme arrives first
	event, data := readFrame()
	assert.Equal(t, "themeChanged", event)
	assert.JSONEq(t, `{"theme":"light"}`, data)

	// a change pushed through the subscription arrives next
	var fn func(enum.Theme)
	select {
	case fn = <-notify:
	case <-time.After(time.Second):
		t.Fatal("subscription not registered")
	}
	fn(enum.ThemeDark)

	event, data = readFrame()
	assert.Equal(t, "themeChanged", event)
	assert.JSONEq(t, `{"theme":"dark"}`, data)

	// dropping the connection releases the subscription
	resp.Body.Close()
	select {
	case <-unsubscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not released after disconnect")
	}
}
