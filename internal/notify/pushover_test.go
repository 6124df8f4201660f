package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ding/internal/config"
)

func pushoverServer(t *testing.T, status int) (*httptest.Server, *url.Values) {
	t.Helper()
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestPushover_SendsFormFields(t *testing.T) {
	srv, got := pushoverServer(t, http.StatusOK)

	p := NewPushover(config.PushoverConfig{
		APIToken: "app-token",
		UserKey:  "user-key",
		Device:   "phone",
	})
	p.endpoint = srv.URL

	priority := 1
	err := p.Notify(context.Background(), Message{
		Title:    "Build finished",
		Body:     "All green",
		Priority: &priority,
	})
	require.NoError(t, err)

	assert.Equal(t, "app-token", got.Get("token"))
	assert.Equal(t, "user-key", got.Get("user"))
	assert.Equal(t, "All green", got.Get("message"))
	assert.Equal(t, "Build finished", got.Get("title"))
	assert.Equal(t, "phone", got.Get("device"))
	assert.Equal(t, "1", got.Get("priority"))
}

func TestPushover_OmitsOptionalFields(t *testing.T) {
	srv, got := pushoverServer(t, http.StatusOK)

	p := NewPushover(config.PushoverConfig{
		APIToken: "app-token",
		UserKey:  "user-key",
	})
	p.endpoint = srv.URL

	err := p.Notify(context.Background(), Message{Body: "Beep!"})
	require.NoError(t, err)

	assert.Equal(t, "Beep!", got.Get("message"))
	assert.False(t, got.Has("title"))
	assert.False(t, got.Has("device"))
	assert.False(t, got.Has("priority"))
}

func TestPushover_ErrorOnHTTPFailure(t *testing.T) {
	srv, _ := pushoverServer(t, http.StatusBadRequest)

	p := NewPushover(config.PushoverConfig{APIToken: "t", UserKey: "u"})
	p.endpoint = srv.URL

	err := p.Notify(context.Background(), Message{Body: "Beep!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
