package sound

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, _, err := decode(readCloser{bytes.NewReader(nil)}, ".txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported audio format")
}

func TestURLExt(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"plain path", "https://example.com/sounds/ding.wav", ".wav"},
		{"query string ignored", "https://example.com/ding.ogg?token=abc", ".ogg"},
		{"uppercase extension", "https://example.com/DING.MP3", ".MP3"},
		{"no extension", "https://example.com/ding", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, urlExt(tt.url))
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, filepath.Join("/home/tester", "sounds", "ding.wav"),
		expandPath("~/sounds/ding.wav"))
	assert.Equal(t, "/absolute/ding.wav", expandPath("/absolute/ding.wav"))
	assert.Equal(t, "relative.wav", expandPath("relative.wav"))
}

func TestPlayFile_MissingFile(t *testing.T) {
	p := NewPlayer(nil)

	err := p.PlayFile(filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open sound file")
}

func TestPlayURL_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewPlayer(nil)
	err := p.PlayURL(context.Background(), srv.URL+"/ding.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestPlayURL_UnsupportedFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not audio"))
	}))
	defer srv.Close()

	p := NewPlayer(nil)
	err := p.PlayURL(context.Background(), srv.URL+"/ding.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported audio format")
}
