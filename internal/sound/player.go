package sound

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Player plays notification sounds.
type Player struct {
	client *http.Client
	logger *slog.Logger
}

// NewPlayer creates a new sound player.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// PlayFile plays a local audio file, blocking until playback finishes.
// The format is detected from the file extension.
func (p *Player) PlayFile(path string) error {
	path = expandPath(path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := p.play(f, filepath.Ext(path)); err != nil {
		return err
	}
	p.logger.Debug("played sound file", "path", path)
	return nil
}

// PlayURL downloads an audio file and plays it, blocking until
// playback finishes.
func (p *Player) PlayURL(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download sound: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sound download failed: HTTP %d", resp.StatusCode)
	}

	// Buffer the whole download so the decoder can seek.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read sound data: %w", err)
	}
	p.logger.Debug("downloaded sound",
		"url", rawURL,
		"size", humanize.Bytes(uint64(len(data))))

	return p.play(readCloser{bytes.NewReader(data)}, urlExt(rawURL))
}

func (p *Player) play(r io.ReadSeekCloser, ext string) error {
	streamer, format, err := decode(r, ext)
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	bufferSize := format.SampleRate.N(100 * time.Millisecond)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	defer speaker.Close()

	speaker.PlayAndWait(streamer)
	return nil
}

func decode(r io.ReadSeekCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(r)
	case ".ogg", ".oga":
		return vorbis.Decode(r)
	case ".mp3":
		return mp3.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format: %q", ext)
	}
}

// urlExt extracts the file extension from a URL path, ignoring query
// parameters.
func urlExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return filepath.Ext(rawURL)
	}
	return filepath.Ext(u.Path)
}

// expandPath resolves a leading ~ against the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// readCloser adapts an in-memory reader to the decoder interfaces.
type readCloser struct {
	*bytes.Reader
}

func (readCloser) Close() error { return nil }
