package transcript

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", nil},
		{"short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", nil},
		{"embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", nil},
		{"shorts URL", "https://youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", nil},
		{"live URL", "https://www.youtube.com/live/dQw4w9WgXcQ", "dQw4w9WgXcQ", nil},
		{"mobile URL", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", nil},
		{"watch URL extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", nil},
		{"bare ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ", nil},
		{"empty", "", "", ErrInvalidURL},
		{"garbage", "not a url at all", "", ErrInvalidURL},
		{"wrong host", "https://vimeo.com/12345", "", ErrInvalidURL},
		{"too-short ID", "abc123", "", ErrInvalidURL},
		{"missing v param", "https://www.youtube.com/watch?list=PLx", "", ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ExtractVideoID(%q) error = %v, want %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

const watchPageWithCaptions = `<html>var ytInitialPlayerResponse = {"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"TRACK_URL","languageCode":"en","kind":""}]}}};</html>`

func TestYouTubeProviderFetch(t *testing.T) {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "dQw4w9WgXcQ" {
			http.NotFound(w, r)
			return
		}
		page := strings.Replace(watchPageWithCaptions, "TRACK_URL", srv.URL+"/timedtext", 1)
		w.Write([]byte(page))
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><transcript><text start="0" dur="2">hello</text><text start="2" dur="2">world &amp; beyond</text></transcript>`))
	})
	srv = httptest.NewServer(mux)
	defer srv.Close()

	p := &YouTubeProvider{client: srv.Client(), baseURL: srv.URL}

	text, err := p.Fetch(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if text != "hello world & beyond" {
		t.Errorf("Fetch() = %q, want %q", text, "hello world & beyond")
	}
}

func TestYouTubeProviderCaptionsDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>no caption tracks here</html>`))
	}))
	defer srv.Close()

	p := &YouTubeProvider{client: srv.Client(), baseURL: srv.URL}

	_, err := p.Fetch(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrCaptionsDisabled) {
		t.Fatalf("Fetch() error = %v, want ErrCaptionsDisabled", err)
	}
}

func TestYouTubeProviderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p := &YouTubeProvider{client: srv.Client(), baseURL: srv.URL}

	_, err := p.Fetch(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Fetch() error = %v, want ErrNotFound", err)
	}
}

func TestYouTubeProviderRejectsBadID(t *testing.T) {
	p := NewYouTubeProvider()
	_, err := p.Fetch(context.Background(), "nope")
	if !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("Fetch() error = %v, want ErrInvalidURL", err)
	}
}

func TestPickTrackPrefersManualEnglish(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "auto-de", LanguageCode: "de", Kind: "asr"},
		{BaseURL: "auto-en", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "manual-en", LanguageCode: "en", Kind: ""},
	}
	if got := pickTrack(tracks).BaseURL; got != "manual-en" {
		t.Errorf("pickTrack() = %q, want manual-en", got)
	}
}

func TestFetchMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oembed" || r.URL.Query().Get("format") != "json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"title":"Intro to Go","author_name":"Go Channel","provider_name":"YouTube"}`))
	}))
	defer srv.Close()

	p := &YouTubeProvider{client: srv.Client(), baseURL: srv.URL}

	meta, err := p.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("FetchMetadata() error = %v", err)
	}
	if meta.Title != "Intro to Go" {
		t.Errorf("Title = %q, want Intro to Go", meta.Title)
	}
	if meta.Author != "Go Channel" {
		t.Errorf("Author = %q, want Go Channel", meta.Author)
	}
}

func TestFetchMetadataPrivateVideo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := &YouTubeProvider{client: srv.Client(), baseURL: srv.URL}

	_, err := p.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("FetchMetadata() error = %v, want ErrNotFound", err)
	}
}

func TestFileProvider(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lecture.txt")
	if err := os.WriteFile(path, []byte("  some transcript text\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := NewFileProvider(path).Fetch(context.Background(), "")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if text != "some transcript text" {
		t.Errorf("Fetch() = %q", text)
	}

	_, err = NewFileProvider(filepath.Join(dir, "missing.txt")).Fetch(context.Background(), "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing file error = %v, want ErrNotFound", err)
	}
}
