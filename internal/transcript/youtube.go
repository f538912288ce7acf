package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// YouTubeProvider fetches transcripts from YouTube's timedtext endpoint.
// It scrapes the watch page for the caption track list, picks an English
// track when available, and downloads the track XML.
type YouTubeProvider struct {
	client  *http.Client
	baseURL string
}

// NewYouTubeProvider creates a provider with a sensible default timeout.
func NewYouTubeProvider() *YouTubeProvider {
	return &YouTubeProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://www.youtube.com",
	}
}

func (p *YouTubeProvider) Fetch(ctx context.Context, videoID string) (string, error) {
	if !videoIDPattern.MatchString(videoID) {
		return "", ErrInvalidURL
	}

	trackURL, err := p.findCaptionTrack(ctx, videoID)
	if err != nil {
		return "", err
	}

	return p.downloadTrack(ctx, trackURL)
}

var captionTracksPattern = regexp.MustCompile(`"captionTracks":(\[.*?\])`)

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// findCaptionTrack scrapes the watch page and returns the URL of the best
// caption track. Manually-authored tracks win over auto-generated ones,
// English wins over other languages.
func (p *YouTubeProvider) findCaptionTrack(ctx context.Context, videoID string) (string, error) {
	watchURL := fmt.Sprintf("%s/watch?v=%s", p.baseURL, url.QueryEscape(videoID))
	body, status, err := p.get(ctx, watchURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status == http.StatusNotFound {
		return "", ErrNotFound
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: watch page returned %d", ErrUnavailable, status)
	}

	if strings.Contains(body, `"status":"ERROR"`) {
		return "", ErrNotFound
	}

	match := captionTracksPattern.FindStringSubmatch(body)
	if match == nil {
		return "", ErrCaptionsDisabled
	}

	var tracks []captionTrack
	if err := json.Unmarshal([]byte(match[1]), &tracks); err != nil {
		return "", fmt.Errorf("%w: parse caption tracks: %v", ErrUnavailable, err)
	}
	if len(tracks) == 0 {
		return "", ErrCaptionsDisabled
	}

	return pickTrack(tracks).BaseURL, nil
}

func pickTrack(tracks []captionTrack) captionTrack {
	best := tracks[0]
	bestScore := trackScore(best)
	for _, t := range tracks[1:] {
		if s := trackScore(t); s > bestScore {
			best, bestScore = t, s
		}
	}
	return best
}

func trackScore(t captionTrack) int {
	score := 0
	if strings.HasPrefix(t.LanguageCode, "en") {
		score += 2
	}
	if t.Kind != "asr" {
		score++
	}
	return score
}

type timedText struct {
	Texts []struct {
		Body string `xml:",chardata"`
	} `xml:"text"`
}

// downloadTrack fetches the caption XML and flattens it to plain text.
func (p *YouTubeProvider) downloadTrack(ctx context.Context, trackURL string) (string, error) {
	body, status, err := p.get(ctx, trackURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: caption track returned %d", ErrUnavailable, status)
	}

	var tt timedText
	if err := xml.Unmarshal([]byte(body), &tt); err != nil {
		return "", fmt.Errorf("%w: parse caption XML: %v", ErrUnavailable, err)
	}

	var sb strings.Builder
	for _, t := range tt.Texts {
		line := strings.TrimSpace(html.UnescapeString(t.Body))
		if line == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(line)
	}

	text := sb.String()
	if text == "" {
		return "", ErrCaptionsDisabled
	}
	return text, nil
}

func (p *YouTubeProvider) get(ctx context.Context, rawURL string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", 0, err
	}
	return string(body), resp.StatusCode, nil
}
