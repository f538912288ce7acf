package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Metadata is the public video information exposed by the oEmbed
// endpoint. It needs no API key.
type Metadata struct {
	Title  string `json:"title"`
	Author string `json:"author_name"`
}

// FetchMetadata returns the video title and channel name.
func (p *YouTubeProvider) FetchMetadata(ctx context.Context, videoID string) (*Metadata, error) {
	if !videoIDPattern.MatchString(videoID) {
		return nil, ErrInvalidURL
	}

	oembedURL := fmt.Sprintf("%s/oembed?url=%s&format=json",
		p.baseURL, url.QueryEscape("https://www.youtube.com/watch?v="+videoID))

	body, status, err := p.get(ctx, oembedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	switch {
	case status == http.StatusNotFound, status == http.StatusUnauthorized:
		// oEmbed answers 401 for private videos and 404 for missing ones.
		return nil, ErrNotFound
	case status != http.StatusOK:
		return nil, fmt.Errorf("%w: oembed returned %d", ErrUnavailable, status)
	}

	var meta Metadata
	if err := json.Unmarshal([]byte(body), &meta); err != nil {
		return nil, fmt.Errorf("%w: parse oembed response: %v", ErrUnavailable, err)
	}
	return &meta, nil
}
