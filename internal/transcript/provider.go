// Package transcript fetches video transcripts for note and quiz generation.
package transcript

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// Provider fetches the transcript text for a video.
type Provider interface {
	// Fetch returns the plain-text transcript for the given video ID.
	Fetch(ctx context.Context, videoID string) (string, error)
}

var (
	// ErrInvalidURL means the input is not a recognizable YouTube URL or ID.
	ErrInvalidURL = errors.New("not a valid YouTube URL or video ID")

	// ErrCaptionsDisabled means the video exists but has no caption track.
	ErrCaptionsDisabled = errors.New("captions are disabled for this video")

	// ErrNotFound means no video exists with the given ID.
	ErrNotFound = errors.New("video not found")

	// ErrUnavailable means the transcript service could not be reached.
	ErrUnavailable = errors.New("transcript service unavailable")
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID pulls the 11-character video ID out of any of the common
// YouTube URL shapes, or validates a bare ID passed directly.
//
//	https://www.youtube.com/watch?v=ID
//	https://youtu.be/ID
//	https://www.youtube.com/embed/ID
//	https://www.youtube.com/shorts/ID
//	https://www.youtube.com/live/ID
//	ID
func ExtractVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrInvalidURL
	}

	if videoIDPattern.MatchString(input) {
		return input, nil
	}

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return "", ErrInvalidURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch host {
	case "youtu.be":
		id := strings.Trim(u.Path, "/")
		if videoIDPattern.MatchString(id) {
			return id, nil
		}
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if id := u.Query().Get("v"); videoIDPattern.MatchString(id) {
			return id, nil
		}
		for _, prefix := range []string{"/embed/", "/shorts/", "/live/", "/v/"} {
			if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
				id := strings.Trim(rest, "/")
				if videoIDPattern.MatchString(id) {
					return id, nil
				}
			}
		}
	}

	return "", ErrInvalidURL
}
