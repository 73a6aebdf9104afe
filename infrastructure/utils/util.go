package utils

import (
	"regexp"
	"strings"
	"time"
)

// videoIDPatterns covers the common YouTube URL shapes. Each pattern captures
// the 11-character video identifier.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/watch\?(?:[^#&]*&)*v=([A-Za-z0-9_-]{11})(?:[&#]|$)`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/embed/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/v/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/shorts/([A-Za-z0-9_-]{11})(?:[?&#]|$)`),
}

// ExtractVideoID extracts the 11-character video identifier from a YouTube
// URL. A miss returns ok=false and is a client input error, not a fetch
// failure. Pure function; repeated calls on the same string yield the same
// result.
func ExtractVideoID(url string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// CountWords returns the whitespace-delimited word count of s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// Truncate limits s to max characters. max <= 0 means no truncation.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}
