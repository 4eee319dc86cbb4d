package videoid

import (
	"regexp"
	"strings"
)

// IDLength is the fixed length of a video identifier
const IDLength = 11

const (
	embedBase = "https://www.youtube.com/embed/"
	watchBase = "https://www.youtube.com/watch?v="
)

var (
	// refPattern finds every video reference; group 1 is the host, group 2
	// everything after the host's slash up to whitespace or a quote
	refPattern = regexp.MustCompile(`(youtube(?:-nocookie)?\.com|youtu\.be)/([^\s"]*)`)

	// idPattern is an identifier at the start of a path segment or query
	// value, followed by a delimiter or the end of the input
	idPattern = regexp.MustCompile(`^([^"&?/#\s]{11})(?:["&?/#\s]|$)`)
)

// prefixes whose next path segment is the identifier
var idPrefixes = map[string]bool{
	"v":      true,
	"e":      true,
	"embed":  true,
	"shorts": true,
	"live":   true,
}

// Extract returns the video identifier contained in input.
// The accepted shapes are:
//
//	youtube.com/watch?...v=ID   (v anywhere in the query)
//	youtube.com/x/y/ID
//	youtube.com/{v,e,embed,shorts,live}/ID
//	youtube-nocookie.com/embed/ID
//	youtu.be/ID
//
// It reports false when no accepted shape is present or when the input
// names more than one distinct video, including two v= parameters in a
// single URL.
func Extract(input string) (string, bool) {
	var id string
	for _, m := range refPattern.FindAllStringSubmatch(input, -1) {
		for _, candidate := range candidates(m[1], m[2]) {
			if id != "" && candidate != id {
				return "", false
			}
			id = candidate
		}
	}
	return id, id != ""
}

// candidates lists every identifier one reference names
func candidates(host, rest string) []string {
	if host == "youtu.be" {
		return appendID(nil, rest)
	}

	path, query, _ := strings.Cut(rest, "?")
	query, _, _ = strings.Cut(query, "#")

	var ids []string
	segments := strings.Split(path, "/")
	switch {
	case len(segments) >= 2 && idPrefixes[segments[0]]:
		ids = appendID(ids, segments[1])
	case len(segments) >= 3 && segments[0] != "" && segments[1] != "":
		for _, segment := range segments[2:] {
			ids = appendID(ids, segment)
		}
	}

	for _, param := range strings.FieldsFunc(query, func(r rune) bool { return r == '&' || r == '?' }) {
		if value, ok := strings.CutPrefix(param, "v="); ok {
			ids = appendID(ids, value)
		}
	}
	return ids
}

func appendID(ids []string, s string) []string {
	if m := idPattern.FindStringSubmatch(s); m != nil {
		return append(ids, m[1])
	}
	return ids
}

// EmbedURL returns the playback URL used by the embedded viewer
func EmbedURL(id string) string {
	return embedBase + id
}

// WatchURL returns the canonical long-form URL for an identifier
func WatchURL(id string) string {
	return watchBase + id
}
