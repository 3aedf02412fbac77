package importer

import (
	"errors"
	"strings"
)

// Kind is the backend workflow a pasted URL routes to.
type Kind string

const (
	KindModel Kind = "model"
	KindImage Kind = "image"
)

// ErrMalformedURL means an image URL carried no image id. Reported before
// any network call.
var ErrMalformedURL = errors.New("image url is missing an image id")

const imageMarker = "/images/"

// Classify routes a URL by a literal substring test, nothing semantic.
// Slug-style model URLs pass through and are expected to fail at the
// backend; this matching rule is part of the user-facing contract and must
// not be tightened.
func Classify(rawURL string) Kind {
	if strings.Contains(rawURL, imageMarker) {
		return KindImage
	}
	return KindModel
}

// ImageID extracts the segment after the first "/images/" up to the query
// string, discarding the query. An empty segment is a malformed URL.
func ImageID(rawURL string) (string, error) {
	_, after, found := strings.Cut(rawURL, imageMarker)
	if !found {
		return "", ErrMalformedURL
	}
	// A second "/images/" ends the segment, matching how the id was always
	// parsed; everything else (slashes included) stays in.
	if i := strings.Index(after, imageMarker); i >= 0 {
		after = after[:i]
	}
	if i := strings.Index(after, "?"); i >= 0 {
		after = after[:i]
	}
	if after == "" {
		return "", ErrMalformedURL
	}
	return after, nil
}
