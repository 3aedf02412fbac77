package media

import "strings"

// Kind is the render category of a media file, derived from its path
// extension only. Nothing about the kind is stored on the asset itself.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

var videoExts = []string{".webm", ".mp4"}

var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// KindOf classifies a media path by extension. Unknown extensions are
// treated as images and allowed to fail at render time.
func KindOf(path string) Kind {
	if IsVideo(path) {
		return KindVideo
	}
	return KindImage
}

func IsVideo(path string) bool {
	return hasAnySuffix(path, videoExts)
}

// IsImage reports whether the path carries one of the known image
// extensions. Note KindOf still maps unknown extensions to KindImage;
// IsImage is the stricter check used for preview selection.
func IsImage(path string) bool {
	return hasAnySuffix(path, imageExts)
}

// PreviewPath picks the path shown on a grid card: the explicit preview
// image when present, otherwise the first media file with a recognizable
// extension. Empty string means the caller shows a placeholder.
func PreviewPath(previewImage string, mediaFiles []string) string {
	if previewImage != "" {
		return previewImage
	}
	for _, f := range mediaFiles {
		if IsImage(f) || IsVideo(f) {
			return f
		}
	}
	return ""
}

func hasAnySuffix(path string, exts []string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
