package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf_VideoExtensions(t *testing.T) {
	require.Equal(t, KindVideo, KindOf("/media/clip.webm"))
	require.Equal(t, KindVideo, KindOf("/media/clip.MP4"))
}

func TestKindOf_UnknownExtensionFallsBackToImage(t *testing.T) {
	require.Equal(t, KindImage, KindOf("/media/file.bin"))
	require.Equal(t, KindImage, KindOf(""))
}

func TestIsImage_StrictList(t *testing.T) {
	require.True(t, IsImage("/x/a.jpg"))
	require.True(t, IsImage("/x/a.webp"))
	require.False(t, IsImage("/x/a.bin"))
	require.False(t, IsImage("/x/a.webm"))
}

func TestPreviewPath_PrefersExplicitPreview(t *testing.T) {
	got := PreviewPath("/preview.png", []string{"/a.webm", "/b.jpg"})
	require.Equal(t, "/preview.png", got)
}

func TestPreviewPath_FirstRecognizableMedia(t *testing.T) {
	got := PreviewPath("", []string{"/notes.txt", "/b.webm", "/c.jpg"})
	require.Equal(t, "/b.webm", got)
}

func TestPreviewPath_NoMedia(t *testing.T) {
	require.Equal(t, "", PreviewPath("", nil))
	require.Equal(t, "", PreviewPath("", []string{"/readme.md"}))
}
