package filekind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Matches(t *testing.T) {
	assert.True(t, CategoryAll.Matches("image/png"))
	assert.True(t, CategoryAll.Matches(""))

	assert.True(t, CategoryImages.Matches("image/jpeg"))
	assert.False(t, CategoryImages.Matches("video/mp4"))

	assert.True(t, CategoryMedia.Matches("video/mp4"))
	assert.True(t, CategoryMedia.Matches("audio/mpeg"))
	assert.False(t, CategoryMedia.Matches("image/gif"))

	assert.True(t, CategoryDocuments.Matches("application/pdf"))
	assert.True(t, CategoryDocuments.Matches("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.True(t, CategoryDocuments.Matches("text/plain"))
	assert.True(t, CategoryDocuments.Matches("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
	assert.False(t, CategoryDocuments.Matches("image/png"))

	assert.False(t, Category("bogus").Matches("image/png"))
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryAll.Valid())
	assert.True(t, CategoryImages.Valid())
	assert.False(t, Category("archive").Valid())
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "file-pdf", Icon("application/pdf"))
	assert.Equal(t, "file-image", Icon("image/webp"))
	assert.Equal(t, "file-video", Icon("VIDEO/MP4"))
	assert.Equal(t, "file-sheet", Icon("text/csv"))
	assert.Equal(t, "file-generic", Icon("application/x-unknown"))
	assert.Equal(t, "file-generic", Icon(""))
}
