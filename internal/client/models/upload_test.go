package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileAt(id string, t time.Time, uploader, mod bool) File {
	return File{ID: id, RevisionAt: t, ApprovalUploader: uploader, ApprovalMod: mod}
}

func TestMostRecentAvailableFile(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("latest fully approved wins over newer unapproved", func(t *testing.T) {
		files := []File{
			fileAt("f1", base.Add(1*time.Hour), true, true),
			fileAt("f2", base.Add(5*time.Hour), false, true),
			fileAt("f3", base.Add(3*time.Hour), true, true),
		}

		got := MostRecentAvailableFile(files)
		require.NotNil(t, got)
		assert.Equal(t, "f3", got.ID)
	})

	t.Run("both flags required", func(t *testing.T) {
		files := []File{
			fileAt("f1", base, true, false),
			fileAt("f2", base.Add(time.Hour), false, true),
		}
		assert.Nil(t, MostRecentAvailableFile(files))
	})

	t.Run("empty slice", func(t *testing.T) {
		assert.Nil(t, MostRecentAvailableFile(nil))
	})
}

func TestUpload_Free(t *testing.T) {
	assert.True(t, Upload{Price: 0}.Free())
	assert.False(t, Upload{Price: 4}.Free())
}

func TestFile_Available(t *testing.T) {
	assert.True(t, File{ApprovalUploader: true, ApprovalMod: true}.Available())
	assert.False(t, File{ApprovalUploader: true}.Available())
	assert.False(t, File{ApprovalMod: true}.Available())
}
