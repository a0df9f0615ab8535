package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("pdf"))
	assert.True(t, AllowedExt(".PDF"))
	assert.True(t, AllowedExt("jpeg"))
	assert.True(t, AllowedExt("jpg"))
	assert.True(t, AllowedExt("png"))

	assert.False(t, AllowedExt(""))
	assert.False(t, AllowedExt("txt"))
	assert.False(t, AllowedExt("heic"))
	assert.False(t, AllowedExt(".docx"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/inbox/.DS_Store"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("/inbox/invoice.pdf"))
	assert.False(t, IsHidden("statements"))
}
