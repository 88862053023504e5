package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Items", "upload")

	assert.Equal(t, "Items", ctx.PageTitle)
	assert.Equal(t, "upload", ctx.ActiveTab)
	assert.NotNil(t, ctx.Tabs)
	assert.Empty(t, ctx.Tabs)
}

func TestContext_AddTab(t *testing.T) {
	ctx := NewContext("Items", "upload").
		AddTab("upload", "Upload").
		AddTab("download", "Download")

	assert.Len(t, ctx.Tabs, 2)
	assert.Equal(t, "Upload", ctx.Tabs[0].Title)
	assert.True(t, ctx.Tabs[0].Active)
	assert.False(t, ctx.Tabs[1].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Items", "download")

	assert.True(t, ctx.IsActive("download"))
	assert.False(t, ctx.IsActive("upload"))
	assert.False(t, ctx.IsActive(""))
}

func TestContext_Select(t *testing.T) {
	ctx := NewContext("Items", "upload").
		AddTab("upload", "Upload").
		AddTab("download", "Download")

	ctx.Select("download")
	assert.True(t, ctx.IsActive("download"))
	assert.False(t, ctx.Tabs[0].Active)
	assert.True(t, ctx.Tabs[1].Active)

	ctx.Select("settings")
	assert.True(t, ctx.IsActive("download"), "unknown tab keeps selection")
}
