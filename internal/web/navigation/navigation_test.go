package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionpanel/optionpanel/settings"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1")

	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, "section1", ctx.ActiveSection)
	assert.Equal(t, "page1", ctx.ActivePage)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_AddBreadcrumb(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1")

	// Add first breadcrumb
	ctx.AddBreadcrumb("Home", "/", false)
	assert.Len(t, ctx.Breadcrumbs, 1)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/", ctx.Breadcrumbs[0].URL)
	assert.False(t, ctx.Breadcrumbs[0].Active)

	// Add second breadcrumb
	ctx.AddBreadcrumb("Settings", "/settings", false)
	assert.Len(t, ctx.Breadcrumbs, 2)
	assert.Equal(t, "Settings", ctx.Breadcrumbs[1].Title)

	// Add active breadcrumb
	ctx.AddBreadcrumb("Current Page", "/settings/page", true)
	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1").
		AddBreadcrumb("Home", "/", false).
		AddBreadcrumb("Settings", "/settings", false).
		AddBreadcrumb("Current", "/settings/current", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "Settings", ctx.Breadcrumbs[1].Title)
	assert.Equal(t, "Current", ctx.Breadcrumbs[2].Title)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_WithTabs(t *testing.T) {
	store, err := settings.New("demo_options", "demo")
	require.NoError(t, err)
	require.NoError(t, store.AddTab(settings.Tab{ID: "general", Title: "General", Icon: "gear"}))
	require.NoError(t, store.AddTab(settings.Tab{ID: "advanced", Title: "Advanced"}))

	ctx := NewContext("Demo", "settings", "demo").
		WithTabs(store, "/settings/demo", "advanced")

	require.Len(t, ctx.Tabs, 2)

	assert.Equal(t, "general", ctx.Tabs[0].ID)
	assert.Equal(t, "General", ctx.Tabs[0].Title)
	assert.Equal(t, "gear", ctx.Tabs[0].Icon)
	assert.Equal(t, "/settings/demo?tab=general", ctx.Tabs[0].URL)
	assert.False(t, ctx.Tabs[0].Active)

	assert.Equal(t, "advanced", ctx.Tabs[1].ID)
	assert.True(t, ctx.Tabs[1].Active)
}

func TestContext_WithTabs_NoTabs(t *testing.T) {
	store, err := settings.New("demo_options", "demo")
	require.NoError(t, err)

	ctx := NewContext("Demo", "settings", "demo").
		WithTabs(store, "/settings/demo", "")

	assert.Empty(t, ctx.Tabs)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Test Page", "settings", "demo")

	assert.True(t, ctx.IsActive("settings", "demo"))
	assert.False(t, ctx.IsActive("dashboard", "demo"))
	assert.False(t, ctx.IsActive("settings", "basic"))
	assert.False(t, ctx.IsActive("dashboard", "main"))
}

func TestContext_IsSectionActive(t *testing.T) {
	ctx := NewContext("Test Page", "settings", "demo")

	assert.True(t, ctx.IsSectionActive("settings"))
	assert.False(t, ctx.IsSectionActive("dashboard"))
}
