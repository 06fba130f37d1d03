package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionpanel/optionpanel/field"
	"github.com/optionpanel/optionpanel/internal/config"
)

func TestPages_SitePageCoversEveryFieldType(t *testing.T) {
	pages := Pages(&config.Config{Title: "Demo"})
	require.Len(t, pages, 1)

	page := pages[0]
	assert.Equal(t, "site_options", page.OptionName())
	assert.Equal(t, "site", page.OptionGroup())

	used := make(map[field.Type]bool)
	for _, def := range page.Fields() {
		used[def.Type] = true
	}

	for _, typ := range field.SupportedTypes() {
		assert.True(t, used[typ], "demo page misses field type %q", typ)
	}
}

func TestPages_SitePageDefaults(t *testing.T) {
	pages := Pages(&config.Config{
		Title:     "Demo",
		Webserver: config.Webserver{URL: "https://demo.example.com"},
	})
	page := pages[0]

	defaults := page.Defaults()

	assert.Equal(t, "Demo", defaults["site_title"])
	assert.Equal(t, "https://demo.example.com", defaults["site_url"])
	assert.Equal(t, "light", defaults["color_scheme"])

	// description fields never persist
	_, hasNote := defaults["theme_note"]
	assert.False(t, hasNote)
}

func TestPages_SitePageAssets(t *testing.T) {
	page := Pages(&config.Config{})[0]

	assert.Equal(t, []string{
		"date-picker",
		"choice-widget",
		"color-picker",
		"code-editor",
	}, page.RequiredLibraryPackages())
}
