package daemon

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/optionpanel/optionpanel/field"
	"github.com/optionpanel/optionpanel/internal/config"
	"github.com/optionpanel/optionpanel/settings"
)

// Pages builds the settings pages the panel serves. The site page covers
// every supported field type so it doubles as a living demo of the builder.
func Pages(cfg *config.Config) []*settings.Store {
	return []*settings.Store{
		sitePage(cfg),
	}
}

func sitePage(cfg *config.Config) *settings.Store {
	page, err := settings.New("site_options", "site")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create site settings")
		return nil
	}

	build := func(err error) {
		if err != nil {
			log.Fatal().Err(err).Msg("invalid site settings definition")
		}
	}

	build(page.AddTab(settings.Tab{ID: "general", Title: "General", Icon: "gear"}))
	build(page.AddTab(settings.Tab{ID: "appearance", Title: "Appearance", Icon: "brush"}))
	build(page.AddTab(settings.Tab{ID: "advanced", Title: "Advanced", Icon: "wrench"}))

	build(page.AddSection(settings.Section{
		ID:    "identity",
		Title: "Site identity",
		Tab:   "general",
	}))
	build(page.AddSection(settings.Section{
		ID:          "contact",
		Title:       "Contact",
		Description: "How visitors can reach the site operator.",
		Tab:         "general",
	}))
	build(page.AddSection(settings.Section{
		ID:    "theme",
		Title: "Theme",
		Tab:   "appearance",
	}))
	build(page.AddSection(settings.Section{
		ID:    "maintenance",
		Title: "Maintenance",
		Tab:   "advanced",
	}))
	build(page.AddSection(settings.Section{
		ID:          "footer",
		Title:       "Footer",
		Description: "Shown on every tab.",
	}))

	// general / identity
	build(page.AddField(field.Definition{
		ID:          "site_title",
		Section:     "identity",
		Type:        field.TypeText,
		Label:       "Site title",
		Default:     cfg.Title,
		Description: "Shown in the browser tab and page header.",
	}))
	build(page.AddField(field.Definition{
		ID:      "tagline",
		Section: "identity",
		Type:    field.TypeTextarea,
		Label:   "Tagline",
	}))
	build(page.AddField(field.Definition{
		ID:      "site_url",
		Section: "identity",
		Type:    field.TypeURL,
		Label:   "Site URL",
		Default: cfg.Webserver.URL,
	}))
	build(page.AddField(field.Definition{
		ID:      "logo",
		Section: "identity",
		Type:    field.TypeMedia,
		Label:   "Logo",
	}))
	build(page.AddField(field.Definition{
		ID:      "launch_date",
		Section: "identity",
		Type:    field.TypeDate,
		Label:   "Launch date",
	}))

	// general / contact
	build(page.AddField(field.Definition{
		ID:      "contact_email",
		Section: "contact",
		Type:    field.TypeEmail,
		Label:   "Contact email",
		Validate: func(v any) error {
			s, _ := v.(string)
			if s != "" && !strings.Contains(s, "@") {
				return fmt.Errorf("%q is not an email address", s)
			}
			return nil
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "smtp_password",
		Section: "contact",
		Type:    field.TypePassword,
		Label:   "SMTP password",
	}))
	build(page.AddField(field.Definition{
		ID:      "support_hours_start",
		Section: "contact",
		Type:    field.TypeTime,
		Label:   "Support hours start",
		Default: "09:00",
	}))

	// appearance / theme
	build(page.AddField(field.Definition{
		ID:      "theme_note",
		Section: "theme",
		Type:    field.TypeDescription,
		Label:   "About themes",
		Description: "Colors apply immediately after saving. Custom CSS " +
			"overrides the selected scheme.",
	}))
	build(page.AddField(field.Definition{
		ID:      "color_scheme",
		Section: "theme",
		Type:    field.TypeSelect,
		Label:   "Color scheme",
		Default: "light",
		Options: []field.Option{
			{Value: "light", Label: "Light"},
			{Value: "dark", Label: "Dark"},
			{Value: "custom", Label: "Custom"},
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "accent_color",
		Section: "theme",
		Type:    field.TypeColor,
		Label:   "Accent color",
		Default: "#2662d9",
		Conditional: &field.Conditional{
			Field: "color_scheme",
			Value: "custom",
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "density",
		Section: "theme",
		Type:    field.TypeButtonGroup,
		Label:   "Layout density",
		Default: "normal",
		Options: []field.Option{
			{Value: "compact", Label: "Compact"},
			{Value: "normal", Label: "Normal"},
			{Value: "roomy", Label: "Roomy"},
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "sidebar_position",
		Section: "theme",
		Type:    field.TypeRadio,
		Label:   "Sidebar position",
		Default: "left",
		Options: []field.Option{
			{Value: "left", Label: "Left"},
			{Value: "right", Label: "Right"},
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "font_size",
		Section: "theme",
		Type:    field.TypeRange,
		Label:   "Base font size",
		Default: 16,
		Attributes: map[string]string{
			"min": "12",
			"max": "24",
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "custom_css",
		Section: "theme",
		Type:    field.TypeCode,
		Label:   "Custom CSS",
		Attributes: map[string]string{
			"data-language": "css",
		},
		Conditional: &field.Conditional{
			Field:    "color_scheme",
			Value:    "light,dark",
			Operator: field.OperatorNotIn,
		},
	}))

	// advanced / maintenance
	build(page.AddField(field.Definition{
		ID:      "maintenance_mode",
		Section: "maintenance",
		Type:    field.TypeToggle,
		Label:   "Maintenance mode",
	}))
	build(page.AddField(field.Definition{
		ID:      "maintenance_until",
		Section: "maintenance",
		Type:    field.TypeDateTime,
		Label:   "Back online at",
		Conditional: &field.Conditional{
			Field: "maintenance_mode",
			Value: "1",
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "cache_ttl",
		Section: "maintenance",
		Type:    field.TypeNumber,
		Label:   "Cache TTL (seconds)",
		Default: 300,
		Validate: func(v any) error {
			if n, ok := v.(int); ok && n < 0 {
				return fmt.Errorf("ttl must not be negative, got %d", n)
			}
			return nil
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "purge_targets",
		Section: "maintenance",
		Type:    field.TypeMultiselect,
		Label:   "Purge on save",
		Options: []field.Option{
			{Value: "pages", Label: "Pages"},
			{Value: "assets", Label: "Assets"},
			{Value: "api", Label: "API responses"},
		},
	}))
	build(page.AddField(field.Definition{
		ID:      "verbose_errors",
		Section: "maintenance",
		Type:    field.TypeCheckbox,
		Label:   "Verbose error pages",
	}))

	// footer, visible on every tab
	build(page.AddField(field.Definition{
		ID:      "footer_text",
		Section: "footer",
		Type:    field.TypeText,
		Label:   "Footer text",
	}))

	return page
}
