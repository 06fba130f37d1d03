package field

import (
	"html/template"
	"regexp"
)

// hexColorRegex matches #RGB and #RRGGBB literals.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// colorField stores a hex color literal. Invalid input falls back to
// the field's default instead of the empty string so the picker always
// has a color to show.
type colorField struct {
	def Definition
}

func (f colorField) Render(value any, attrs map[string]string) template.HTML {
	merged := mergeAttributes(map[string]string{
		"type":  "text",
		"id":    f.def.ID,
		"name":  f.def.ID,
		"value": displayString(f.Sanitize(value)),
	}, f.def, attrs, "op-color-picker")

	return template.HTML("<input" + attrString(merged) + ">")
}

// Sanitize keeps valid #RGB/#RRGGBB literals and falls back to
// DefaultValue for anything else.
func (f colorField) Sanitize(raw any) any {
	if s, ok := raw.(string); ok && hexColorRegex.MatchString(s) {
		return s
	}

	return f.DefaultValue()
}

func (f colorField) DefaultValue() any {
	return defaultOr(f.def, "")
}
