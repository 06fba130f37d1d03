package field

import (
	"html/template"
	"strings"
)

// codeField stores trusted code snippets. Markup is left alone, only
// line endings are normalized and NUL bytes removed.
type codeField struct {
	def Definition
}

func (f codeField) Render(value any, attrs map[string]string) template.HTML {
	current, _ := f.Sanitize(value).(string)

	base := map[string]string{
		"id":   f.def.ID,
		"name": f.def.ID,
		"rows": "10",
	}

	if lang := f.def.Attributes["data-language"]; lang == "" {
		base["data-language"] = "text"
	}

	merged := mergeAttributes(base, f.def, attrs, "op-code-editor")

	return template.HTML("<textarea" + attrString(merged) + ">" +
		template.HTMLEscapeString(current) + "</textarea>")
}

// Sanitize normalizes line endings to \n and strips NUL bytes.
// Non-string input collapses to the empty string.
func (f codeField) Sanitize(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return ""
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.ReplaceAll(s, "\x00", "")
}

func (f codeField) DefaultValue() any {
	return defaultOr(f.def, "")
}
