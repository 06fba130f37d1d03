package field

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

// textField implements the text, email and textarea types. They share
// the generic text sanitizer and differ only in markup.
type textField struct {
	def  Definition
	kind Type
}

// Render produces a single-line input or a textarea depending on the
// field kind.
func (f textField) Render(value any, attrs map[string]string) template.HTML {
	current := displayString(f.Sanitize(value))

	if f.kind == TypeTextarea {
		merged := mergeAttributes(map[string]string{
			"id":   f.def.ID,
			"name": f.def.ID,
			"rows": "5",
		}, f.def, attrs, "")

		return template.HTML(fmt.Sprintf("<textarea%s>%s</textarea>",
			attrString(merged), template.HTMLEscapeString(current)))
	}

	inputType := "text"
	if f.kind == TypeEmail {
		inputType = "email"
	}

	merged := mergeAttributes(map[string]string{
		"type":  inputType,
		"id":    f.def.ID,
		"name":  f.def.ID,
		"value": current,
	}, f.def, attrs, "")

	return template.HTML("<input" + attrString(merged) + ">")
}

// Sanitize trims the value and strips control characters. Textareas
// keep their line breaks, the single-line kinds do not. Non-string
// input collapses to the empty string.
func (f textField) Sanitize(raw any) any {
	if f.kind == TypeTextarea {
		return sanitizeMultiline(raw)
	}

	return sanitizeText(raw)
}

// DefaultValue returns the configured default or the empty string.
func (f textField) DefaultValue() any {
	return defaultOr(f.def, "")
}

// urlField is the url type: generic text sanitation plus normalization
// to a safe absolute or relative URL.
type urlField struct {
	def Definition
}

func (f urlField) Render(value any, attrs map[string]string) template.HTML {
	merged := mergeAttributes(map[string]string{
		"type":  "url",
		"id":    f.def.ID,
		"name":  f.def.ID,
		"value": displayString(f.Sanitize(value)),
	}, f.def, attrs, "")

	return template.HTML("<input" + attrString(merged) + ">")
}

// Sanitize keeps http(s) absolute URLs and site-relative paths, anything
// else collapses to the empty string.
func (f urlField) Sanitize(raw any) any {
	s, ok := sanitizeText(raw).(string)
	if !ok || s == "" {
		return ""
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}

	switch {
	case u.Scheme == "http" || u.Scheme == "https":
		return u.String()
	case u.Scheme == "" && strings.HasPrefix(s, "/"):
		return u.String()
	default:
		return ""
	}
}

func (f urlField) DefaultValue() any {
	return defaultOr(f.def, "")
}

// passwordField stores its value verbatim: no trimming or normalization
// may alter a password.
type passwordField struct {
	def Definition
}

func (f passwordField) Render(value any, attrs map[string]string) template.HTML {
	merged := mergeAttributes(map[string]string{
		"type":         "password",
		"id":           f.def.ID,
		"name":         f.def.ID,
		"value":        displayString(f.Sanitize(value)),
		"autocomplete": "new-password",
	}, f.def, attrs, "")

	return template.HTML("<input" + attrString(merged) + ">")
}

// Sanitize passes strings through unmodified. Non-string input collapses
// to the empty string.
func (f passwordField) Sanitize(raw any) any {
	if s, ok := raw.(string); ok {
		return s
	}

	return ""
}

func (f passwordField) DefaultValue() any {
	return defaultOr(f.def, "")
}

// sanitizeText is the generic text sanitizer shared by the string-like
// types: strip markup and control characters, trim surrounding space.
// Non-string input collapses to the empty string.
func sanitizeText(raw any) any {
	return sanitizeString(raw, false)
}

// sanitizeMultiline is sanitizeText with line breaks preserved.
func sanitizeMultiline(raw any) any {
	return sanitizeString(raw, true)
}

func sanitizeString(raw any, keepBreaks bool) any {
	s, ok := raw.(string)
	if !ok {
		return ""
	}

	s = stripTags(s)

	if keepBreaks {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}

	var b strings.Builder

	for _, r := range s {
		switch {
		case r == '\t', keepBreaks && r == '\n':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			continue
		default:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// stripTags removes anything between '<' and '>' including the
// brackets. An unterminated tag is dropped to its end of input.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var (
		b     strings.Builder
		inTag bool
	)

	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
