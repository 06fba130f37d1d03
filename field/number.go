package field

import (
	"encoding/json"
	"html/template"
	"strconv"
	"strings"
)

// numberField implements the number and range types. The sanitized
// value keeps the int/float distinction of the submitted literal.
type numberField struct {
	def  Definition
	kind Type
}

func (f numberField) Render(value any, attrs map[string]string) template.HTML {
	inputType := "number"
	if f.kind == TypeRange {
		inputType = "range"
	}

	merged := mergeAttributes(map[string]string{
		"type":  inputType,
		"id":    f.def.ID,
		"name":  f.def.ID,
		"value": displayString(f.Sanitize(value)),
	}, f.def, attrs, "")

	return template.HTML("<input" + attrString(merged) + ">")
}

// Sanitize coerces the value to an int or float64. Integer literals
// stay integers, fractional literals become floats, non-numeric input
// collapses to 0.
func (f numberField) Sanitize(raw any) any {
	switch v := raw.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case json.Number:
		return parseNumber(v.String())
	case string:
		return parseNumber(v)
	default:
		return 0
	}
}

func (f numberField) DefaultValue() any {
	return defaultOr(f.def, 0)
}

// parseNumber parses a numeric literal, preferring the integer form.
func parseNumber(s string) any {
	s = strings.TrimSpace(s)

	if i, err := strconv.Atoi(s); err == nil {
		return i
	}

	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		return fl
	}

	return 0
}

// mediaField stores a reference to a host media library item as a
// non-negative integer id.
type mediaField struct {
	def Definition
}

func (f mediaField) Render(value any, attrs map[string]string) template.HTML {
	merged := mergeAttributes(map[string]string{
		"type":  "hidden",
		"id":    f.def.ID,
		"name":  f.def.ID,
		"value": displayString(f.Sanitize(value)),
	}, f.def, attrs, "op-media-input")

	return template.HTML("<input" + attrString(merged) + ">" +
		`<button type="button" class="op-media-select" data-target="` +
		template.HTMLEscapeString(f.def.ID) + `">Select</button>`)
}

// Sanitize coerces the value to an unsigned integer, flooring fractions
// and clamping negatives to 0.
func (f mediaField) Sanitize(raw any) any {
	clamp := func(n int) int {
		if n < 0 {
			return 0
		}

		return n
	}

	switch v := raw.(type) {
	case int:
		return clamp(v)
	case int32:
		return clamp(int(v))
	case int64:
		return clamp(int(v))
	case uint:
		return int(v)
	case float32:
		return clamp(int(v))
	case float64:
		return clamp(int(v))
	case json.Number:
		if fl, err := v.Float64(); err == nil {
			return clamp(int(fl))
		}

		return 0
	case string:
		if fl, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return clamp(int(fl))
		}

		return 0
	default:
		return 0
	}
}

func (f mediaField) DefaultValue() any {
	return defaultOr(f.def, 0)
}
