package field

import (
	"html/template"
)

// toggleField implements the checkbox and toggle types. The sanitized
// value is a bool, true only for the fixed truthy token set.
type toggleField struct {
	def  Definition
	kind Type
}

func (f toggleField) Render(value any, attrs map[string]string) template.HTML {
	forced := ""
	if f.kind == TypeToggle {
		forced = "op-toggle"
	}

	base := map[string]string{
		"type":  "checkbox",
		"id":    f.def.ID,
		"name":  f.def.ID,
		"value": "1",
	}

	if on, _ := f.Sanitize(value).(bool); on {
		base["checked"] = "checked"
	}

	merged := mergeAttributes(base, f.def, attrs, forced)

	return template.HTML("<input" + attrString(merged) + ">")
}

// Sanitize maps the fixed truthy token set {true, "true", 1, "1", "on"}
// to true, everything else to false. An omitted checkbox therefore
// sanitizes to false.
func (f toggleField) Sanitize(raw any) any {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1" || v == "on"
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	default:
		return false
	}
}

func (f toggleField) DefaultValue() any {
	return defaultOr(f.def, false)
}
