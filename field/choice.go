package field

import (
	"html/template"
	"strings"
)

// choiceField implements the select, radio and buttongroup types. Its
// sanitized value is always one of the option values or the empty
// string.
type choiceField struct {
	def  Definition
	kind Type
}

func (f choiceField) Render(value any, attrs map[string]string) template.HTML {
	current, _ := f.Sanitize(value).(string)

	if f.kind == TypeSelect {
		return f.renderSelect(current, attrs, false)
	}

	return f.renderGroup(current, attrs)
}

func (f choiceField) renderSelect(current string, attrs map[string]string, multiple bool) template.HTML {
	base := map[string]string{
		"id":   f.def.ID,
		"name": f.def.ID,
	}

	if multiple {
		base["multiple"] = "multiple"
	}

	merged := mergeAttributes(base, f.def, attrs, "op-choice")

	var b strings.Builder

	b.WriteString("<select" + attrString(merged) + ">")

	selected := map[string]bool{current: true}
	if multiple {
		selected = map[string]bool{}
		for _, v := range strings.Split(current, ",") {
			selected[v] = true
		}
	}

	for _, o := range f.def.Options {
		b.WriteString(`<option value="` + template.HTMLEscapeString(o.Value) + `"`)

		if selected[o.Value] {
			b.WriteString(` selected="selected"`)
		}

		b.WriteString(">" + template.HTMLEscapeString(o.Label) + "</option>")
	}

	b.WriteString("</select>")

	return template.HTML(b.String())
}

// renderGroup draws radio buttons, styled as a button group for the
// buttongroup kind.
func (f choiceField) renderGroup(current string, attrs map[string]string) template.HTML {
	class := "op-radio"
	if f.kind == TypeButtonGroup {
		class = "op-buttongroup"
	}

	merged := mergeAttributes(map[string]string{}, f.def, attrs, class)

	var b strings.Builder

	b.WriteString("<fieldset" + attrString(merged) + ">")

	for _, o := range f.def.Options {
		b.WriteString(`<label><input type="radio" name="` +
			template.HTMLEscapeString(f.def.ID) + `" value="` +
			template.HTMLEscapeString(o.Value) + `"`)

		if o.Value == current {
			b.WriteString(` checked="checked"`)
		}

		b.WriteString(">" + template.HTMLEscapeString(o.Label) + "</label>")
	}

	b.WriteString("</fieldset>")

	return template.HTML(b.String())
}

// Sanitize keeps the value only when it is one of the option values.
func (f choiceField) Sanitize(raw any) any {
	s, ok := raw.(string)
	if !ok || !f.def.HasOption(s) {
		return ""
	}

	return s
}

func (f choiceField) DefaultValue() any {
	return defaultOr(f.def, "")
}

// multiselectField stores an ordered list of option values.
type multiselectField struct {
	def Definition
}

func (f multiselectField) Render(value any, attrs map[string]string) template.HTML {
	items, _ := f.Sanitize(value).([]string)

	return choiceField{def: f.def, kind: TypeSelect}.
		renderSelect(strings.Join(items, ","), attrs, true)
}

// Sanitize keeps list members that are option values, in submission
// order. Non-list input collapses to the empty list.
func (f multiselectField) Sanitize(raw any) any {
	keep := func(items []string) []string {
		out := make([]string, 0, len(items))

		for _, item := range items {
			if f.def.HasOption(item) {
				out = append(out, item)
			}
		}

		return out
	}

	switch v := raw.(type) {
	case []string:
		return keep(v)
	case []any:
		items := make([]string, 0, len(v))

		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}

		return keep(items)
	default:
		return []string{}
	}
}

func (f multiselectField) DefaultValue() any {
	return defaultOr(f.def, []string{})
}
