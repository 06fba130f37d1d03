package field

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderText(t *testing.T) {
	b := mustBehavior(t, TypeText, Definition{ID: "title", Section: "general"})

	markup := string(b.Render("My <Site>", nil))

	assert.Contains(t, markup, `name="title"`)
	assert.Contains(t, markup, `type="text"`)
	// value went through sanitize, then escaping
	assert.Contains(t, markup, `value="My"`)
}

func TestRender_CallerAttributesWin(t *testing.T) {
	b := mustBehavior(t, TypeText, Definition{
		ID:         "title",
		Section:    "general",
		Attributes: map[string]string{"placeholder": "from definition"},
	})

	markup := string(b.Render("", map[string]string{
		"placeholder": "from caller",
		"type":        "search",
	}))

	assert.Contains(t, markup, `placeholder="from caller"`)
	assert.Contains(t, markup, `type="search"`)
	assert.NotContains(t, markup, "from definition")
}

func TestRender_ForcedWidgetClassSurvivesOverride(t *testing.T) {
	b := mustBehavior(t, TypeColor, Definition{ID: "accent", Section: "look"})

	markup := string(b.Render("#fff", map[string]string{"class": "wide"}))

	assert.Contains(t, markup, `class="wide op-color-picker"`)
}

func TestRender_ConditionalDataAttributes(t *testing.T) {
	b := mustBehavior(t, TypeText, Definition{
		ID:      "custom_label",
		Section: "general",
		Conditional: &Conditional{
			Field: "mode",
			Value: "custom",
		},
	})

	markup := string(b.Render("", nil))

	assert.Contains(t, markup, `data-conditional-field="mode"`)
	assert.Contains(t, markup, `data-conditional-value="custom"`)
	// omitted operator defaults to equality
	assert.Contains(t, markup, `data-conditional-operator="=="`)
}

func TestRenderSelect_MarksSelectedOption(t *testing.T) {
	b := mustBehavior(t, TypeSelect, Definition{
		ID: "mode", Section: "general", Options: choiceOptions,
	})

	markup := string(b.Render("b", nil))

	assert.Contains(t, markup, `<option value="b" selected="selected">Beta</option>`)
	assert.NotContains(t, markup, `value="a" selected`)
	assert.Contains(t, markup, "op-choice")
}

func TestRenderMultiselect(t *testing.T) {
	b := mustBehavior(t, TypeMultiselect, Definition{
		ID: "channels", Section: "general", Options: choiceOptions,
	})

	markup := string(b.Render([]string{"a", "c"}, nil))

	assert.Contains(t, markup, `multiple="multiple"`)
	assert.Equal(t, 2, strings.Count(markup, `selected="selected"`))
}

func TestRenderRadio(t *testing.T) {
	b := mustBehavior(t, TypeRadio, Definition{
		ID: "mode", Section: "general", Options: choiceOptions,
	})

	markup := string(b.Render("c", nil))

	assert.Equal(t, 3, strings.Count(markup, `type="radio"`))
	assert.Equal(t, 1, strings.Count(markup, `checked="checked"`))
}

func TestRenderCheckbox(t *testing.T) {
	b := mustBehavior(t, TypeCheckbox, Definition{ID: "enabled", Section: "general"})

	assert.Contains(t, string(b.Render(true, nil)), `checked="checked"`)
	assert.NotContains(t, string(b.Render(false, nil)), "checked")
}

func TestRenderCode_EscapesContent(t *testing.T) {
	b := mustBehavior(t, TypeCode, Definition{ID: "snippet", Section: "general"})

	markup := string(b.Render("<b>x</b>", nil))

	assert.Contains(t, markup, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, markup, "op-code-editor")
	assert.Contains(t, markup, `data-language="text"`)
}

func TestRenderDescription(t *testing.T) {
	b := mustBehavior(t, TypeDescription, Definition{
		ID: "help", Section: "general", Description: "Read the docs first.",
	})

	markup := string(b.Render(nil, nil))

	assert.Contains(t, markup, "Read the docs first.")
	assert.Contains(t, markup, "op-description")
}

func TestRender_DeterministicAttributeOrder(t *testing.T) {
	b := mustBehavior(t, TypeText, Definition{ID: "title", Section: "general"})

	first := b.Render("v", map[string]string{"b": "2", "a": "1", "c": "3"})

	for range 20 {
		assert.Equal(t, first, b.Render("v", map[string]string{"c": "3", "a": "1", "b": "2"}))
	}
}
