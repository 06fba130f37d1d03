package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnsupportedType(t *testing.T) {
	b, err := New("carousel", Definition{ID: "x", Section: "s"})

	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "carousel")
}

func TestSupportedTypes_OrderIsStable(t *testing.T) {
	types := SupportedTypes()

	require.NotEmpty(t, types)
	assert.Equal(t, TypeText, types[0])
	assert.Equal(t, TypeDescription, types[len(types)-1])
	assert.Equal(t, types, SupportedTypes())
}

func TestSupported(t *testing.T) {
	for _, typ := range SupportedTypes() {
		assert.True(t, Supported(typ), "type %s", typ)
	}

	assert.False(t, Supported("carousel"))
	assert.False(t, Supported(""))
}

func TestDefaultValue(t *testing.T) {
	testCases := []struct {
		name     string
		typ      Type
		def      Definition
		expected any
	}{
		{name: "configured default wins", typ: TypeText, def: Definition{Default: "hello"}, expected: "hello"},
		{name: "text empty", typ: TypeText, def: Definition{}, expected: ""},
		{name: "number empty", typ: TypeNumber, def: Definition{}, expected: 0},
		{name: "checkbox empty", typ: TypeCheckbox, def: Definition{}, expected: false},
		{name: "multiselect empty", typ: TypeMultiselect, def: Definition{}, expected: []string{}},
		{name: "media empty", typ: TypeMedia, def: Definition{}, expected: 0},
		{name: "description none", typ: TypeDescription, def: Definition{Default: "ignored"}, expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.def.ID = "f"
			tc.def.Section = "s"

			b := mustBehavior(t, tc.typ, tc.def)
			assert.Equal(t, tc.expected, b.DefaultValue())
		})
	}
}
