package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditional_EffectiveOperator(t *testing.T) {
	assert.Equal(t, OperatorEquals, Conditional{}.EffectiveOperator())
	assert.Equal(t, OperatorNotIn, Conditional{Operator: OperatorNotIn}.EffectiveOperator())
}

func TestConditional_Evaluate(t *testing.T) {
	testCases := []struct {
		name     string
		cond     Conditional
		current  any
		expected bool
	}{
		{
			name:     "equals match",
			cond:     Conditional{Field: "mode", Value: "custom"},
			current:  "custom",
			expected: true,
		},
		{
			name:     "equals mismatch",
			cond:     Conditional{Field: "mode", Value: "custom"},
			current:  "default",
			expected: false,
		},
		{
			name:     "not equals",
			cond:     Conditional{Field: "mode", Value: "custom", Operator: OperatorNotEquals},
			current:  "default",
			expected: true,
		},
		{
			name:     "in set member",
			cond:     Conditional{Field: "mode", Value: "a, b, c", Operator: OperatorIn},
			current:  "b",
			expected: true,
		},
		{
			name:     "in set non-member",
			cond:     Conditional{Field: "mode", Value: "a, b, c", Operator: OperatorIn},
			current:  "z",
			expected: false,
		},
		{
			name:     "not in set",
			cond:     Conditional{Field: "mode", Value: "a,b", Operator: OperatorNotIn},
			current:  "c",
			expected: true,
		},
		{
			name:     "equals against list matches any member",
			cond:     Conditional{Field: "chan", Value: "mail"},
			current:  []string{"sms", "mail"},
			expected: true,
		},
		{
			name:     "in against list intersects",
			cond:     Conditional{Field: "chan", Value: "mail,push", Operator: OperatorIn},
			current:  []string{"sms", "push"},
			expected: true,
		},
		{
			name:     "in against disjoint list",
			cond:     Conditional{Field: "chan", Value: "mail,push", Operator: OperatorIn},
			current:  []string{"sms"},
			expected: false,
		},
		{
			name:     "bool current compares as token",
			cond:     Conditional{Field: "enabled", Value: "1"},
			current:  true,
			expected: true,
		},
		{
			name:     "unknown operator is never visible",
			cond:     Conditional{Field: "mode", Value: "x", Operator: "~="},
			current:  "x",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cond.Evaluate(tc.current))
		})
	}
}

func TestConditional_Known(t *testing.T) {
	assert.True(t, Conditional{}.Known())
	assert.True(t, Conditional{Operator: OperatorIn}.Known())
	assert.False(t, Conditional{Operator: "like"}.Known())
}
