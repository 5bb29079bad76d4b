package flows

import (
	"testing"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionMatches(t *testing.T) {
	c := &ent.Contact{
		LeadSource: "webform",
		EntryType:  contact.EntryTypeManual,
		CustomFields: map[string]interface{}{
			"plan":  "Pro Annual",
			"seats": float64(5),
		},
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{
			name: "equals hit",
			cond: Condition{Field: "lead_source", Operator: OpEquals, Value: "webform"},
			want: true,
		},
		{
			name: "equals miss",
			cond: Condition{Field: "lead_source", Operator: OpEquals, Value: "import"},
			want: false,
		},
		{
			name: "not-equals",
			cond: Condition{Field: "lead_source", Operator: OpNotEquals, Value: "import"},
			want: true,
		},
		{
			name: "entry_type reads the contact column",
			cond: Condition{Field: "entry_type", Operator: OpEquals, Value: "manual"},
			want: true,
		},
		{
			name: "contains is case-insensitive",
			cond: Condition{Field: "plan", Operator: OpContains, Value: "pro"},
			want: true,
		},
		{
			name: "contains with empty needle never matches",
			cond: Condition{Field: "plan", Operator: OpContains, Value: ""},
			want: false,
		},
		{
			name: "any hit",
			cond: Condition{Field: "lead_source", Operator: OpAny, Value: []interface{}{"import", "webform"}},
			want: true,
		},
		{
			name: "any miss",
			cond: Condition{Field: "lead_source", Operator: OpAny, Value: []interface{}{"import", "referral"}},
			want: false,
		},
		{
			name: "any needs a list",
			cond: Condition{Field: "lead_source", Operator: OpAny, Value: "webform"},
			want: false,
		},
		{
			name: "numeric custom field compares stringified",
			cond: Condition{Field: "seats", Operator: OpEquals, Value: float64(5)},
			want: true,
		},
		{
			name: "absent custom field reads empty",
			cond: Condition{Field: "region", Operator: OpEquals, Value: ""},
			want: true,
		},
		{
			name: "absent custom field not-equals",
			cond: Condition{Field: "region", Operator: OpNotEquals, Value: "emea"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.matches(c))
		})
	}
}

func TestConditionMatchesNilCustomFields(t *testing.T) {
	c := &ent.Contact{LeadSource: "webform"}

	assert.False(t, Condition{Field: "plan", Operator: OpEquals, Value: "pro"}.matches(c))
	assert.True(t, Condition{Field: "plan", Operator: OpEquals, Value: ""}.matches(c))
}

func TestDecodeConditions(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		conds, err := decodeConditions([]map[string]interface{}{
			{"field": "lead_source", "operator": "equals", "value": "webform"},
			{"field": "plan", "operator": "any", "value": []interface{}{"pro", "enterprise"}},
		})
		require.NoError(t, err)
		require.Len(t, conds, 2)
		assert.Equal(t, Condition{Field: "lead_source", Operator: OpEquals, Value: "webform"}, conds[0])
		assert.Equal(t, "plan", conds[1].Field)
		assert.Equal(t, OpAny, conds[1].Operator)
	})

	t.Run("empty list matches everything", func(t *testing.T) {
		conds, err := decodeConditions(nil)
		require.NoError(t, err)
		assert.Empty(t, conds)
		assert.True(t, allMatch(conds, &ent.Contact{}))
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := decodeConditions([]map[string]interface{}{
			{"operator": "equals", "value": "x"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "field is required")
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := decodeConditions([]map[string]interface{}{
			{"field": "lead_source", "operator": "regex", "value": ".*"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown operator "regex"`)
	})
}
