package flows

import (
	"fmt"
	"strings"

	"github.com/ringstack/ringstack/ent"
)

// Condition operators.
const (
	OpEquals    = "equals"
	OpAny       = "any"
	OpContains  = "contains"
	OpNotEquals = "not-equals"
)

// Condition is one predicate over a contact field. Field names lead_source
// and entry_type address the contact's own columns; anything else reads the
// custom fields map.
type Condition struct {
	Field    string
	Operator string
	Value    interface{}
}

// decodeConditions validates the stored condition list. A flow with an
// unknown operator or a missing field never matches; the evaluator skips it
// with a warning.
func decodeConditions(raw []map[string]interface{}) ([]Condition, error) {
	out := make([]Condition, 0, len(raw))
	for i, m := range raw {
		field, _ := m["field"].(string)
		if field == "" {
			return nil, fmt.Errorf("condition %d: field is required", i)
		}
		op, _ := m["operator"].(string)
		switch op {
		case OpEquals, OpAny, OpContains, OpNotEquals:
		default:
			return nil, fmt.Errorf("condition %d: unknown operator %q", i, op)
		}
		out = append(out, Condition{Field: field, Operator: op, Value: m["value"]})
	}
	return out, nil
}

// matches evaluates the condition against one contact. equals/not-equals
// compare exactly; any accepts a list of alternatives; contains is a
// case-insensitive substring test.
func (c Condition) matches(contact *ent.Contact) bool {
	fv := fieldValue(contact, c.Field)
	switch c.Operator {
	case OpEquals:
		return fv == stringify(c.Value)
	case OpNotEquals:
		return fv != stringify(c.Value)
	case OpContains:
		needle := strings.ToLower(stringify(c.Value))
		return needle != "" && strings.Contains(strings.ToLower(fv), needle)
	case OpAny:
		list, ok := c.Value.([]interface{})
		if !ok {
			return false
		}
		for _, v := range list {
			if fv == stringify(v) {
				return true
			}
		}
		return false
	}
	return false
}

// fieldValue resolves a condition field on the contact.
func fieldValue(contact *ent.Contact, field string) string {
	switch field {
	case "lead_source":
		return contact.LeadSource
	case "entry_type":
		return string(contact.EntryType)
	}
	if contact.CustomFields == nil {
		return ""
	}
	return stringify(contact.CustomFields[field])
}

// stringify renders a JSON scalar the way conditions compare it.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
