package flows

import (
	"fmt"
	"math"
)

// Action is one step of a flow, decoded from its stored JSON by the "type"
// discriminator.
type Action interface {
	actionType() string
}

// CallAction enqueues an AI call to the contact. DelayMinutes applies on top
// of the running wait cursor, to this call only.
type CallAction struct {
	AgentID      string
	DelayMinutes int
}

func (CallAction) actionType() string { return "call" }

// WaitAction shifts the wait cursor for every later action.
type WaitAction struct {
	Minutes int
}

func (WaitAction) actionType() string { return "wait" }

// MessageAction sends a templated message through the marketing bucket.
type MessageAction struct {
	Template string
}

func (MessageAction) actionType() string { return "message" }

// EmailAction sends a templated email through the marketing bucket.
type EmailAction struct {
	Template string
}

func (EmailAction) actionType() string { return "email" }

// decodeActions validates and types the stored action list. Unknown types
// are a decode error: a misconfigured flow runs nothing rather than half of
// its steps.
func decodeActions(raw []map[string]interface{}) ([]Action, error) {
	out := make([]Action, 0, len(raw))
	for i, m := range raw {
		t, _ := m["type"].(string)
		switch t {
		case "call":
			agentID, _ := m["agent_id"].(string)
			delay, err := intField(m, "delay_minutes")
			if err != nil {
				return nil, fmt.Errorf("action %d (call): %w", i, err)
			}
			out = append(out, CallAction{AgentID: agentID, DelayMinutes: delay})
		case "wait":
			minutes, err := intField(m, "minutes")
			if err != nil {
				return nil, fmt.Errorf("action %d (wait): %w", i, err)
			}
			if minutes <= 0 {
				return nil, fmt.Errorf("action %d (wait): minutes must be positive", i)
			}
			out = append(out, WaitAction{Minutes: minutes})
		case "message":
			template, _ := m["template"].(string)
			if template == "" {
				return nil, fmt.Errorf("action %d (message): template is required", i)
			}
			out = append(out, MessageAction{Template: template})
		case "email":
			template, _ := m["template"].(string)
			if template == "" {
				return nil, fmt.Errorf("action %d (email): template is required", i)
			}
			out = append(out, EmailAction{Template: template})
		default:
			return nil, fmt.Errorf("action %d: unknown type %q", i, t)
		}
	}
	return out, nil
}

// intField reads an integer from decoded JSON, where numbers arrive as
// float64. Absent keys are zero.
func intField(m map[string]interface{}, key string) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%s must be a whole number", key)
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}
