package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeActions(t *testing.T) {
	t.Run("full flow decodes in order", func(t *testing.T) {
		acts, err := decodeActions([]map[string]interface{}{
			{"type": "call", "agent_id": "agent-1", "delay_minutes": float64(10)},
			{"type": "wait", "minutes": float64(30)},
			{"type": "message", "template": "nudge"},
			{"type": "email", "template": "welcome"},
		})
		require.NoError(t, err)
		require.Len(t, acts, 4)
		assert.Equal(t, CallAction{AgentID: "agent-1", DelayMinutes: 10}, acts[0])
		assert.Equal(t, WaitAction{Minutes: 30}, acts[1])
		assert.Equal(t, MessageAction{Template: "nudge"}, acts[2])
		assert.Equal(t, EmailAction{Template: "welcome"}, acts[3])
	})

	t.Run("call defaults", func(t *testing.T) {
		acts, err := decodeActions([]map[string]interface{}{
			{"type": "call"},
		})
		require.NoError(t, err)
		assert.Equal(t, CallAction{}, acts[0])
	})

	tests := []struct {
		name    string
		raw     map[string]interface{}
		wantErr string
	}{
		{
			name:    "fractional delay",
			raw:     map[string]interface{}{"type": "call", "delay_minutes": 2.5},
			wantErr: "whole number",
		},
		{
			name:    "non-numeric wait",
			raw:     map[string]interface{}{"type": "wait", "minutes": "soon"},
			wantErr: "must be a number",
		},
		{
			name:    "zero wait",
			raw:     map[string]interface{}{"type": "wait", "minutes": float64(0)},
			wantErr: "must be positive",
		},
		{
			name:    "message without template",
			raw:     map[string]interface{}{"type": "message"},
			wantErr: "template is required",
		},
		{
			name:    "email without template",
			raw:     map[string]interface{}{"type": "email", "template": ""},
			wantErr: "template is required",
		},
		{
			name:    "unknown type",
			raw:     map[string]interface{}{"type": "sms"},
			wantErr: `unknown type "sms"`,
		},
		{
			name:    "missing type",
			raw:     map[string]interface{}{"template": "welcome"},
			wantErr: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeActions([]map[string]interface{}{tt.raw})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
