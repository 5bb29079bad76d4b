package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreField(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{name: "plain number", value: float64(85), want: 85},
		{name: "go int", value: 40, want: 40},
		{name: "fractional score truncates", value: 72.9, want: 72},
		{name: "negative clamps to zero", value: float64(-5), want: 0},
		{name: "over one hundred clamps", value: float64(250), want: 100},
		{name: "numeric string", value: "65", want: 65},
		{name: "numeric string with spaces", value: "  90 ", want: 90},
		{name: "float string", value: "33.4", want: 33},
		{name: "unparsable string scores zero", value: "high", want: 0},
		{name: "missing scores zero", value: nil, want: 0},
		{name: "wrong type scores zero", value: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreField(tt.value))
		})
	}
}

func TestBoolField(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name  string
		value interface{}
		want  *bool
	}{
		{name: "real true", value: true, want: &yes},
		{name: "real false", value: false, want: &no},
		{name: "Yes string", value: "Yes", want: &yes},
		{name: "no string", value: "no", want: &no},
		{name: "TRUE string", value: "TRUE", want: &yes},
		{name: "false with spaces", value: " false ", want: &no},
		{name: "maybe is nil", value: "maybe", want: nil},
		{name: "missing is nil", value: nil, want: nil},
		{name: "number is nil", value: float64(1), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, boolField(tt.value))
		})
	}
}

func TestTagField(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
		nil_  bool
	}{
		{name: "canonical hot", value: "Hot", want: "Hot"},
		{name: "lowercase warm canonicalizes", value: "warm", want: "Warm"},
		{name: "shouting cold canonicalizes", value: "COLD", want: "Cold"},
		{name: "padded tag trims", value: "  hot  ", want: "Hot"},
		{name: "outside the set", value: "Lukewarm", nil_: true},
		{name: "empty string", value: "", nil_: true},
		{name: "non-string", value: 3, nil_: true},
		{name: "missing", value: nil, nil_: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tagField(tt.value)
			if tt.nil_ {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestStringField(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
		nil_  bool
	}{
		{name: "plain string", value: "Acme Corp", want: "Acme Corp"},
		{name: "trims whitespace", value: "  jane@acme.io  ", want: "jane@acme.io"},
		{name: "empty is nil", value: "", nil_: true},
		{name: "whitespace only is nil", value: "   ", nil_: true},
		{name: "non-string is nil", value: 42, nil_: true},
		{name: "missing is nil", value: nil, nil_: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stringField(tt.value)
			if tt.nil_ {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestTimeField(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got := timeField("2026-03-15T14:30:00Z")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC), got.UTC())
	})

	t.Run("rfc3339 with offset", func(t *testing.T) {
		got := timeField("2026-03-15T09:30:00-05:00")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC), got.UTC())
	})

	t.Run("compact offset", func(t *testing.T) {
		got := timeField("2026-03-15T09:30:00-0500")
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC), got.UTC())
	})

	t.Run("nanoseconds", func(t *testing.T) {
		got := timeField("2026-03-15T14:30:00.123456789Z")
		require.NotNil(t, got)
		assert.Equal(t, 123456789, got.Nanosecond())
	})

	t.Run("unparsable is nil", func(t *testing.T) {
		assert.Nil(t, timeField("next Tuesday"))
		assert.Nil(t, timeField("2026-03-15"))
	})

	t.Run("non-string is nil", func(t *testing.T) {
		assert.Nil(t, timeField(1742048000))
		assert.Nil(t, timeField(nil))
	})
}

func TestMapResultFullContract(t *testing.T) {
	res := Result{
		"intent_level":           "High",
		"intent_score":           float64(85),
		"urgency_level":          "Medium",
		"urgency_score":          "60",
		"budget_constraint":      "Flexible",
		"budget_score":           float64(120),
		"fit_alignment":          "Strong",
		"fit_score":              float64(-10),
		"engagement_health":      "Healthy",
		"engagement_score":       float64(70),
		"total_score":            float64(75),
		"lead_status_tag":        "hot",
		"cta_pricing_clicked":    "Yes",
		"cta_demo_clicked":       false,
		"cta_followup_clicked":   "No",
		"cta_escalated_to_human": "unknown",
		"demo_book_datetime":     "2026-04-01T10:00:00Z",
		"extraction": map[string]interface{}{
			"name":              "Jane Smith",
			"email_address":     "jane@acme.io",
			"company_name":      "Acme Corp",
			"smartnotification": "Jane wants a demo next week",
		},
		"reasoning": map[string]interface{}{
			"intent": "asked about pricing twice",
		},
	}

	m := mapResult(res)

	require.NotNil(t, m.IntentLevel)
	assert.Equal(t, "High", *m.IntentLevel)
	assert.Equal(t, 85, m.IntentScore)
	assert.Equal(t, 60, m.UrgencyScore)
	assert.Equal(t, 100, m.BudgetScore)
	assert.Equal(t, 0, m.FitScore)
	assert.Equal(t, 75, m.TotalScore)

	require.NotNil(t, m.LeadStatusTag)
	assert.Equal(t, "Hot", *m.LeadStatusTag)

	require.NotNil(t, m.CTAPricingClicked)
	assert.True(t, *m.CTAPricingClicked)
	require.NotNil(t, m.CTADemoClicked)
	assert.False(t, *m.CTADemoClicked)
	require.NotNil(t, m.CTAFollowupClicked)
	assert.False(t, *m.CTAFollowupClicked)
	assert.Nil(t, m.CTASampleClicked, "absent flag stays nil")
	assert.Nil(t, m.CTAEscalatedToHuman, "garbled flag stays nil")

	require.NotNil(t, m.DemoBookDatetime)
	assert.Equal(t, time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC), m.DemoBookDatetime.UTC())

	require.NotNil(t, m.ExtractedName)
	assert.Equal(t, "Jane Smith", *m.ExtractedName)
	require.NotNil(t, m.ExtractedEmail)
	assert.Equal(t, "jane@acme.io", *m.ExtractedEmail)
	require.NotNil(t, m.ExtractedCompany)
	assert.Equal(t, "Acme Corp", *m.ExtractedCompany)
	require.NotNil(t, m.SmartNotification)
	assert.Equal(t, "Jane wants a demo next week", *m.SmartNotification)

	assert.Equal(t, map[string]interface{}{"intent": "asked about pricing twice"}, m.Reasoning)
}

func TestMapResultEmpty(t *testing.T) {
	m := mapResult(Result{})

	assert.Nil(t, m.IntentLevel)
	assert.Zero(t, m.IntentScore)
	assert.Zero(t, m.TotalScore)
	assert.Nil(t, m.LeadStatusTag)
	assert.Nil(t, m.ExtractedName)
	assert.Nil(t, m.CTAPricingClicked)
	assert.Nil(t, m.DemoBookDatetime)
	assert.Nil(t, m.Reasoning)
}

func TestMapResultFoldsUnknownFieldsIntoReasoning(t *testing.T) {
	res := Result{
		"intent_score":     float64(50),
		"sentiment":        "positive",
		"objections":       []interface{}{"price", "timing"},
		"next_best_action": "send case study",
		"reasoning": map[string]interface{}{
			"intent": "mentioned Q3 budget",
		},
	}

	m := mapResult(res)

	require.NotNil(t, m.Reasoning)
	assert.Equal(t, "mentioned Q3 budget", m.Reasoning["intent"])
	assert.Equal(t, "positive", m.Reasoning["sentiment"])
	assert.Equal(t, []interface{}{"price", "timing"}, m.Reasoning["objections"])
	assert.Equal(t, "send case study", m.Reasoning["next_best_action"])
	assert.NotContains(t, m.Reasoning, "intent_score", "contract fields stay out of reasoning")
}

func TestMapResultNonObjectReasoning(t *testing.T) {
	m := mapResult(Result{"reasoning": "lead sounded rushed but interested"})

	require.NotNil(t, m.Reasoning)
	assert.Equal(t, "lead sounded rushed but interested", m.Reasoning["reasoning"])
}

func TestMapResultMalformedExtraction(t *testing.T) {
	m := mapResult(Result{"extraction": "Jane Smith, Acme"})

	assert.Nil(t, m.ExtractedName)
	assert.Nil(t, m.ExtractedEmail)
	// A non-object extraction is outside the contract shape, but it is a
	// known key so it is not folded into reasoning either.
	assert.Nil(t, m.Reasoning)
}
