package analysis

import (
	"strconv"
	"strings"
	"time"
)

// Mapped is the typed view of an extraction Result, ready to persist.
// Pointers are nil when the model omitted or garbled the field.
type Mapped struct {
	IntentLevel      *string
	IntentScore      int
	UrgencyLevel     *string
	UrgencyScore     int
	BudgetConstraint *string
	BudgetScore      int
	FitAlignment     *string
	FitScore         int
	EngagementHealth *string
	EngagementScore  int
	TotalScore       int

	LeadStatusTag *string

	ExtractedName     *string
	ExtractedEmail    *string
	ExtractedCompany  *string
	SmartNotification *string

	CTAPricingClicked   *bool
	CTADemoClicked      *bool
	CTAFollowupClicked  *bool
	CTASampleClicked    *bool
	CTAEscalatedToHuman *bool

	DemoBookDatetime *time.Time

	Reasoning map[string]interface{}
}

// knownKeys are the top-level fields of the extraction contract. Anything
// else the model returns is folded into Reasoning instead of being dropped.
var knownKeys = map[string]struct{}{
	"intent_level":           {},
	"intent_score":           {},
	"urgency_level":          {},
	"urgency_score":          {},
	"budget_constraint":      {},
	"budget_score":           {},
	"fit_alignment":          {},
	"fit_score":              {},
	"engagement_health":      {},
	"engagement_score":       {},
	"total_score":            {},
	"lead_status_tag":        {},
	"reasoning":              {},
	"extraction":             {},
	"cta_pricing_clicked":    {},
	"cta_demo_clicked":       {},
	"cta_followup_clicked":   {},
	"cta_sample_clicked":     {},
	"cta_escalated_to_human": {},
	"demo_book_datetime":     {},
}

// leadStatusTags is the closed set the column accepts.
var leadStatusTags = []string{"Hot", "Warm", "Cold"}

// mapResult applies the extraction mapping contract: same-name fields,
// scores clamped to [0,100] with unparsable values scoring 0, Yes/No/null
// normalization on the cta flags, and a validated lead status tag.
func mapResult(r Result) Mapped {
	m := Mapped{
		IntentLevel:      stringField(r["intent_level"]),
		IntentScore:      scoreField(r["intent_score"]),
		UrgencyLevel:     stringField(r["urgency_level"]),
		UrgencyScore:     scoreField(r["urgency_score"]),
		BudgetConstraint: stringField(r["budget_constraint"]),
		BudgetScore:      scoreField(r["budget_score"]),
		FitAlignment:     stringField(r["fit_alignment"]),
		FitScore:         scoreField(r["fit_score"]),
		EngagementHealth: stringField(r["engagement_health"]),
		EngagementScore:  scoreField(r["engagement_score"]),
		TotalScore:       scoreField(r["total_score"]),

		LeadStatusTag: tagField(r["lead_status_tag"]),

		CTAPricingClicked:   boolField(r["cta_pricing_clicked"]),
		CTADemoClicked:      boolField(r["cta_demo_clicked"]),
		CTAFollowupClicked:  boolField(r["cta_followup_clicked"]),
		CTASampleClicked:    boolField(r["cta_sample_clicked"]),
		CTAEscalatedToHuman: boolField(r["cta_escalated_to_human"]),

		DemoBookDatetime: timeField(r["demo_book_datetime"]),
	}

	if extraction, ok := r["extraction"].(map[string]interface{}); ok {
		m.ExtractedName = stringField(extraction["name"])
		m.ExtractedEmail = stringField(extraction["email_address"])
		m.ExtractedCompany = stringField(extraction["company_name"])
		m.SmartNotification = stringField(extraction["smartnotification"])
	}

	m.Reasoning = reasoningField(r)
	return m
}

// reasoningField returns the model's reasoning object with any top-level
// fields outside the contract folded in.
func reasoningField(r Result) map[string]interface{} {
	reasoning := map[string]interface{}{}
	switch v := r["reasoning"].(type) {
	case map[string]interface{}:
		for k, val := range v {
			reasoning[k] = val
		}
	case nil:
	default:
		reasoning["reasoning"] = v
	}

	for k, v := range r {
		if _, known := knownKeys[k]; !known {
			reasoning[k] = v
		}
	}
	if len(reasoning) == 0 {
		return nil
	}
	return reasoning
}

// stringField trims a string value; empty or non-string becomes nil.
func stringField(v interface{}) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// scoreField coerces a score to an int clamped to [0,100]. The model
// sometimes returns numbers as strings; anything unparsable scores 0.
func scoreField(v interface{}) int {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case int:
		n = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return int(n)
}

// tagField validates the lead status tag against the closed set,
// canonicalizing case. Unknown values become nil.
func tagField(v interface{}) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, tag := range leadStatusTags {
		if strings.EqualFold(s, tag) {
			t := tag
			return &t
		}
	}
	return nil
}

// boolField normalizes the cta flags: real booleans pass through,
// "Yes"/"No" strings map to true/false, everything else is nil.
func boolField(v interface{}) *bool {
	switch t := v.(type) {
	case bool:
		b := t
		return &b
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "true":
			b := true
			return &b
		case "no", "false":
			b := false
			return &b
		}
	}
	return nil
}

// timeField parses an ISO-8601 timestamp with zone; unparsable becomes nil.
func timeField(v interface{}) *time.Time {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04:05-0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
