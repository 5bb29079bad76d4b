package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/leadanalytics"
	"github.com/ringstack/ringstack/ent/tenant"
	"github.com/ringstack/ringstack/pkg/config"
)

// Extractor is the slice of the extraction client the orchestrator uses.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (Result, error)
}

// Orchestrator runs the dual analysis for a completed call: an individual
// score sheet for the call itself, then a refresh of the rolling aggregate
// for the lead. Failures here never block billing; the completion flow
// treats them as log-and-continue.
type Orchestrator struct {
	client *ent.Client
	llm    Extractor
	cfg    *config.ExtractionConfig
	logger *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(client *ent.Client, llm Extractor, cfg *config.ExtractionConfig) *Orchestrator {
	if client == nil {
		panic("analysis.NewOrchestrator: client is required")
	}
	if llm == nil {
		panic("analysis.NewOrchestrator: extractor is required")
	}
	if cfg == nil {
		panic("analysis.NewOrchestrator: config is required")
	}
	return &Orchestrator{
		client: client,
		llm:    llm,
		cfg:    cfg,
		logger: slog.With("component", "analysis"),
	}
}

// AnalyzeInput identifies the completed call to analyze.
type AnalyzeInput struct {
	TenantID    string
	CallID      string
	ExecutionID string
	Phone       string
	Transcript  string
}

// AnalyzeCall produces the individual row for this call and refreshes the
// lead's complete row. Replays are cheap: an already-analyzed call skips the
// individual extraction and only re-derives the aggregate.
func (o *Orchestrator) AnalyzeCall(ctx context.Context, in AnalyzeInput) error {
	if strings.TrimSpace(in.Transcript) == "" {
		return nil
	}
	if in.TenantID == "" || in.CallID == "" || in.Phone == "" {
		return fmt.Errorf("analyze call: tenant, call and phone are required")
	}

	individualPrompt, completePrompt, err := o.promptsFor(ctx, in.TenantID)
	if err != nil {
		return err
	}

	analyzed, err := o.client.LeadAnalytics.Query().
		Where(
			leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeIndividual),
			leadanalytics.CallIDEQ(in.CallID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check prior analysis: %w", err)
	}

	if !analyzed {
		res, err := o.llm.Extract(ctx, ExtractRequest{
			PromptID:   individualPrompt,
			Transcript: in.Transcript,
			Variables: map[string]interface{}{
				"execution_id": in.ExecutionID,
				"phone":        in.Phone,
			},
		})
		if err != nil {
			return fmt.Errorf("individual extraction: %w", err)
		}
		if err := o.insertIndividual(ctx, in, mapResult(res)); err != nil {
			return err
		}
	}

	prior, err := o.client.LeadAnalytics.Query().
		Where(
			leadanalytics.TenantIDEQ(in.TenantID),
			leadanalytics.PhoneEQ(in.Phone),
			leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeIndividual),
			leadanalytics.CallIDNEQ(in.CallID),
		).
		Order(ent.Asc(leadanalytics.FieldAnalysisTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list prior analyses: %w", err)
	}

	completeRes, err := o.llm.Extract(ctx, ExtractRequest{
		PromptID:   completePrompt,
		Transcript: in.Transcript,
		Variables: map[string]interface{}{
			"phone":             in.Phone,
			"previous_analyses": priorSnapshots(prior),
		},
	})
	if err != nil {
		return fmt.Errorf("complete extraction: %w", err)
	}

	return o.upsertComplete(ctx, in, mapResult(completeRes), len(prior)+1)
}

// promptsFor resolves the tenant's prompt overrides, falling back to the
// system defaults.
func (o *Orchestrator) promptsFor(ctx context.Context, tenantID string) (string, string, error) {
	t, err := o.client.Tenant.Query().
		Where(tenant.IDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to load tenant for prompts: %w", err)
	}

	individual := o.cfg.IndividualPromptID
	if t.IndividualPromptID != nil && *t.IndividualPromptID != "" {
		individual = *t.IndividualPromptID
	}
	complete := o.cfg.CompletePromptID
	if t.CompletePromptID != nil && *t.CompletePromptID != "" {
		complete = *t.CompletePromptID
	}
	return individual, complete, nil
}

// insertIndividual persists the per-call score sheet. The partial unique on
// call_id absorbs races: a concurrent replay's insert simply loses.
func (o *Orchestrator) insertIndividual(ctx context.Context, in AnalyzeInput, m Mapped) error {
	create := o.client.LeadAnalytics.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetPhone(in.Phone).
		SetAnalysisType(leadanalytics.AnalysisTypeIndividual).
		SetCallID(in.CallID).
		SetAnalysisTimestamp(time.Now())
	applyMapped(create.Mutation(), m)

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			o.logger.Debug("Individual analysis already exists", "call_id", in.CallID)
			return nil
		}
		return fmt.Errorf("failed to insert individual analysis: %w", err)
	}
	return nil
}

// upsertComplete refreshes the single complete row for (tenant, phone). The
// row is locked for the update; a creation race loses to the partial unique
// index and retries as an update.
func (o *Orchestrator) upsertComplete(ctx context.Context, in AnalyzeInput, m Mapped, analyzedCalls int) error {
	for attempt := 0; attempt < 2; attempt++ {
		created, err := o.tryUpsertComplete(ctx, in, m, analyzedCalls)
		if err == nil {
			o.logger.Info("Lead analysis refreshed",
				"tenant_id", in.TenantID,
				"phone", in.Phone,
				"calls_analyzed", analyzedCalls,
				"created", created)
			return nil
		}
		if !ent.IsConstraintError(err) {
			return err
		}
		// Another completion created the complete row first; update it.
	}
	return fmt.Errorf("complete analysis upsert kept conflicting for %s", in.Phone)
}

func (o *Orchestrator) tryUpsertComplete(ctx context.Context, in AnalyzeInput, m Mapped, analyzedCalls int) (bool, error) {
	tx, err := o.client.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to start upsert transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.LeadAnalytics.Query().
		Where(
			leadanalytics.TenantIDEQ(in.TenantID),
			leadanalytics.PhoneEQ(in.Phone),
			leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeComplete),
		).
		ForUpdate().
		Only(ctx)

	created := false
	switch {
	case err == nil:
		upd := tx.LeadAnalytics.UpdateOneID(existing.ID).
			SetLatestCallID(in.CallID).
			SetPreviousCallsAnalyzed(analyzedCalls).
			SetAnalysisTimestamp(time.Now())
		applyMapped(upd.Mutation(), m)
		if err := upd.Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to update complete analysis: %w", err)
		}
	case ent.IsNotFound(err):
		created = true
		create := tx.LeadAnalytics.Create().
			SetID(uuid.New().String()).
			SetTenantID(in.TenantID).
			SetPhone(in.Phone).
			SetAnalysisType(leadanalytics.AnalysisTypeComplete).
			SetLatestCallID(in.CallID).
			SetPreviousCallsAnalyzed(analyzedCalls).
			SetAnalysisTimestamp(time.Now())
		applyMapped(create.Mutation(), m)
		if err := create.Exec(ctx); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("failed to query complete analysis: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit analysis upsert: %w", err)
	}
	return created, nil
}

// applyMapped copies the typed extraction fields onto a create or update
// mutation. Nil pointers leave the column untouched, so a refresh only
// overwrites what the model actually returned.
func applyMapped(mu *ent.LeadAnalyticsMutation, m Mapped) {
	if m.IntentLevel != nil {
		mu.SetIntentLevel(*m.IntentLevel)
	}
	mu.SetIntentScore(m.IntentScore)
	if m.UrgencyLevel != nil {
		mu.SetUrgencyLevel(*m.UrgencyLevel)
	}
	mu.SetUrgencyScore(m.UrgencyScore)
	if m.BudgetConstraint != nil {
		mu.SetBudgetConstraint(*m.BudgetConstraint)
	}
	mu.SetBudgetScore(m.BudgetScore)
	if m.FitAlignment != nil {
		mu.SetFitAlignment(*m.FitAlignment)
	}
	mu.SetFitScore(m.FitScore)
	if m.EngagementHealth != nil {
		mu.SetEngagementHealth(*m.EngagementHealth)
	}
	mu.SetEngagementScore(m.EngagementScore)
	mu.SetTotalScore(m.TotalScore)

	if m.LeadStatusTag != nil {
		mu.SetLeadStatusTag(leadanalytics.LeadStatusTag(*m.LeadStatusTag))
	}
	if m.ExtractedName != nil {
		mu.SetExtractedName(*m.ExtractedName)
	}
	if m.ExtractedEmail != nil {
		mu.SetExtractedEmail(*m.ExtractedEmail)
	}
	if m.ExtractedCompany != nil {
		mu.SetExtractedCompany(*m.ExtractedCompany)
	}
	if m.SmartNotification != nil {
		mu.SetSmartNotification(*m.SmartNotification)
	}
	if m.CTAPricingClicked != nil {
		mu.SetCtaPricingClicked(*m.CTAPricingClicked)
	}
	if m.CTADemoClicked != nil {
		mu.SetCtaDemoClicked(*m.CTADemoClicked)
	}
	if m.CTAFollowupClicked != nil {
		mu.SetCtaFollowupClicked(*m.CTAFollowupClicked)
	}
	if m.CTASampleClicked != nil {
		mu.SetCtaSampleClicked(*m.CTASampleClicked)
	}
	if m.CTAEscalatedToHuman != nil {
		mu.SetCtaEscalatedToHuman(*m.CTAEscalatedToHuman)
	}
	if m.DemoBookDatetime != nil {
		mu.SetDemoBookDatetime(*m.DemoBookDatetime)
	}
	if m.Reasoning != nil {
		mu.SetReasoning(m.Reasoning)
	}
}

// priorSnapshots compacts prior individual rows for the complete prompt.
func priorSnapshots(rows []*ent.LeadAnalytics) []map[string]interface{} {
	snapshots := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		snap := map[string]interface{}{
			"intent_score":       r.IntentScore,
			"urgency_score":      r.UrgencyScore,
			"budget_score":       r.BudgetScore,
			"fit_score":          r.FitScore,
			"engagement_score":   r.EngagementScore,
			"total_score":        r.TotalScore,
			"analysis_timestamp": r.AnalysisTimestamp.Format(time.RFC3339),
		}
		if r.IntentLevel != nil {
			snap["intent_level"] = *r.IntentLevel
		}
		if r.UrgencyLevel != nil {
			snap["urgency_level"] = *r.UrgencyLevel
		}
		if r.BudgetConstraint != nil {
			snap["budget_constraint"] = *r.BudgetConstraint
		}
		if r.FitAlignment != nil {
			snap["fit_alignment"] = *r.FitAlignment
		}
		if r.EngagementHealth != nil {
			snap["engagement_health"] = *r.EngagementHealth
		}
		if r.LeadStatusTag != "" {
			snap["lead_status_tag"] = string(r.LeadStatusTag)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots
}
