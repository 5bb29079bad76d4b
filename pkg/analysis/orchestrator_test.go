package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/ent/leadanalytics"
	"github.com/ringstack/ringstack/pkg/config"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExtractor serves canned results keyed by prompt id and records every
// request it sees.
type fakeExtractor struct {
	mu      sync.Mutex
	reqs    []ExtractRequest
	results map[string]Result
	err     error
}

func (f *fakeExtractor) Extract(_ context.Context, req ExtractRequest) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	if res, ok := f.results[req.PromptID]; ok {
		return res, nil
	}
	return Result{}, nil
}

func (f *fakeExtractor) requests() []ExtractRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ExtractRequest(nil), f.reqs...)
}

func extractionTestConfig() *config.ExtractionConfig {
	return &config.ExtractionConfig{
		IndividualPromptID: "individual",
		CompletePromptID:   "complete",
	}
}

func seedTenant(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Tenant.Create().
		SetID(id).
		SetName("Tenant " + id).
		SetEmail(id + "@example.com").
		SetCredits(100).
		Save(context.Background())
	require.NoError(t, err)
}

func setupOrchestrator(t *testing.T) (*Orchestrator, *fakeExtractor, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	llm := &fakeExtractor{results: map[string]Result{}}
	return NewOrchestrator(client.Client, llm, extractionTestConfig()), llm, client.Client
}

func TestAnalyzeCallWritesIndividualAndComplete(t *testing.T) {
	ctx := context.Background()
	orch, llm, client := setupOrchestrator(t)
	seedTenant(t, client, "tenant-1")

	llm.results["individual"] = Result{
		"intent_level":    "High",
		"intent_score":    float64(80),
		"lead_status_tag": "Hot",
		"extraction": map[string]interface{}{
			"name": "Jane Smith",
		},
	}
	llm.results["complete"] = Result{
		"total_score":     float64(75),
		"lead_status_tag": "Warm",
	}

	err := orch.AnalyzeCall(ctx, AnalyzeInput{
		TenantID:    "tenant-1",
		CallID:      "call-1",
		ExecutionID: "exec-1",
		Phone:       "+15550100",
		Transcript:  "agent: Hello\nlead: Tell me about pricing",
	})
	require.NoError(t, err)

	reqs := llm.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "individual", reqs[0].PromptID)
	assert.Equal(t, "agent: Hello\nlead: Tell me about pricing", reqs[0].Transcript)
	assert.Equal(t, "exec-1", reqs[0].Variables["execution_id"])
	assert.Equal(t, "+15550100", reqs[0].Variables["phone"])
	assert.Equal(t, "complete", reqs[1].PromptID)
	assert.Equal(t, "+15550100", reqs[1].Variables["phone"])
	assert.Empty(t, reqs[1].Variables["previous_analyses"], "first call has no history")

	individual, err := client.LeadAnalytics.Query().
		Where(leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeIndividual)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", individual.TenantID)
	assert.Equal(t, "+15550100", individual.Phone)
	require.NotNil(t, individual.CallID)
	assert.Equal(t, "call-1", *individual.CallID)
	assert.Equal(t, 80, individual.IntentScore)
	assert.Equal(t, leadanalytics.LeadStatusTagHot, individual.LeadStatusTag)
	require.NotNil(t, individual.ExtractedName)
	assert.Equal(t, "Jane Smith", *individual.ExtractedName)

	complete, err := client.LeadAnalytics.Query().
		Where(leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeComplete)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, complete.LatestCallID)
	assert.Equal(t, "call-1", *complete.LatestCallID)
	assert.Equal(t, 1, complete.PreviousCallsAnalyzed)
	assert.Equal(t, 75, complete.TotalScore)
	assert.Equal(t, leadanalytics.LeadStatusTagWarm, complete.LeadStatusTag)
}

func TestAnalyzeCallReplaySkipsIndividualExtraction(t *testing.T) {
	ctx := context.Background()
	orch, llm, client := setupOrchestrator(t)
	seedTenant(t, client, "tenant-1")

	in := AnalyzeInput{
		TenantID:    "tenant-1",
		CallID:      "call-1",
		ExecutionID: "exec-1",
		Phone:       "+15550100",
		Transcript:  "agent: Hello\nlead: Hi",
	}
	require.NoError(t, orch.AnalyzeCall(ctx, in))
	require.NoError(t, orch.AnalyzeCall(ctx, in))

	// The replay only re-derives the aggregate: one individual extraction,
	// two complete ones.
	reqs := llm.requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "individual", reqs[0].PromptID)
	assert.Equal(t, "complete", reqs[1].PromptID)
	assert.Equal(t, "complete", reqs[2].PromptID)
	assert.Empty(t, reqs[2].Variables["previous_analyses"], "own call never counts as history")

	individuals, err := client.LeadAnalytics.Query().
		Where(leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeIndividual)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, individuals)

	complete, err := client.LeadAnalytics.Query().
		Where(leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeComplete)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, complete.PreviousCallsAnalyzed)
}

func TestAnalyzeCallFoldsPriorCallsIntoAggregate(t *testing.T) {
	ctx := context.Background()
	orch, llm, client := setupOrchestrator(t)
	seedTenant(t, client, "tenant-1")

	llm.results["individual"] = Result{"intent_score": float64(80)}

	first := AnalyzeInput{
		TenantID:   "tenant-1",
		CallID:     "call-1",
		Phone:      "+15550100",
		Transcript: "agent: Hello\nlead: Hi",
	}
	require.NoError(t, orch.AnalyzeCall(ctx, first))

	second := first
	second.CallID = "call-2"
	second.Transcript = "agent: Welcome back\nlead: Ready to buy"
	require.NoError(t, orch.AnalyzeCall(ctx, second))

	individuals, err := client.LeadAnalytics.Query().
		Where(leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeIndividual)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, individuals)

	complete, err := client.LeadAnalytics.Query().
		Where(leadanalytics.AnalysisTypeEQ(leadanalytics.AnalysisTypeComplete)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, complete.LatestCallID)
	assert.Equal(t, "call-2", *complete.LatestCallID)
	assert.Equal(t, 2, complete.PreviousCallsAnalyzed)

	reqs := llm.requests()
	require.Len(t, reqs, 4)
	last := reqs[3]
	require.Equal(t, "complete", last.PromptID)
	snaps, ok := last.Variables["previous_analyses"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, snaps, 1)
	assert.Equal(t, 80, snaps[0]["intent_score"])
}

func TestAnalyzeCallSkipsEmptyTranscript(t *testing.T) {
	ctx := context.Background()
	orch, llm, client := setupOrchestrator(t)
	seedTenant(t, client, "tenant-1")

	for _, transcript := range []string{"", "   \n"} {
		err := orch.AnalyzeCall(ctx, AnalyzeInput{
			TenantID:   "tenant-1",
			CallID:     "call-1",
			Phone:      "+15550100",
			Transcript: transcript,
		})
		require.NoError(t, err)
	}

	assert.Empty(t, llm.requests())
	count, err := client.LeadAnalytics.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAnalyzeCallValidation(t *testing.T) {
	ctx := context.Background()
	orch, _, client := setupOrchestrator(t)
	seedTenant(t, client, "tenant-1")

	tests := []struct {
		name string
		in   AnalyzeInput
	}{
		{
			name: "missing tenant",
			in:   AnalyzeInput{CallID: "call-1", Phone: "+15550100", Transcript: "hi"},
		},
		{
			name: "missing call",
			in:   AnalyzeInput{TenantID: "tenant-1", Phone: "+15550100", Transcript: "hi"},
		},
		{
			name: "missing phone",
			in:   AnalyzeInput{TenantID: "tenant-1", CallID: "call-1", Transcript: "hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := orch.AnalyzeCall(ctx, tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "required")
		})
	}
}

func TestAnalyzeCallHonorsTenantPromptOverrides(t *testing.T) {
	ctx := context.Background()
	orch, llm, client := setupOrchestrator(t)

	_, err := client.Tenant.Create().
		SetID("tenant-1").
		SetName("Tenant tenant-1").
		SetEmail("tenant-1@example.com").
		SetCredits(100).
		SetIndividualPromptID("acme-individual").
		SetCompletePromptID("acme-complete").
		Save(ctx)
	require.NoError(t, err)

	err = orch.AnalyzeCall(ctx, AnalyzeInput{
		TenantID:   "tenant-1",
		CallID:     "call-1",
		Phone:      "+15550100",
		Transcript: "agent: Hello\nlead: Hi",
	})
	require.NoError(t, err)

	reqs := llm.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "acme-individual", reqs[0].PromptID)
	assert.Equal(t, "acme-complete", reqs[1].PromptID)
}

func TestAnalyzeCallExtractionFailurePersistsNothing(t *testing.T) {
	ctx := context.Background()
	orch, llm, client := setupOrchestrator(t)
	seedTenant(t, client, "tenant-1")
	llm.err = errors.New("upstream 503")

	err := orch.AnalyzeCall(ctx, AnalyzeInput{
		TenantID:   "tenant-1",
		CallID:     "call-1",
		Phone:      "+15550100",
		Transcript: "agent: Hello\nlead: Hi",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "individual extraction")

	count, err := client.LeadAnalytics.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAnalyzeCallUnknownTenant(t *testing.T) {
	ctx := context.Background()
	orch, llm, _ := setupOrchestrator(t)

	err := orch.AnalyzeCall(ctx, AnalyzeInput{
		TenantID:   "ghost",
		CallID:     "call-1",
		Phone:      "+15550100",
		Transcript: "agent: Hello",
	})
	require.Error(t, err)
	assert.Empty(t, llm.requests())
}
