// Package calls owns the call lifecycle: direct initiation with
// queue-or-dispatch semantics, operator stop, and the webhook ingestion that
// settles every call the provider reports on. Completion processing is the
// package's core: one transaction makes the call terminal, bills it, stores
// the transcript, and frees the concurrency slot; everything after the
// commit is best-effort.
package calls

import (
	"fmt"
	"strings"
)

// Webhook event discriminators as the voice provider sends them.
const (
	EventInitiated        = "initiated"
	EventRinging          = "ringing"
	EventInProgress       = "in-progress"
	EventNoAnswer         = "no-answer"
	EventBusy             = "busy"
	EventCallDisconnected = "call-disconnected"
	EventCompleted        = "completed"
)

// Completion statuses inside an EventCompleted payload.
const (
	CompletionDone  = "done"
	CompletionError = "error"
)

// TranscriptSegment is one speaker turn as delivered by the provider.
type TranscriptSegment struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// WebhookEvent is the provider's webhook payload. Lifecycle events carry the
// execution id and phones; completion events add duration, transcript, and
// hangup details. Metadata is echoed back verbatim from CreateCall and
// carries our internal call id.
type WebhookEvent struct {
	Event       string `json:"event"`
	ExecutionID string `json:"execution_id"`

	FromPhone string `json:"from_phone,omitempty"`
	ToPhone   string `json:"to_phone,omitempty"`

	// Completion fields.
	Status          string              `json:"status,omitempty"`
	DurationSeconds int                 `json:"duration_seconds,omitempty"`
	Summary         string              `json:"summary,omitempty"`
	RecordingURL    string              `json:"recording_url,omitempty"`
	Transcript      []TranscriptSegment `json:"transcript,omitempty"`

	HangupBy           string `json:"hangup_by,omitempty"`
	HangupReason       string `json:"hangup_reason,omitempty"`
	HangupProviderCode string `json:"hangup_provider_code,omitempty"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// ProviderData is whatever else the provider attaches; stored opaquely.
	ProviderData map[string]interface{} `json:"provider_data,omitempty"`
}

// completion reports whether the event settles the call.
func (e *WebhookEvent) completion() bool {
	return e.Event == EventCompleted
}

// flattenTranscript renders speaker turns as "<role>: <message>" lines and
// keeps the structured form for storage.
func flattenTranscript(segments []TranscriptSegment) (string, []map[string]interface{}) {
	if len(segments) == 0 {
		return "", nil
	}
	var b strings.Builder
	structured := make([]map[string]interface{}, 0, len(segments))
	for _, seg := range segments {
		role := seg.Role
		if role == "" {
			role = "unknown"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, seg.Message)
		m := map[string]interface{}{
			"role":    seg.Role,
			"message": seg.Message,
		}
		if seg.Timestamp != "" {
			m["timestamp"] = seg.Timestamp
		}
		structured = append(structured, m)
	}
	return strings.TrimRight(b.String(), "\n"), structured
}
