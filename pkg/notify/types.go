// Package notify records and delivers tenant-facing email notifications.
// Every attempt leaves exactly one Notification row keyed by an idempotency
// key: sent, failed, or skipped. There are no retries anywhere in this
// package; a failed row is the audit trail, and replaying the same key is
// always a no-op.
package notify

import (
	"fmt"
	"strings"
	"time"
)

// Type identifies what a notification is about. The set is closed except for
// the credit_low_{n} family, whose thresholds come from configuration.
type Type string

const (
	TypeEmailVerification         Type = "email_verification"
	TypeEmailVerificationReminder Type = "email_verification_reminder"
	TypeCreditExhausted           Type = "credit_exhausted_0"
	TypeCreditsAdded              Type = "credits_added"
	TypeCampaignSummary           Type = "campaign_summary"
	TypeMarketing                 Type = "marketing"
)

// TypeCreditLow names the low-balance warning for one threshold, e.g.
// credit_low_15.
func TypeCreditLow(threshold int) Type {
	return Type(fmt.Sprintf("credit_low_%d", threshold))
}

// prefDisabledMessage is stored verbatim on skipped rows so operators can
// tell a preference skip from a delivery failure.
const prefDisabledMessage = "User preference disabled"

// bucket names the preference flag gating a type. The empty bucket means the
// type is always delivered (account security is not opt-out).
type bucket string

const (
	bucketAlways          bucket = ""
	bucketLowCredit       bucket = "low_credit_alerts"
	bucketCreditsAdded    bucket = "credits_added_emails"
	bucketCampaignSummary bucket = "campaign_summary_emails"
	bucketVerification    bucket = "email_verification_reminders"
	bucketMarketing       bucket = "marketing_emails"
)

// bucketFor maps a type to the preference flag that gates it.
func bucketFor(t Type) bucket {
	switch {
	case t == TypeEmailVerification:
		return bucketAlways
	case t == TypeEmailVerificationReminder:
		return bucketVerification
	case t == TypeCreditsAdded:
		return bucketCreditsAdded
	case t == TypeCampaignSummary:
		return bucketCampaignSummary
	case t == TypeMarketing:
		return bucketMarketing
	case t == TypeCreditExhausted, strings.HasPrefix(string(t), "credit_low_"):
		return bucketLowCredit
	default:
		return bucketAlways
	}
}

// knownType rejects types outside the closed set before anything is stored.
func knownType(t Type) bool {
	switch t {
	case TypeEmailVerification, TypeEmailVerificationReminder,
		TypeCreditExhausted, TypeCreditsAdded, TypeCampaignSummary,
		TypeMarketing:
		return true
	}
	return strings.HasPrefix(string(t), "credit_low_")
}

// VerificationKey dedups the initial verification mail per send attempt; the
// timestamp makes every legitimate resend a fresh key.
func VerificationKey(tenantID string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", tenantID, TypeEmailVerification, now.UTC().Unix())
}

// VerificationReminderKey allows one reminder per tenant per UTC day.
func VerificationReminderKey(tenantID string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%s", tenantID, TypeEmailVerificationReminder, now.UTC().Format("2006-01-02"))
}

// LowCreditKey allows one warning per tenant, type, and UTC day. Crossing the
// same threshold twice in one day emails once.
func LowCreditKey(tenantID string, t Type, now time.Time) string {
	return fmt.Sprintf("%s:%s:%s", tenantID, t, now.UTC().Format("2006-01-02"))
}

// CreditsAddedKey dedups the purchase receipt by transaction.
func CreditsAddedKey(tenantID, transactionID string) string {
	return fmt.Sprintf("%s:%s:%s", tenantID, TypeCreditsAdded, transactionID)
}

// CampaignSummaryKey dedups the completion summary by campaign, which is what
// makes the summary fire exactly once no matter how many completion webhooks
// race at the finish line.
func CampaignSummaryKey(tenantID, campaignID string) string {
	return fmt.Sprintf("%s:%s:%s", tenantID, TypeCampaignSummary, campaignID)
}

// Preferences is a tenant's notification opt-out sheet. Absence of a stored
// row means everything is enabled.
type Preferences struct {
	LowCreditAlerts            bool `json:"low_credit_alerts"`
	CreditsAddedEmails         bool `json:"credits_added_emails"`
	CampaignSummaryEmails      bool `json:"campaign_summary_emails"`
	EmailVerificationReminders bool `json:"email_verification_reminders"`
	MarketingEmails            bool `json:"marketing_emails"`
}

// defaultPreferences: every bucket enabled.
func defaultPreferences() Preferences {
	return Preferences{
		LowCreditAlerts:            true,
		CreditsAddedEmails:         true,
		CampaignSummaryEmails:      true,
		EmailVerificationReminders: true,
		MarketingEmails:            true,
	}
}

// enabled reports whether the given bucket is switched on.
func (p Preferences) enabled(b bucket) bool {
	switch b {
	case bucketAlways:
		return true
	case bucketLowCredit:
		return p.LowCreditAlerts
	case bucketCreditsAdded:
		return p.CreditsAddedEmails
	case bucketCampaignSummary:
		return p.CampaignSummaryEmails
	case bucketVerification:
		return p.EmailVerificationReminders
	case bucketMarketing:
		return p.MarketingEmails
	default:
		return true
	}
}

// PreferencesPatch is a partial preference update; nil fields keep their
// current value.
type PreferencesPatch struct {
	LowCreditAlerts            *bool `json:"low_credit_alerts,omitempty"`
	CreditsAddedEmails         *bool `json:"credits_added_emails,omitempty"`
	CampaignSummaryEmails      *bool `json:"campaign_summary_emails,omitempty"`
	EmailVerificationReminders *bool `json:"email_verification_reminders,omitempty"`
	MarketingEmails            *bool `json:"marketing_emails,omitempty"`
}
