// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ringstack/ringstack/ent/activeslot"
	"github.com/ringstack/ringstack/ent/agent"
	"github.com/ringstack/ringstack/ent/call"
	"github.com/ringstack/ringstack/ent/campaign"
	"github.com/ringstack/ringstack/ent/contact"
	"github.com/ringstack/ringstack/ent/credittransaction"
	"github.com/ringstack/ringstack/ent/engagementflow"
	"github.com/ringstack/ringstack/ent/leadanalytics"
	"github.com/ringstack/ringstack/ent/notification"
	"github.com/ringstack/ringstack/ent/notificationpreference"
	"github.com/ringstack/ringstack/ent/phonenumber"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/ent/schema"
	"github.com/ringstack/ringstack/ent/tenant"
	"github.com/ringstack/ringstack/ent/transcript"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activeslotFields := schema.ActiveSlot{}.Fields()
	_ = activeslotFields
	// activeslotDescAcquiredAt is the schema descriptor for acquired_at field.
	activeslotDescAcquiredAt := activeslotFields[4].Descriptor()
	// activeslot.DefaultAcquiredAt holds the default value on creation for the acquired_at field.
	activeslot.DefaultAcquiredAt = activeslotDescAcquiredAt.Default.(func() time.Time)
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescIsActive is the schema descriptor for is_active field.
	agentDescIsActive := agentFields[4].Descriptor()
	// agent.DefaultIsActive holds the default value on creation for the is_active field.
	agent.DefaultIsActive = agentDescIsActive.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[5].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[6].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	callFields := schema.Call{}.Fields()
	_ = callFields
	// callDescDurationSeconds is the schema descriptor for duration_seconds field.
	callDescDurationSeconds := callFields[12].Descriptor()
	// call.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	call.DefaultDurationSeconds = callDescDurationSeconds.Default.(int)
	// callDescBilledMinutes is the schema descriptor for billed_minutes field.
	callDescBilledMinutes := callFields[13].Descriptor()
	// call.DefaultBilledMinutes holds the default value on creation for the billed_minutes field.
	call.DefaultBilledMinutes = callDescBilledMinutes.Default.(int)
	// callDescCreditsUsed is the schema descriptor for credits_used field.
	callDescCreditsUsed := callFields[14].Descriptor()
	// call.DefaultCreditsUsed holds the default value on creation for the credits_used field.
	call.DefaultCreditsUsed = callDescCreditsUsed.Default.(int)
	// callDescPlaceholder is the schema descriptor for placeholder field.
	callDescPlaceholder := callFields[21].Descriptor()
	// call.DefaultPlaceholder holds the default value on creation for the placeholder field.
	call.DefaultPlaceholder = callDescPlaceholder.Default.(bool)
	// callDescCreatedAt is the schema descriptor for created_at field.
	callDescCreatedAt := callFields[28].Descriptor()
	// call.DefaultCreatedAt holds the default value on creation for the created_at field.
	call.DefaultCreatedAt = callDescCreatedAt.Default.(func() time.Time)
	// callDescUpdatedAt is the schema descriptor for updated_at field.
	callDescUpdatedAt := callFields[29].Descriptor()
	// call.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	call.DefaultUpdatedAt = callDescUpdatedAt.Default.(func() time.Time)
	// call.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	call.UpdateDefaultUpdatedAt = callDescUpdatedAt.UpdateDefault.(func() time.Time)
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescTimezone is the schema descriptor for timezone field.
	campaignDescTimezone := campaignFields[5].Descriptor()
	// campaign.DefaultTimezone holds the default value on creation for the timezone field.
	campaign.DefaultTimezone = campaignDescTimezone.Default.(string)
	// campaignDescFirstCallTime is the schema descriptor for first_call_time field.
	campaignDescFirstCallTime := campaignFields[6].Descriptor()
	// campaign.DefaultFirstCallTime holds the default value on creation for the first_call_time field.
	campaign.DefaultFirstCallTime = campaignDescFirstCallTime.Default.(string)
	// campaignDescLastCallTime is the schema descriptor for last_call_time field.
	campaignDescLastCallTime := campaignFields[7].Descriptor()
	// campaign.DefaultLastCallTime holds the default value on creation for the last_call_time field.
	campaign.DefaultLastCallTime = campaignDescLastCallTime.Default.(string)
	// campaignDescTotalContacts is the schema descriptor for total_contacts field.
	campaignDescTotalContacts := campaignFields[10].Descriptor()
	// campaign.DefaultTotalContacts holds the default value on creation for the total_contacts field.
	campaign.DefaultTotalContacts = campaignDescTotalContacts.Default.(int)
	// campaignDescCompletedCalls is the schema descriptor for completed_calls field.
	campaignDescCompletedCalls := campaignFields[11].Descriptor()
	// campaign.DefaultCompletedCalls holds the default value on creation for the completed_calls field.
	campaign.DefaultCompletedCalls = campaignDescCompletedCalls.Default.(int)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[12].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[13].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescIsAutoCreated is the schema descriptor for is_auto_created field.
	contactDescIsAutoCreated := contactFields[8].Descriptor()
	// contact.DefaultIsAutoCreated holds the default value on creation for the is_auto_created field.
	contact.DefaultIsAutoCreated = contactDescIsAutoCreated.Default.(bool)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[13].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[14].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	credittransactionFields := schema.CreditTransaction{}.Fields()
	_ = credittransactionFields
	// credittransactionDescCreatedAt is the schema descriptor for created_at field.
	credittransactionDescCreatedAt := credittransactionFields[7].Descriptor()
	// credittransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	credittransaction.DefaultCreatedAt = credittransactionDescCreatedAt.Default.(func() time.Time)
	engagementflowFields := schema.EngagementFlow{}.Fields()
	_ = engagementflowFields
	// engagementflowDescPriority is the schema descriptor for priority field.
	engagementflowDescPriority := engagementflowFields[3].Descriptor()
	// engagementflow.DefaultPriority holds the default value on creation for the priority field.
	engagementflow.DefaultPriority = engagementflowDescPriority.Default.(int)
	// engagementflowDescEnabled is the schema descriptor for enabled field.
	engagementflowDescEnabled := engagementflowFields[4].Descriptor()
	// engagementflow.DefaultEnabled holds the default value on creation for the enabled field.
	engagementflow.DefaultEnabled = engagementflowDescEnabled.Default.(bool)
	// engagementflowDescCreatedAt is the schema descriptor for created_at field.
	engagementflowDescCreatedAt := engagementflowFields[9].Descriptor()
	// engagementflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	engagementflow.DefaultCreatedAt = engagementflowDescCreatedAt.Default.(func() time.Time)
	// engagementflowDescUpdatedAt is the schema descriptor for updated_at field.
	engagementflowDescUpdatedAt := engagementflowFields[10].Descriptor()
	// engagementflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	engagementflow.DefaultUpdatedAt = engagementflowDescUpdatedAt.Default.(func() time.Time)
	// engagementflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	engagementflow.UpdateDefaultUpdatedAt = engagementflowDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadanalyticsFields := schema.LeadAnalytics{}.Fields()
	_ = leadanalyticsFields
	// leadanalyticsDescIntentScore is the schema descriptor for intent_score field.
	leadanalyticsDescIntentScore := leadanalyticsFields[7].Descriptor()
	// leadanalytics.DefaultIntentScore holds the default value on creation for the intent_score field.
	leadanalytics.DefaultIntentScore = leadanalyticsDescIntentScore.Default.(int)
	// leadanalyticsDescUrgencyScore is the schema descriptor for urgency_score field.
	leadanalyticsDescUrgencyScore := leadanalyticsFields[9].Descriptor()
	// leadanalytics.DefaultUrgencyScore holds the default value on creation for the urgency_score field.
	leadanalytics.DefaultUrgencyScore = leadanalyticsDescUrgencyScore.Default.(int)
	// leadanalyticsDescBudgetScore is the schema descriptor for budget_score field.
	leadanalyticsDescBudgetScore := leadanalyticsFields[11].Descriptor()
	// leadanalytics.DefaultBudgetScore holds the default value on creation for the budget_score field.
	leadanalytics.DefaultBudgetScore = leadanalyticsDescBudgetScore.Default.(int)
	// leadanalyticsDescFitScore is the schema descriptor for fit_score field.
	leadanalyticsDescFitScore := leadanalyticsFields[13].Descriptor()
	// leadanalytics.DefaultFitScore holds the default value on creation for the fit_score field.
	leadanalytics.DefaultFitScore = leadanalyticsDescFitScore.Default.(int)
	// leadanalyticsDescEngagementScore is the schema descriptor for engagement_score field.
	leadanalyticsDescEngagementScore := leadanalyticsFields[15].Descriptor()
	// leadanalytics.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	leadanalytics.DefaultEngagementScore = leadanalyticsDescEngagementScore.Default.(int)
	// leadanalyticsDescTotalScore is the schema descriptor for total_score field.
	leadanalyticsDescTotalScore := leadanalyticsFields[16].Descriptor()
	// leadanalytics.DefaultTotalScore holds the default value on creation for the total_score field.
	leadanalytics.DefaultTotalScore = leadanalyticsDescTotalScore.Default.(int)
	// leadanalyticsDescPreviousCallsAnalyzed is the schema descriptor for previous_calls_analyzed field.
	leadanalyticsDescPreviousCallsAnalyzed := leadanalyticsFields[29].Descriptor()
	// leadanalytics.DefaultPreviousCallsAnalyzed holds the default value on creation for the previous_calls_analyzed field.
	leadanalytics.DefaultPreviousCallsAnalyzed = leadanalyticsDescPreviousCallsAnalyzed.Default.(int)
	// leadanalyticsDescAnalysisTimestamp is the schema descriptor for analysis_timestamp field.
	leadanalyticsDescAnalysisTimestamp := leadanalyticsFields[30].Descriptor()
	// leadanalytics.DefaultAnalysisTimestamp holds the default value on creation for the analysis_timestamp field.
	leadanalytics.DefaultAnalysisTimestamp = leadanalyticsDescAnalysisTimestamp.Default.(func() time.Time)
	// leadanalyticsDescCreatedAt is the schema descriptor for created_at field.
	leadanalyticsDescCreatedAt := leadanalyticsFields[31].Descriptor()
	// leadanalytics.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadanalytics.DefaultCreatedAt = leadanalyticsDescCreatedAt.Default.(func() time.Time)
	// leadanalyticsDescUpdatedAt is the schema descriptor for updated_at field.
	leadanalyticsDescUpdatedAt := leadanalyticsFields[32].Descriptor()
	// leadanalytics.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	leadanalytics.DefaultUpdatedAt = leadanalyticsDescUpdatedAt.Default.(func() time.Time)
	// leadanalytics.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	leadanalytics.UpdateDefaultUpdatedAt = leadanalyticsDescUpdatedAt.UpdateDefault.(func() time.Time)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[12].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	notificationpreferenceFields := schema.NotificationPreference{}.Fields()
	_ = notificationpreferenceFields
	// notificationpreferenceDescLowCreditAlerts is the schema descriptor for low_credit_alerts field.
	notificationpreferenceDescLowCreditAlerts := notificationpreferenceFields[2].Descriptor()
	// notificationpreference.DefaultLowCreditAlerts holds the default value on creation for the low_credit_alerts field.
	notificationpreference.DefaultLowCreditAlerts = notificationpreferenceDescLowCreditAlerts.Default.(bool)
	// notificationpreferenceDescCreditsAddedEmails is the schema descriptor for credits_added_emails field.
	notificationpreferenceDescCreditsAddedEmails := notificationpreferenceFields[3].Descriptor()
	// notificationpreference.DefaultCreditsAddedEmails holds the default value on creation for the credits_added_emails field.
	notificationpreference.DefaultCreditsAddedEmails = notificationpreferenceDescCreditsAddedEmails.Default.(bool)
	// notificationpreferenceDescCampaignSummaryEmails is the schema descriptor for campaign_summary_emails field.
	notificationpreferenceDescCampaignSummaryEmails := notificationpreferenceFields[4].Descriptor()
	// notificationpreference.DefaultCampaignSummaryEmails holds the default value on creation for the campaign_summary_emails field.
	notificationpreference.DefaultCampaignSummaryEmails = notificationpreferenceDescCampaignSummaryEmails.Default.(bool)
	// notificationpreferenceDescEmailVerificationReminders is the schema descriptor for email_verification_reminders field.
	notificationpreferenceDescEmailVerificationReminders := notificationpreferenceFields[5].Descriptor()
	// notificationpreference.DefaultEmailVerificationReminders holds the default value on creation for the email_verification_reminders field.
	notificationpreference.DefaultEmailVerificationReminders = notificationpreferenceDescEmailVerificationReminders.Default.(bool)
	// notificationpreferenceDescMarketingEmails is the schema descriptor for marketing_emails field.
	notificationpreferenceDescMarketingEmails := notificationpreferenceFields[6].Descriptor()
	// notificationpreference.DefaultMarketingEmails holds the default value on creation for the marketing_emails field.
	notificationpreference.DefaultMarketingEmails = notificationpreferenceDescMarketingEmails.Default.(bool)
	// notificationpreferenceDescCreatedAt is the schema descriptor for created_at field.
	notificationpreferenceDescCreatedAt := notificationpreferenceFields[7].Descriptor()
	// notificationpreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationpreference.DefaultCreatedAt = notificationpreferenceDescCreatedAt.Default.(func() time.Time)
	// notificationpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	notificationpreferenceDescUpdatedAt := notificationpreferenceFields[8].Descriptor()
	// notificationpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationpreference.DefaultUpdatedAt = notificationpreferenceDescUpdatedAt.Default.(func() time.Time)
	// notificationpreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationpreference.UpdateDefaultUpdatedAt = notificationpreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	phonenumberFields := schema.PhoneNumber{}.Fields()
	_ = phonenumberFields
	// phonenumberDescIsActive is the schema descriptor for is_active field.
	phonenumberDescIsActive := phonenumberFields[4].Descriptor()
	// phonenumber.DefaultIsActive holds the default value on creation for the is_active field.
	phonenumber.DefaultIsActive = phonenumberDescIsActive.Default.(bool)
	// phonenumberDescCreatedAt is the schema descriptor for created_at field.
	phonenumberDescCreatedAt := phonenumberFields[5].Descriptor()
	// phonenumber.DefaultCreatedAt holds the default value on creation for the created_at field.
	phonenumber.DefaultCreatedAt = phonenumberDescCreatedAt.Default.(func() time.Time)
	queueitemFields := schema.QueueItem{}.Fields()
	_ = queueitemFields
	// queueitemDescAttempts is the schema descriptor for attempts field.
	queueitemDescAttempts := queueitemFields[13].Descriptor()
	// queueitem.DefaultAttempts holds the default value on creation for the attempts field.
	queueitem.DefaultAttempts = queueitemDescAttempts.Default.(int)
	// queueitemDescCreatedAt is the schema descriptor for created_at field.
	queueitemDescCreatedAt := queueitemFields[16].Descriptor()
	// queueitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	queueitem.DefaultCreatedAt = queueitemDescCreatedAt.Default.(func() time.Time)
	// queueitemDescUpdatedAt is the schema descriptor for updated_at field.
	queueitemDescUpdatedAt := queueitemFields[17].Descriptor()
	// queueitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	queueitem.DefaultUpdatedAt = queueitemDescUpdatedAt.Default.(func() time.Time)
	// queueitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	queueitem.UpdateDefaultUpdatedAt = queueitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescEmailVerified is the schema descriptor for email_verified field.
	tenantDescEmailVerified := tenantFields[3].Descriptor()
	// tenant.DefaultEmailVerified holds the default value on creation for the email_verified field.
	tenant.DefaultEmailVerified = tenantDescEmailVerified.Default.(bool)
	// tenantDescCredits is the schema descriptor for credits field.
	tenantDescCredits := tenantFields[4].Descriptor()
	// tenant.DefaultCredits holds the default value on creation for the credits field.
	tenant.DefaultCredits = tenantDescCredits.Default.(int)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[8].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[9].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescCreatedAt is the schema descriptor for created_at field.
	transcriptDescCreatedAt := transcriptFields[5].Descriptor()
	// transcript.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcript.DefaultCreatedAt = transcriptDescCreatedAt.Default.(func() time.Time)
}
