// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActiveSlot is the predicate function for activeslot builders.
type ActiveSlot func(*sql.Selector)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Call is the predicate function for call builders.
type Call func(*sql.Selector)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// CreditTransaction is the predicate function for credittransaction builders.
type CreditTransaction func(*sql.Selector)

// EngagementFlow is the predicate function for engagementflow builders.
type EngagementFlow func(*sql.Selector)

// LeadAnalytics is the predicate function for leadanalytics builders.
type LeadAnalytics func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// NotificationPreference is the predicate function for notificationpreference builders.
type NotificationPreference func(*sql.Selector)

// PhoneNumber is the predicate function for phonenumber builders.
type PhoneNumber func(*sql.Selector)

// QueueItem is the predicate function for queueitem builders.
type QueueItem func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// Transcript is the predicate function for transcript builders.
type Transcript func(*sql.Selector)
