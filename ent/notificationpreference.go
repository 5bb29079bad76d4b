// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ringstack/ringstack/ent/notificationpreference"
)

// NotificationPreference is the model entity for the NotificationPreference schema.
type NotificationPreference struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// LowCreditAlerts holds the value of the "low_credit_alerts" field.
	LowCreditAlerts bool `json:"low_credit_alerts,omitempty"`
	// CreditsAddedEmails holds the value of the "credits_added_emails" field.
	CreditsAddedEmails bool `json:"credits_added_emails,omitempty"`
	// CampaignSummaryEmails holds the value of the "campaign_summary_emails" field.
	CampaignSummaryEmails bool `json:"campaign_summary_emails,omitempty"`
	// EmailVerificationReminders holds the value of the "email_verification_reminders" field.
	EmailVerificationReminders bool `json:"email_verification_reminders,omitempty"`
	// MarketingEmails holds the value of the "marketing_emails" field.
	MarketingEmails bool `json:"marketing_emails,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationPreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationpreference.FieldLowCreditAlerts, notificationpreference.FieldCreditsAddedEmails, notificationpreference.FieldCampaignSummaryEmails, notificationpreference.FieldEmailVerificationReminders, notificationpreference.FieldMarketingEmails:
			values[i] = new(sql.NullBool)
		case notificationpreference.FieldID, notificationpreference.FieldTenantID:
			values[i] = new(sql.NullString)
		case notificationpreference.FieldCreatedAt, notificationpreference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationPreference fields.
func (_m *NotificationPreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationpreference.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case notificationpreference.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case notificationpreference.FieldLowCreditAlerts:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field low_credit_alerts", values[i])
			} else if value.Valid {
				_m.LowCreditAlerts = value.Bool
			}
		case notificationpreference.FieldCreditsAddedEmails:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field credits_added_emails", values[i])
			} else if value.Valid {
				_m.CreditsAddedEmails = value.Bool
			}
		case notificationpreference.FieldCampaignSummaryEmails:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_summary_emails", values[i])
			} else if value.Valid {
				_m.CampaignSummaryEmails = value.Bool
			}
		case notificationpreference.FieldEmailVerificationReminders:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_verification_reminders", values[i])
			} else if value.Valid {
				_m.EmailVerificationReminders = value.Bool
			}
		case notificationpreference.FieldMarketingEmails:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field marketing_emails", values[i])
			} else if value.Valid {
				_m.MarketingEmails = value.Bool
			}
		case notificationpreference.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationpreference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationPreference.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationPreference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationPreference.
// Note that you need to call NotificationPreference.Unwrap() before calling this method if this NotificationPreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationPreference) Update() *NotificationPreferenceUpdateOne {
	return NewNotificationPreferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationPreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationPreference) Unwrap() *NotificationPreference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationPreference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationPreference) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationPreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("low_credit_alerts=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowCreditAlerts))
	builder.WriteString(", ")
	builder.WriteString("credits_added_emails=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditsAddedEmails))
	builder.WriteString(", ")
	builder.WriteString("campaign_summary_emails=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignSummaryEmails))
	builder.WriteString(", ")
	builder.WriteString("email_verification_reminders=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailVerificationReminders))
	builder.WriteString(", ")
	builder.WriteString("marketing_emails=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarketingEmails))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationPreferences is a parsable slice of NotificationPreference.
type NotificationPreferences []*NotificationPreference
