// Package contacts manages the tenant contact book. Contacts are unique per
// (tenant, phone); creating one fires the tenant's auto-engagement flows.
package contacts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/pkg/services"
)

// Trigger runs when a contact is created. *flows.Evaluator satisfies it.
type Trigger interface {
	ContactCreated(ctx context.Context, c *ent.Contact) error
}

// Service creates contacts and fires their creation triggers.
type Service struct {
	client  *ent.Client
	trigger Trigger
	logger  *slog.Logger
}

// NewService creates a Service. trigger may be nil when no flow engine is
// wired (tests, tooling).
func NewService(client *ent.Client, trigger Trigger) *Service {
	if client == nil {
		panic("contacts.NewService: client is required")
	}
	return &Service{
		client:  client,
		trigger: trigger,
		logger:  slog.With("component", "contacts"),
	}
}

// CreateInput describes a manually-created contact.
type CreateInput struct {
	TenantID     string
	Phone        string
	Name         string
	Email        string
	Company      string
	LeadSource   string
	Tags         []string
	CustomFields map[string]interface{}
}

// Create inserts a contact and fires engagement flows. Trigger failures are
// logged, not returned: the contact exists either way.
func (s *Service) Create(ctx context.Context, in CreateInput) (*ent.Contact, error) {
	if in.TenantID == "" {
		return nil, services.NewValidationError("tenant_id", "required")
	}
	if in.Phone == "" {
		return nil, services.NewValidationError("phone", "required")
	}

	builder := s.client.Contact.Create().
		SetID(uuid.New().String()).
		SetTenantID(in.TenantID).
		SetPhone(in.Phone)
	if in.Name != "" {
		builder.SetName(in.Name)
	}
	if in.Email != "" {
		builder.SetEmail(in.Email)
	}
	if in.Company != "" {
		builder.SetCompany(in.Company)
	}
	if in.LeadSource != "" {
		builder.SetLeadSource(in.LeadSource)
	}
	if len(in.Tags) > 0 {
		builder.SetTags(in.Tags)
	}
	if len(in.CustomFields) > 0 {
		builder.SetCustomFields(in.CustomFields)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("contact with phone %s: %w", in.Phone, services.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	s.logger.Info("Contact created",
		"contact_id", c.ID,
		"tenant_id", c.TenantID)

	if s.trigger != nil {
		if err := s.trigger.ContactCreated(ctx, c); err != nil {
			s.logger.Error("Contact trigger failed",
				"contact_id", c.ID, "error", err)
		}
	}
	return c, nil
}

// Get loads a tenant's contact by id.
func (s *Service) Get(ctx context.Context, tenantID, contactID string) (*ent.Contact, error) {
	c, err := s.client.Contact.Get(ctx, contactID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	if c.TenantID != tenantID {
		return nil, services.ErrNotFound
	}
	return c, nil
}
