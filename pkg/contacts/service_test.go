package contacts

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/pkg/services"
	testdb "github.com/ringstack/ringstack/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTrigger records the contacts it was fired for.
type fakeTrigger struct {
	mu    sync.Mutex
	fired []*ent.Contact
	err   error
}

func (f *fakeTrigger) ContactCreated(_ context.Context, c *ent.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fired = append(f.fired, c)
	return f.err
}

func (f *fakeTrigger) contacts() []*ent.Contact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ent.Contact(nil), f.fired...)
}

func setupContacts(t *testing.T) (*Service, *fakeTrigger, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	trigger := &fakeTrigger{}
	return NewService(client.Client, trigger), trigger, client.Client
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

func TestCreateContact(t *testing.T) {
	ctx := context.Background()
	svc, trigger, client := setupContacts(t)
	seedTenant(t, client, "tenant-1")

	c, err := svc.Create(ctx, CreateInput{
		TenantID:     "tenant-1",
		Phone:        "+15550101",
		Name:         "Jane Smith",
		Email:        "jane@acme.io",
		Company:      "Acme Corp",
		LeadSource:   "webform",
		Tags:         []string{"vip"},
		CustomFields: map[string]interface{}{"plan": "pro"},
	})
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", c.TenantID)
	assert.Equal(t, "+15550101", c.Phone)
	require.NotNil(t, c.Name)
	assert.Equal(t, "Jane Smith", *c.Name)
	require.NotNil(t, c.Email)
	assert.Equal(t, "jane@acme.io", *c.Email)
	require.NotNil(t, c.Company)
	assert.Equal(t, "Acme Corp", *c.Company)
	assert.Equal(t, "webform", c.LeadSource)
	assert.Equal(t, []string{"vip"}, c.Tags)
	assert.Equal(t, map[string]interface{}{"plan": "pro"}, c.CustomFields)

	fired := trigger.contacts()
	require.Len(t, fired, 1, "creation fires the engagement trigger")
	assert.Equal(t, c.ID, fired[0].ID)
}

func TestCreateContactBareMinimum(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupContacts(t)
	seedTenant(t, client, "tenant-1")

	c, err := svc.Create(ctx, CreateInput{TenantID: "tenant-1", Phone: "+15550101"})
	require.NoError(t, err)
	assert.Nil(t, c.Name)
	assert.Nil(t, c.Email)
	assert.Empty(t, c.LeadSource)
}

func TestCreateContactValidation(t *testing.T) {
	ctx := context.Background()
	svc, trigger, client := setupContacts(t)
	seedTenant(t, client, "tenant-1")

	tests := []struct {
		name   string
		in     CreateInput
		errMsg string
	}{
		{
			name:   "missing tenant",
			in:     CreateInput{Phone: "+15550101"},
			errMsg: "tenant_id",
		},
		{
			name:   "missing phone",
			in:     CreateInput{TenantID: "tenant-1"},
			errMsg: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, services.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
	assert.Empty(t, trigger.contacts())
}

func TestCreateContactDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	svc, trigger, client := setupContacts(t)
	seedTenant(t, client, "tenant-1")
	seedTenant(t, client, "tenant-2")

	_, err := svc.Create(ctx, CreateInput{TenantID: "tenant-1", Phone: "+15550101"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{TenantID: "tenant-1", Phone: "+15550101"})
	require.ErrorIs(t, err, services.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "+15550101")

	// Uniqueness is per tenant: another tenant may hold the same number.
	_, err = svc.Create(ctx, CreateInput{TenantID: "tenant-2", Phone: "+15550101"})
	require.NoError(t, err)

	assert.Len(t, trigger.contacts(), 2, "the duplicate fired no trigger")
}

func TestCreateContactTriggerFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	svc, trigger, client := setupContacts(t)
	seedTenant(t, client, "tenant-1")
	trigger.err = errors.New("flow engine down")

	c, err := svc.Create(ctx, CreateInput{TenantID: "tenant-1", Phone: "+15550101"})
	require.NoError(t, err, "the contact exists even when its trigger fails")

	stored, err := client.Contact.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "+15550101", stored.Phone)
}

func TestCreateContactWithoutTrigger(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	seedTenant(t, client.Client, "tenant-1")
	svc := NewService(client.Client, nil)

	_, err := svc.Create(ctx, CreateInput{TenantID: "tenant-1", Phone: "+15550101"})
	require.NoError(t, err)
}

func TestGetContact(t *testing.T) {
	ctx := context.Background()
	svc, _, client := setupContacts(t)
	seedTenant(t, client, "tenant-1")
	seedTenant(t, client, "tenant-2")

	created, err := svc.Create(ctx, CreateInput{TenantID: "tenant-1", Phone: "+15550101"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "tenant-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, "tenant-2", created.ID)
	require.ErrorIs(t, err, services.ErrNotFound, "contacts are invisible across tenants")

	_, err = svc.Get(ctx, "tenant-1", "missing")
	require.ErrorIs(t, err, services.ErrNotFound)
}
