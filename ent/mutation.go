// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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
	"github.com/ringstack/ringstack/ent/predicate"
	"github.com/ringstack/ringstack/ent/queueitem"
	"github.com/ringstack/ringstack/ent/tenant"
	"github.com/ringstack/ringstack/ent/transcript"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActiveSlot             = "ActiveSlot"
	TypeAgent                  = "Agent"
	TypeCall                   = "Call"
	TypeCampaign               = "Campaign"
	TypeContact                = "Contact"
	TypeCreditTransaction      = "CreditTransaction"
	TypeEngagementFlow         = "EngagementFlow"
	TypeLeadAnalytics          = "LeadAnalytics"
	TypeNotification           = "Notification"
	TypeNotificationPreference = "NotificationPreference"
	TypePhoneNumber            = "PhoneNumber"
	TypeQueueItem              = "QueueItem"
	TypeTenant                 = "Tenant"
	TypeTranscript             = "Transcript"
)

// ActiveSlotMutation represents an operation that mutates the ActiveSlot nodes in the graph.
type ActiveSlotMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	call_id       *string
	kind          *activeslot.Kind
	acquired_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActiveSlot, error)
	predicates    []predicate.ActiveSlot
}

var _ ent.Mutation = (*ActiveSlotMutation)(nil)

// activeslotOption allows management of the mutation configuration using functional options.
type activeslotOption func(*ActiveSlotMutation)

// newActiveSlotMutation creates new mutation for the ActiveSlot entity.
func newActiveSlotMutation(c config, op Op, opts ...activeslotOption) *ActiveSlotMutation {
	m := &ActiveSlotMutation{
		config:        c,
		op:            op,
		typ:           TypeActiveSlot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActiveSlotID sets the ID field of the mutation.
func withActiveSlotID(id string) activeslotOption {
	return func(m *ActiveSlotMutation) {
		var (
			err   error
			once  sync.Once
			value *ActiveSlot
		)
		m.oldValue = func(ctx context.Context) (*ActiveSlot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActiveSlot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActiveSlot sets the old ActiveSlot of the mutation.
func withActiveSlot(node *ActiveSlot) activeslotOption {
	return func(m *ActiveSlotMutation) {
		m.oldValue = func(context.Context) (*ActiveSlot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActiveSlotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActiveSlotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActiveSlot entities.
func (m *ActiveSlotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActiveSlotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActiveSlotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActiveSlot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ActiveSlotMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ActiveSlotMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ActiveSlot entity.
// If the ActiveSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSlotMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ActiveSlotMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCallID sets the "call_id" field.
func (m *ActiveSlotMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *ActiveSlotMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the ActiveSlot entity.
// If the ActiveSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSlotMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *ActiveSlotMutation) ResetCallID() {
	m.call_id = nil
}

// SetKind sets the "kind" field.
func (m *ActiveSlotMutation) SetKind(a activeslot.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ActiveSlotMutation) Kind() (r activeslot.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ActiveSlot entity.
// If the ActiveSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSlotMutation) OldKind(ctx context.Context) (v activeslot.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ActiveSlotMutation) ResetKind() {
	m.kind = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *ActiveSlotMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *ActiveSlotMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the ActiveSlot entity.
// If the ActiveSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSlotMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *ActiveSlotMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// Where appends a list predicates to the ActiveSlotMutation builder.
func (m *ActiveSlotMutation) Where(ps ...predicate.ActiveSlot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActiveSlotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActiveSlotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActiveSlot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActiveSlotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActiveSlotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActiveSlot).
func (m *ActiveSlotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActiveSlotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tenant_id != nil {
		fields = append(fields, activeslot.FieldTenantID)
	}
	if m.call_id != nil {
		fields = append(fields, activeslot.FieldCallID)
	}
	if m.kind != nil {
		fields = append(fields, activeslot.FieldKind)
	}
	if m.acquired_at != nil {
		fields = append(fields, activeslot.FieldAcquiredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActiveSlotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activeslot.FieldTenantID:
		return m.TenantID()
	case activeslot.FieldCallID:
		return m.CallID()
	case activeslot.FieldKind:
		return m.Kind()
	case activeslot.FieldAcquiredAt:
		return m.AcquiredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActiveSlotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activeslot.FieldTenantID:
		return m.OldTenantID(ctx)
	case activeslot.FieldCallID:
		return m.OldCallID(ctx)
	case activeslot.FieldKind:
		return m.OldKind(ctx)
	case activeslot.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActiveSlot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSlotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activeslot.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case activeslot.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case activeslot.FieldKind:
		v, ok := value.(activeslot.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case activeslot.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActiveSlot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActiveSlotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActiveSlotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSlotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActiveSlot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActiveSlotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActiveSlotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActiveSlotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ActiveSlot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActiveSlotMutation) ResetField(name string) error {
	switch name {
	case activeslot.FieldTenantID:
		m.ResetTenantID()
		return nil
	case activeslot.FieldCallID:
		m.ResetCallID()
		return nil
	case activeslot.FieldKind:
		m.ResetKind()
		return nil
	case activeslot.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	}
	return fmt.Errorf("unknown ActiveSlot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActiveSlotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActiveSlotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActiveSlotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActiveSlotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActiveSlotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActiveSlotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActiveSlotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActiveSlot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActiveSlotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActiveSlot edge %s", name)
}

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	name              *string
	provider_agent_id *string
	is_active         *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Agent, error)
	predicates        []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AgentMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AgentMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AgentMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetProviderAgentID sets the "provider_agent_id" field.
func (m *AgentMutation) SetProviderAgentID(s string) {
	m.provider_agent_id = &s
}

// ProviderAgentID returns the value of the "provider_agent_id" field in the mutation.
func (m *AgentMutation) ProviderAgentID() (r string, exists bool) {
	v := m.provider_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderAgentID returns the old "provider_agent_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProviderAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderAgentID: %w", err)
	}
	return oldValue.ProviderAgentID, nil
}

// ResetProviderAgentID resets all changes to the "provider_agent_id" field.
func (m *AgentMutation) ResetProviderAgentID() {
	m.provider_agent_id = nil
}

// SetIsActive sets the "is_active" field.
func (m *AgentMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AgentMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AgentMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, agent.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.provider_agent_id != nil {
		fields = append(fields, agent.FieldProviderAgentID)
	}
	if m.is_active != nil {
		fields = append(fields, agent.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTenantID:
		return m.TenantID()
	case agent.FieldName:
		return m.Name()
	case agent.FieldProviderAgentID:
		return m.ProviderAgentID()
	case agent.FieldIsActive:
		return m.IsActive()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldTenantID:
		return m.OldTenantID(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldProviderAgentID:
		return m.OldProviderAgentID(ctx)
	case agent.FieldIsActive:
		return m.OldIsActive(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldProviderAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderAgentID(v)
		return nil
	case agent.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldProviderAgentID:
		m.ResetProviderAgentID()
		return nil
	case agent.FieldIsActive:
		m.ResetIsActive()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// CallMutation represents an operation that mutates the Call nodes in the graph.
type CallMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tenant_id            *string
	agent_id             *string
	campaign_id          *string
	contact_id           *string
	queue_item_id        *string
	execution_id         *string
	from_phone           *string
	to_phone             *string
	direction            *call.Direction
	status               *call.Status
	lifecycle_status     *call.LifecycleStatus
	duration_seconds     *int
	addduration_seconds  *int
	billed_minutes       *int
	addbilled_minutes    *int
	credits_used         *int
	addcredits_used      *int
	hangup_by            *string
	hangup_reason        *string
	hangup_provider_code *string
	recording_url        *string
	summary              *string
	failure_reason       *string
	placeholder          *bool
	provider_payload     *map[string]interface{}
	ringing_started_at   *time.Time
	answered_at          *time.Time
	disconnected_at      *time.Time
	started_at           *time.Time
	ended_at             *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Call, error)
	predicates           []predicate.Call
}

var _ ent.Mutation = (*CallMutation)(nil)

// callOption allows management of the mutation configuration using functional options.
type callOption func(*CallMutation)

// newCallMutation creates new mutation for the Call entity.
func newCallMutation(c config, op Op, opts ...callOption) *CallMutation {
	m := &CallMutation{
		config:        c,
		op:            op,
		typ:           TypeCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCallID sets the ID field of the mutation.
func withCallID(id string) callOption {
	return func(m *CallMutation) {
		var (
			err   error
			once  sync.Once
			value *Call
		)
		m.oldValue = func(ctx context.Context) (*Call, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Call.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCall sets the old Call of the mutation.
func withCall(node *Call) callOption {
	return func(m *CallMutation) {
		m.oldValue = func(context.Context) (*Call, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Call entities.
func (m *CallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Call.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CallMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CallMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CallMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *CallMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CallMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *CallMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[call.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *CallMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[call.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CallMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, call.FieldAgentID)
}

// SetCampaignID sets the "campaign_id" field.
func (m *CallMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *CallMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldCampaignID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (m *CallMutation) ClearCampaignID() {
	m.campaign_id = nil
	m.clearedFields[call.FieldCampaignID] = struct{}{}
}

// CampaignIDCleared returns if the "campaign_id" field was cleared in this mutation.
func (m *CallMutation) CampaignIDCleared() bool {
	_, ok := m.clearedFields[call.FieldCampaignID]
	return ok
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *CallMutation) ResetCampaignID() {
	m.campaign_id = nil
	delete(m.clearedFields, call.FieldCampaignID)
}

// SetContactID sets the "contact_id" field.
func (m *CallMutation) SetContactID(s string) {
	m.contact_id = &s
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *CallMutation) ContactID() (r string, exists bool) {
	v := m.contact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldContactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ClearContactID clears the value of the "contact_id" field.
func (m *CallMutation) ClearContactID() {
	m.contact_id = nil
	m.clearedFields[call.FieldContactID] = struct{}{}
}

// ContactIDCleared returns if the "contact_id" field was cleared in this mutation.
func (m *CallMutation) ContactIDCleared() bool {
	_, ok := m.clearedFields[call.FieldContactID]
	return ok
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *CallMutation) ResetContactID() {
	m.contact_id = nil
	delete(m.clearedFields, call.FieldContactID)
}

// SetQueueItemID sets the "queue_item_id" field.
func (m *CallMutation) SetQueueItemID(s string) {
	m.queue_item_id = &s
}

// QueueItemID returns the value of the "queue_item_id" field in the mutation.
func (m *CallMutation) QueueItemID() (r string, exists bool) {
	v := m.queue_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueItemID returns the old "queue_item_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldQueueItemID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueItemID: %w", err)
	}
	return oldValue.QueueItemID, nil
}

// ClearQueueItemID clears the value of the "queue_item_id" field.
func (m *CallMutation) ClearQueueItemID() {
	m.queue_item_id = nil
	m.clearedFields[call.FieldQueueItemID] = struct{}{}
}

// QueueItemIDCleared returns if the "queue_item_id" field was cleared in this mutation.
func (m *CallMutation) QueueItemIDCleared() bool {
	_, ok := m.clearedFields[call.FieldQueueItemID]
	return ok
}

// ResetQueueItemID resets all changes to the "queue_item_id" field.
func (m *CallMutation) ResetQueueItemID() {
	m.queue_item_id = nil
	delete(m.clearedFields, call.FieldQueueItemID)
}

// SetExecutionID sets the "execution_id" field.
func (m *CallMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *CallMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *CallMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[call.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *CallMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[call.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *CallMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, call.FieldExecutionID)
}

// SetFromPhone sets the "from_phone" field.
func (m *CallMutation) SetFromPhone(s string) {
	m.from_phone = &s
}

// FromPhone returns the value of the "from_phone" field in the mutation.
func (m *CallMutation) FromPhone() (r string, exists bool) {
	v := m.from_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldFromPhone returns the old "from_phone" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldFromPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromPhone: %w", err)
	}
	return oldValue.FromPhone, nil
}

// ClearFromPhone clears the value of the "from_phone" field.
func (m *CallMutation) ClearFromPhone() {
	m.from_phone = nil
	m.clearedFields[call.FieldFromPhone] = struct{}{}
}

// FromPhoneCleared returns if the "from_phone" field was cleared in this mutation.
func (m *CallMutation) FromPhoneCleared() bool {
	_, ok := m.clearedFields[call.FieldFromPhone]
	return ok
}

// ResetFromPhone resets all changes to the "from_phone" field.
func (m *CallMutation) ResetFromPhone() {
	m.from_phone = nil
	delete(m.clearedFields, call.FieldFromPhone)
}

// SetToPhone sets the "to_phone" field.
func (m *CallMutation) SetToPhone(s string) {
	m.to_phone = &s
}

// ToPhone returns the value of the "to_phone" field in the mutation.
func (m *CallMutation) ToPhone() (r string, exists bool) {
	v := m.to_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldToPhone returns the old "to_phone" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldToPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToPhone: %w", err)
	}
	return oldValue.ToPhone, nil
}

// ResetToPhone resets all changes to the "to_phone" field.
func (m *CallMutation) ResetToPhone() {
	m.to_phone = nil
}

// SetDirection sets the "direction" field.
func (m *CallMutation) SetDirection(c call.Direction) {
	m.direction = &c
}

// Direction returns the value of the "direction" field in the mutation.
func (m *CallMutation) Direction() (r call.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldDirection(ctx context.Context) (v call.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *CallMutation) ResetDirection() {
	m.direction = nil
}

// SetStatus sets the "status" field.
func (m *CallMutation) SetStatus(c call.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CallMutation) Status() (r call.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldStatus(ctx context.Context) (v call.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CallMutation) ResetStatus() {
	m.status = nil
}

// SetLifecycleStatus sets the "lifecycle_status" field.
func (m *CallMutation) SetLifecycleStatus(cs call.LifecycleStatus) {
	m.lifecycle_status = &cs
}

// LifecycleStatus returns the value of the "lifecycle_status" field in the mutation.
func (m *CallMutation) LifecycleStatus() (r call.LifecycleStatus, exists bool) {
	v := m.lifecycle_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLifecycleStatus returns the old "lifecycle_status" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldLifecycleStatus(ctx context.Context) (v call.LifecycleStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLifecycleStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLifecycleStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLifecycleStatus: %w", err)
	}
	return oldValue.LifecycleStatus, nil
}

// ResetLifecycleStatus resets all changes to the "lifecycle_status" field.
func (m *CallMutation) ResetLifecycleStatus() {
	m.lifecycle_status = nil
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *CallMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *CallMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldDurationSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *CallMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *CallMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *CallMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetBilledMinutes sets the "billed_minutes" field.
func (m *CallMutation) SetBilledMinutes(i int) {
	m.billed_minutes = &i
	m.addbilled_minutes = nil
}

// BilledMinutes returns the value of the "billed_minutes" field in the mutation.
func (m *CallMutation) BilledMinutes() (r int, exists bool) {
	v := m.billed_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldBilledMinutes returns the old "billed_minutes" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldBilledMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBilledMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBilledMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBilledMinutes: %w", err)
	}
	return oldValue.BilledMinutes, nil
}

// AddBilledMinutes adds i to the "billed_minutes" field.
func (m *CallMutation) AddBilledMinutes(i int) {
	if m.addbilled_minutes != nil {
		*m.addbilled_minutes += i
	} else {
		m.addbilled_minutes = &i
	}
}

// AddedBilledMinutes returns the value that was added to the "billed_minutes" field in this mutation.
func (m *CallMutation) AddedBilledMinutes() (r int, exists bool) {
	v := m.addbilled_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBilledMinutes resets all changes to the "billed_minutes" field.
func (m *CallMutation) ResetBilledMinutes() {
	m.billed_minutes = nil
	m.addbilled_minutes = nil
}

// SetCreditsUsed sets the "credits_used" field.
func (m *CallMutation) SetCreditsUsed(i int) {
	m.credits_used = &i
	m.addcredits_used = nil
}

// CreditsUsed returns the value of the "credits_used" field in the mutation.
func (m *CallMutation) CreditsUsed() (r int, exists bool) {
	v := m.credits_used
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsUsed returns the old "credits_used" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldCreditsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsUsed: %w", err)
	}
	return oldValue.CreditsUsed, nil
}

// AddCreditsUsed adds i to the "credits_used" field.
func (m *CallMutation) AddCreditsUsed(i int) {
	if m.addcredits_used != nil {
		*m.addcredits_used += i
	} else {
		m.addcredits_used = &i
	}
}

// AddedCreditsUsed returns the value that was added to the "credits_used" field in this mutation.
func (m *CallMutation) AddedCreditsUsed() (r int, exists bool) {
	v := m.addcredits_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditsUsed resets all changes to the "credits_used" field.
func (m *CallMutation) ResetCreditsUsed() {
	m.credits_used = nil
	m.addcredits_used = nil
}

// SetHangupBy sets the "hangup_by" field.
func (m *CallMutation) SetHangupBy(s string) {
	m.hangup_by = &s
}

// HangupBy returns the value of the "hangup_by" field in the mutation.
func (m *CallMutation) HangupBy() (r string, exists bool) {
	v := m.hangup_by
	if v == nil {
		return
	}
	return *v, true
}

// OldHangupBy returns the old "hangup_by" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldHangupBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHangupBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHangupBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHangupBy: %w", err)
	}
	return oldValue.HangupBy, nil
}

// ClearHangupBy clears the value of the "hangup_by" field.
func (m *CallMutation) ClearHangupBy() {
	m.hangup_by = nil
	m.clearedFields[call.FieldHangupBy] = struct{}{}
}

// HangupByCleared returns if the "hangup_by" field was cleared in this mutation.
func (m *CallMutation) HangupByCleared() bool {
	_, ok := m.clearedFields[call.FieldHangupBy]
	return ok
}

// ResetHangupBy resets all changes to the "hangup_by" field.
func (m *CallMutation) ResetHangupBy() {
	m.hangup_by = nil
	delete(m.clearedFields, call.FieldHangupBy)
}

// SetHangupReason sets the "hangup_reason" field.
func (m *CallMutation) SetHangupReason(s string) {
	m.hangup_reason = &s
}

// HangupReason returns the value of the "hangup_reason" field in the mutation.
func (m *CallMutation) HangupReason() (r string, exists bool) {
	v := m.hangup_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldHangupReason returns the old "hangup_reason" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldHangupReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHangupReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHangupReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHangupReason: %w", err)
	}
	return oldValue.HangupReason, nil
}

// ClearHangupReason clears the value of the "hangup_reason" field.
func (m *CallMutation) ClearHangupReason() {
	m.hangup_reason = nil
	m.clearedFields[call.FieldHangupReason] = struct{}{}
}

// HangupReasonCleared returns if the "hangup_reason" field was cleared in this mutation.
func (m *CallMutation) HangupReasonCleared() bool {
	_, ok := m.clearedFields[call.FieldHangupReason]
	return ok
}

// ResetHangupReason resets all changes to the "hangup_reason" field.
func (m *CallMutation) ResetHangupReason() {
	m.hangup_reason = nil
	delete(m.clearedFields, call.FieldHangupReason)
}

// SetHangupProviderCode sets the "hangup_provider_code" field.
func (m *CallMutation) SetHangupProviderCode(s string) {
	m.hangup_provider_code = &s
}

// HangupProviderCode returns the value of the "hangup_provider_code" field in the mutation.
func (m *CallMutation) HangupProviderCode() (r string, exists bool) {
	v := m.hangup_provider_code
	if v == nil {
		return
	}
	return *v, true
}

// OldHangupProviderCode returns the old "hangup_provider_code" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldHangupProviderCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHangupProviderCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHangupProviderCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHangupProviderCode: %w", err)
	}
	return oldValue.HangupProviderCode, nil
}

// ClearHangupProviderCode clears the value of the "hangup_provider_code" field.
func (m *CallMutation) ClearHangupProviderCode() {
	m.hangup_provider_code = nil
	m.clearedFields[call.FieldHangupProviderCode] = struct{}{}
}

// HangupProviderCodeCleared returns if the "hangup_provider_code" field was cleared in this mutation.
func (m *CallMutation) HangupProviderCodeCleared() bool {
	_, ok := m.clearedFields[call.FieldHangupProviderCode]
	return ok
}

// ResetHangupProviderCode resets all changes to the "hangup_provider_code" field.
func (m *CallMutation) ResetHangupProviderCode() {
	m.hangup_provider_code = nil
	delete(m.clearedFields, call.FieldHangupProviderCode)
}

// SetRecordingURL sets the "recording_url" field.
func (m *CallMutation) SetRecordingURL(s string) {
	m.recording_url = &s
}

// RecordingURL returns the value of the "recording_url" field in the mutation.
func (m *CallMutation) RecordingURL() (r string, exists bool) {
	v := m.recording_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingURL returns the old "recording_url" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldRecordingURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingURL: %w", err)
	}
	return oldValue.RecordingURL, nil
}

// ClearRecordingURL clears the value of the "recording_url" field.
func (m *CallMutation) ClearRecordingURL() {
	m.recording_url = nil
	m.clearedFields[call.FieldRecordingURL] = struct{}{}
}

// RecordingURLCleared returns if the "recording_url" field was cleared in this mutation.
func (m *CallMutation) RecordingURLCleared() bool {
	_, ok := m.clearedFields[call.FieldRecordingURL]
	return ok
}

// ResetRecordingURL resets all changes to the "recording_url" field.
func (m *CallMutation) ResetRecordingURL() {
	m.recording_url = nil
	delete(m.clearedFields, call.FieldRecordingURL)
}

// SetSummary sets the "summary" field.
func (m *CallMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CallMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *CallMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[call.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *CallMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[call.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *CallMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, call.FieldSummary)
}

// SetFailureReason sets the "failure_reason" field.
func (m *CallMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *CallMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *CallMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[call.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *CallMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[call.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *CallMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, call.FieldFailureReason)
}

// SetPlaceholder sets the "placeholder" field.
func (m *CallMutation) SetPlaceholder(b bool) {
	m.placeholder = &b
}

// Placeholder returns the value of the "placeholder" field in the mutation.
func (m *CallMutation) Placeholder() (r bool, exists bool) {
	v := m.placeholder
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaceholder returns the old "placeholder" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldPlaceholder(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaceholder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaceholder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaceholder: %w", err)
	}
	return oldValue.Placeholder, nil
}

// ResetPlaceholder resets all changes to the "placeholder" field.
func (m *CallMutation) ResetPlaceholder() {
	m.placeholder = nil
}

// SetProviderPayload sets the "provider_payload" field.
func (m *CallMutation) SetProviderPayload(value map[string]interface{}) {
	m.provider_payload = &value
}

// ProviderPayload returns the value of the "provider_payload" field in the mutation.
func (m *CallMutation) ProviderPayload() (r map[string]interface{}, exists bool) {
	v := m.provider_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderPayload returns the old "provider_payload" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldProviderPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderPayload: %w", err)
	}
	return oldValue.ProviderPayload, nil
}

// ClearProviderPayload clears the value of the "provider_payload" field.
func (m *CallMutation) ClearProviderPayload() {
	m.provider_payload = nil
	m.clearedFields[call.FieldProviderPayload] = struct{}{}
}

// ProviderPayloadCleared returns if the "provider_payload" field was cleared in this mutation.
func (m *CallMutation) ProviderPayloadCleared() bool {
	_, ok := m.clearedFields[call.FieldProviderPayload]
	return ok
}

// ResetProviderPayload resets all changes to the "provider_payload" field.
func (m *CallMutation) ResetProviderPayload() {
	m.provider_payload = nil
	delete(m.clearedFields, call.FieldProviderPayload)
}

// SetRingingStartedAt sets the "ringing_started_at" field.
func (m *CallMutation) SetRingingStartedAt(t time.Time) {
	m.ringing_started_at = &t
}

// RingingStartedAt returns the value of the "ringing_started_at" field in the mutation.
func (m *CallMutation) RingingStartedAt() (r time.Time, exists bool) {
	v := m.ringing_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRingingStartedAt returns the old "ringing_started_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldRingingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRingingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRingingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRingingStartedAt: %w", err)
	}
	return oldValue.RingingStartedAt, nil
}

// ClearRingingStartedAt clears the value of the "ringing_started_at" field.
func (m *CallMutation) ClearRingingStartedAt() {
	m.ringing_started_at = nil
	m.clearedFields[call.FieldRingingStartedAt] = struct{}{}
}

// RingingStartedAtCleared returns if the "ringing_started_at" field was cleared in this mutation.
func (m *CallMutation) RingingStartedAtCleared() bool {
	_, ok := m.clearedFields[call.FieldRingingStartedAt]
	return ok
}

// ResetRingingStartedAt resets all changes to the "ringing_started_at" field.
func (m *CallMutation) ResetRingingStartedAt() {
	m.ringing_started_at = nil
	delete(m.clearedFields, call.FieldRingingStartedAt)
}

// SetAnsweredAt sets the "answered_at" field.
func (m *CallMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *CallMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldAnsweredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (m *CallMutation) ClearAnsweredAt() {
	m.answered_at = nil
	m.clearedFields[call.FieldAnsweredAt] = struct{}{}
}

// AnsweredAtCleared returns if the "answered_at" field was cleared in this mutation.
func (m *CallMutation) AnsweredAtCleared() bool {
	_, ok := m.clearedFields[call.FieldAnsweredAt]
	return ok
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *CallMutation) ResetAnsweredAt() {
	m.answered_at = nil
	delete(m.clearedFields, call.FieldAnsweredAt)
}

// SetDisconnectedAt sets the "disconnected_at" field.
func (m *CallMutation) SetDisconnectedAt(t time.Time) {
	m.disconnected_at = &t
}

// DisconnectedAt returns the value of the "disconnected_at" field in the mutation.
func (m *CallMutation) DisconnectedAt() (r time.Time, exists bool) {
	v := m.disconnected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDisconnectedAt returns the old "disconnected_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldDisconnectedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisconnectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisconnectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisconnectedAt: %w", err)
	}
	return oldValue.DisconnectedAt, nil
}

// ClearDisconnectedAt clears the value of the "disconnected_at" field.
func (m *CallMutation) ClearDisconnectedAt() {
	m.disconnected_at = nil
	m.clearedFields[call.FieldDisconnectedAt] = struct{}{}
}

// DisconnectedAtCleared returns if the "disconnected_at" field was cleared in this mutation.
func (m *CallMutation) DisconnectedAtCleared() bool {
	_, ok := m.clearedFields[call.FieldDisconnectedAt]
	return ok
}

// ResetDisconnectedAt resets all changes to the "disconnected_at" field.
func (m *CallMutation) ResetDisconnectedAt() {
	m.disconnected_at = nil
	delete(m.clearedFields, call.FieldDisconnectedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *CallMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CallMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CallMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[call.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CallMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[call.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CallMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, call.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *CallMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *CallMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *CallMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[call.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *CallMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[call.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *CallMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, call.FieldEndedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CallMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CallMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Call entity.
// If the Call object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CallMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CallMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CallMutation builder.
func (m *CallMutation) Where(ps ...predicate.Call) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Call, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Call).
func (m *CallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CallMutation) Fields() []string {
	fields := make([]string, 0, 29)
	if m.tenant_id != nil {
		fields = append(fields, call.FieldTenantID)
	}
	if m.agent_id != nil {
		fields = append(fields, call.FieldAgentID)
	}
	if m.campaign_id != nil {
		fields = append(fields, call.FieldCampaignID)
	}
	if m.contact_id != nil {
		fields = append(fields, call.FieldContactID)
	}
	if m.queue_item_id != nil {
		fields = append(fields, call.FieldQueueItemID)
	}
	if m.execution_id != nil {
		fields = append(fields, call.FieldExecutionID)
	}
	if m.from_phone != nil {
		fields = append(fields, call.FieldFromPhone)
	}
	if m.to_phone != nil {
		fields = append(fields, call.FieldToPhone)
	}
	if m.direction != nil {
		fields = append(fields, call.FieldDirection)
	}
	if m.status != nil {
		fields = append(fields, call.FieldStatus)
	}
	if m.lifecycle_status != nil {
		fields = append(fields, call.FieldLifecycleStatus)
	}
	if m.duration_seconds != nil {
		fields = append(fields, call.FieldDurationSeconds)
	}
	if m.billed_minutes != nil {
		fields = append(fields, call.FieldBilledMinutes)
	}
	if m.credits_used != nil {
		fields = append(fields, call.FieldCreditsUsed)
	}
	if m.hangup_by != nil {
		fields = append(fields, call.FieldHangupBy)
	}
	if m.hangup_reason != nil {
		fields = append(fields, call.FieldHangupReason)
	}
	if m.hangup_provider_code != nil {
		fields = append(fields, call.FieldHangupProviderCode)
	}
	if m.recording_url != nil {
		fields = append(fields, call.FieldRecordingURL)
	}
	if m.summary != nil {
		fields = append(fields, call.FieldSummary)
	}
	if m.failure_reason != nil {
		fields = append(fields, call.FieldFailureReason)
	}
	if m.placeholder != nil {
		fields = append(fields, call.FieldPlaceholder)
	}
	if m.provider_payload != nil {
		fields = append(fields, call.FieldProviderPayload)
	}
	if m.ringing_started_at != nil {
		fields = append(fields, call.FieldRingingStartedAt)
	}
	if m.answered_at != nil {
		fields = append(fields, call.FieldAnsweredAt)
	}
	if m.disconnected_at != nil {
		fields = append(fields, call.FieldDisconnectedAt)
	}
	if m.started_at != nil {
		fields = append(fields, call.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, call.FieldEndedAt)
	}
	if m.created_at != nil {
		fields = append(fields, call.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, call.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case call.FieldTenantID:
		return m.TenantID()
	case call.FieldAgentID:
		return m.AgentID()
	case call.FieldCampaignID:
		return m.CampaignID()
	case call.FieldContactID:
		return m.ContactID()
	case call.FieldQueueItemID:
		return m.QueueItemID()
	case call.FieldExecutionID:
		return m.ExecutionID()
	case call.FieldFromPhone:
		return m.FromPhone()
	case call.FieldToPhone:
		return m.ToPhone()
	case call.FieldDirection:
		return m.Direction()
	case call.FieldStatus:
		return m.Status()
	case call.FieldLifecycleStatus:
		return m.LifecycleStatus()
	case call.FieldDurationSeconds:
		return m.DurationSeconds()
	case call.FieldBilledMinutes:
		return m.BilledMinutes()
	case call.FieldCreditsUsed:
		return m.CreditsUsed()
	case call.FieldHangupBy:
		return m.HangupBy()
	case call.FieldHangupReason:
		return m.HangupReason()
	case call.FieldHangupProviderCode:
		return m.HangupProviderCode()
	case call.FieldRecordingURL:
		return m.RecordingURL()
	case call.FieldSummary:
		return m.Summary()
	case call.FieldFailureReason:
		return m.FailureReason()
	case call.FieldPlaceholder:
		return m.Placeholder()
	case call.FieldProviderPayload:
		return m.ProviderPayload()
	case call.FieldRingingStartedAt:
		return m.RingingStartedAt()
	case call.FieldAnsweredAt:
		return m.AnsweredAt()
	case call.FieldDisconnectedAt:
		return m.DisconnectedAt()
	case call.FieldStartedAt:
		return m.StartedAt()
	case call.FieldEndedAt:
		return m.EndedAt()
	case call.FieldCreatedAt:
		return m.CreatedAt()
	case call.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case call.FieldTenantID:
		return m.OldTenantID(ctx)
	case call.FieldAgentID:
		return m.OldAgentID(ctx)
	case call.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case call.FieldContactID:
		return m.OldContactID(ctx)
	case call.FieldQueueItemID:
		return m.OldQueueItemID(ctx)
	case call.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case call.FieldFromPhone:
		return m.OldFromPhone(ctx)
	case call.FieldToPhone:
		return m.OldToPhone(ctx)
	case call.FieldDirection:
		return m.OldDirection(ctx)
	case call.FieldStatus:
		return m.OldStatus(ctx)
	case call.FieldLifecycleStatus:
		return m.OldLifecycleStatus(ctx)
	case call.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case call.FieldBilledMinutes:
		return m.OldBilledMinutes(ctx)
	case call.FieldCreditsUsed:
		return m.OldCreditsUsed(ctx)
	case call.FieldHangupBy:
		return m.OldHangupBy(ctx)
	case call.FieldHangupReason:
		return m.OldHangupReason(ctx)
	case call.FieldHangupProviderCode:
		return m.OldHangupProviderCode(ctx)
	case call.FieldRecordingURL:
		return m.OldRecordingURL(ctx)
	case call.FieldSummary:
		return m.OldSummary(ctx)
	case call.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case call.FieldPlaceholder:
		return m.OldPlaceholder(ctx)
	case call.FieldProviderPayload:
		return m.OldProviderPayload(ctx)
	case call.FieldRingingStartedAt:
		return m.OldRingingStartedAt(ctx)
	case call.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	case call.FieldDisconnectedAt:
		return m.OldDisconnectedAt(ctx)
	case call.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case call.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case call.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case call.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Call field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case call.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case call.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case call.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case call.FieldContactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case call.FieldQueueItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueItemID(v)
		return nil
	case call.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case call.FieldFromPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromPhone(v)
		return nil
	case call.FieldToPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToPhone(v)
		return nil
	case call.FieldDirection:
		v, ok := value.(call.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case call.FieldStatus:
		v, ok := value.(call.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case call.FieldLifecycleStatus:
		v, ok := value.(call.LifecycleStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLifecycleStatus(v)
		return nil
	case call.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case call.FieldBilledMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBilledMinutes(v)
		return nil
	case call.FieldCreditsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsUsed(v)
		return nil
	case call.FieldHangupBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHangupBy(v)
		return nil
	case call.FieldHangupReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHangupReason(v)
		return nil
	case call.FieldHangupProviderCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHangupProviderCode(v)
		return nil
	case call.FieldRecordingURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingURL(v)
		return nil
	case call.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case call.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case call.FieldPlaceholder:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaceholder(v)
		return nil
	case call.FieldProviderPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderPayload(v)
		return nil
	case call.FieldRingingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRingingStartedAt(v)
		return nil
	case call.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	case call.FieldDisconnectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisconnectedAt(v)
		return nil
	case call.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case call.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case call.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case call.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Call field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CallMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, call.FieldDurationSeconds)
	}
	if m.addbilled_minutes != nil {
		fields = append(fields, call.FieldBilledMinutes)
	}
	if m.addcredits_used != nil {
		fields = append(fields, call.FieldCreditsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case call.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case call.FieldBilledMinutes:
		return m.AddedBilledMinutes()
	case call.FieldCreditsUsed:
		return m.AddedCreditsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case call.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case call.FieldBilledMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBilledMinutes(v)
		return nil
	case call.FieldCreditsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Call numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(call.FieldAgentID) {
		fields = append(fields, call.FieldAgentID)
	}
	if m.FieldCleared(call.FieldCampaignID) {
		fields = append(fields, call.FieldCampaignID)
	}
	if m.FieldCleared(call.FieldContactID) {
		fields = append(fields, call.FieldContactID)
	}
	if m.FieldCleared(call.FieldQueueItemID) {
		fields = append(fields, call.FieldQueueItemID)
	}
	if m.FieldCleared(call.FieldExecutionID) {
		fields = append(fields, call.FieldExecutionID)
	}
	if m.FieldCleared(call.FieldFromPhone) {
		fields = append(fields, call.FieldFromPhone)
	}
	if m.FieldCleared(call.FieldHangupBy) {
		fields = append(fields, call.FieldHangupBy)
	}
	if m.FieldCleared(call.FieldHangupReason) {
		fields = append(fields, call.FieldHangupReason)
	}
	if m.FieldCleared(call.FieldHangupProviderCode) {
		fields = append(fields, call.FieldHangupProviderCode)
	}
	if m.FieldCleared(call.FieldRecordingURL) {
		fields = append(fields, call.FieldRecordingURL)
	}
	if m.FieldCleared(call.FieldSummary) {
		fields = append(fields, call.FieldSummary)
	}
	if m.FieldCleared(call.FieldFailureReason) {
		fields = append(fields, call.FieldFailureReason)
	}
	if m.FieldCleared(call.FieldProviderPayload) {
		fields = append(fields, call.FieldProviderPayload)
	}
	if m.FieldCleared(call.FieldRingingStartedAt) {
		fields = append(fields, call.FieldRingingStartedAt)
	}
	if m.FieldCleared(call.FieldAnsweredAt) {
		fields = append(fields, call.FieldAnsweredAt)
	}
	if m.FieldCleared(call.FieldDisconnectedAt) {
		fields = append(fields, call.FieldDisconnectedAt)
	}
	if m.FieldCleared(call.FieldStartedAt) {
		fields = append(fields, call.FieldStartedAt)
	}
	if m.FieldCleared(call.FieldEndedAt) {
		fields = append(fields, call.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CallMutation) ClearField(name string) error {
	switch name {
	case call.FieldAgentID:
		m.ClearAgentID()
		return nil
	case call.FieldCampaignID:
		m.ClearCampaignID()
		return nil
	case call.FieldContactID:
		m.ClearContactID()
		return nil
	case call.FieldQueueItemID:
		m.ClearQueueItemID()
		return nil
	case call.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case call.FieldFromPhone:
		m.ClearFromPhone()
		return nil
	case call.FieldHangupBy:
		m.ClearHangupBy()
		return nil
	case call.FieldHangupReason:
		m.ClearHangupReason()
		return nil
	case call.FieldHangupProviderCode:
		m.ClearHangupProviderCode()
		return nil
	case call.FieldRecordingURL:
		m.ClearRecordingURL()
		return nil
	case call.FieldSummary:
		m.ClearSummary()
		return nil
	case call.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case call.FieldProviderPayload:
		m.ClearProviderPayload()
		return nil
	case call.FieldRingingStartedAt:
		m.ClearRingingStartedAt()
		return nil
	case call.FieldAnsweredAt:
		m.ClearAnsweredAt()
		return nil
	case call.FieldDisconnectedAt:
		m.ClearDisconnectedAt()
		return nil
	case call.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case call.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown Call nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CallMutation) ResetField(name string) error {
	switch name {
	case call.FieldTenantID:
		m.ResetTenantID()
		return nil
	case call.FieldAgentID:
		m.ResetAgentID()
		return nil
	case call.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case call.FieldContactID:
		m.ResetContactID()
		return nil
	case call.FieldQueueItemID:
		m.ResetQueueItemID()
		return nil
	case call.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case call.FieldFromPhone:
		m.ResetFromPhone()
		return nil
	case call.FieldToPhone:
		m.ResetToPhone()
		return nil
	case call.FieldDirection:
		m.ResetDirection()
		return nil
	case call.FieldStatus:
		m.ResetStatus()
		return nil
	case call.FieldLifecycleStatus:
		m.ResetLifecycleStatus()
		return nil
	case call.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case call.FieldBilledMinutes:
		m.ResetBilledMinutes()
		return nil
	case call.FieldCreditsUsed:
		m.ResetCreditsUsed()
		return nil
	case call.FieldHangupBy:
		m.ResetHangupBy()
		return nil
	case call.FieldHangupReason:
		m.ResetHangupReason()
		return nil
	case call.FieldHangupProviderCode:
		m.ResetHangupProviderCode()
		return nil
	case call.FieldRecordingURL:
		m.ResetRecordingURL()
		return nil
	case call.FieldSummary:
		m.ResetSummary()
		return nil
	case call.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case call.FieldPlaceholder:
		m.ResetPlaceholder()
		return nil
	case call.FieldProviderPayload:
		m.ResetProviderPayload()
		return nil
	case call.FieldRingingStartedAt:
		m.ResetRingingStartedAt()
		return nil
	case call.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	case call.FieldDisconnectedAt:
		m.ResetDisconnectedAt()
		return nil
	case call.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case call.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case call.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case call.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Call field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Call unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Call edge %s", name)
}

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tenant_id          *string
	agent_id           *string
	name               *string
	status             *campaign.Status
	timezone           *string
	first_call_time    *string
	last_call_time     *string
	from_phone         *string
	start_date         *time.Time
	total_contacts     *int
	addtotal_contacts  *int
	completed_calls    *int
	addcompleted_calls *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Campaign, error)
	predicates         []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id string) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Campaign entities.
func (m *CampaignMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CampaignMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CampaignMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CampaignMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *CampaignMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CampaignMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CampaignMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetTimezone sets the "timezone" field.
func (m *CampaignMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *CampaignMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *CampaignMutation) ResetTimezone() {
	m.timezone = nil
}

// SetFirstCallTime sets the "first_call_time" field.
func (m *CampaignMutation) SetFirstCallTime(s string) {
	m.first_call_time = &s
}

// FirstCallTime returns the value of the "first_call_time" field in the mutation.
func (m *CampaignMutation) FirstCallTime() (r string, exists bool) {
	v := m.first_call_time
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstCallTime returns the old "first_call_time" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldFirstCallTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstCallTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstCallTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstCallTime: %w", err)
	}
	return oldValue.FirstCallTime, nil
}

// ResetFirstCallTime resets all changes to the "first_call_time" field.
func (m *CampaignMutation) ResetFirstCallTime() {
	m.first_call_time = nil
}

// SetLastCallTime sets the "last_call_time" field.
func (m *CampaignMutation) SetLastCallTime(s string) {
	m.last_call_time = &s
}

// LastCallTime returns the value of the "last_call_time" field in the mutation.
func (m *CampaignMutation) LastCallTime() (r string, exists bool) {
	v := m.last_call_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCallTime returns the old "last_call_time" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldLastCallTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCallTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCallTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCallTime: %w", err)
	}
	return oldValue.LastCallTime, nil
}

// ResetLastCallTime resets all changes to the "last_call_time" field.
func (m *CampaignMutation) ResetLastCallTime() {
	m.last_call_time = nil
}

// SetFromPhone sets the "from_phone" field.
func (m *CampaignMutation) SetFromPhone(s string) {
	m.from_phone = &s
}

// FromPhone returns the value of the "from_phone" field in the mutation.
func (m *CampaignMutation) FromPhone() (r string, exists bool) {
	v := m.from_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldFromPhone returns the old "from_phone" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldFromPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromPhone: %w", err)
	}
	return oldValue.FromPhone, nil
}

// ClearFromPhone clears the value of the "from_phone" field.
func (m *CampaignMutation) ClearFromPhone() {
	m.from_phone = nil
	m.clearedFields[campaign.FieldFromPhone] = struct{}{}
}

// FromPhoneCleared returns if the "from_phone" field was cleared in this mutation.
func (m *CampaignMutation) FromPhoneCleared() bool {
	_, ok := m.clearedFields[campaign.FieldFromPhone]
	return ok
}

// ResetFromPhone resets all changes to the "from_phone" field.
func (m *CampaignMutation) ResetFromPhone() {
	m.from_phone = nil
	delete(m.clearedFields, campaign.FieldFromPhone)
}

// SetStartDate sets the "start_date" field.
func (m *CampaignMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *CampaignMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *CampaignMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[campaign.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *CampaignMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[campaign.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *CampaignMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, campaign.FieldStartDate)
}

// SetTotalContacts sets the "total_contacts" field.
func (m *CampaignMutation) SetTotalContacts(i int) {
	m.total_contacts = &i
	m.addtotal_contacts = nil
}

// TotalContacts returns the value of the "total_contacts" field in the mutation.
func (m *CampaignMutation) TotalContacts() (r int, exists bool) {
	v := m.total_contacts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalContacts returns the old "total_contacts" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTotalContacts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalContacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalContacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalContacts: %w", err)
	}
	return oldValue.TotalContacts, nil
}

// AddTotalContacts adds i to the "total_contacts" field.
func (m *CampaignMutation) AddTotalContacts(i int) {
	if m.addtotal_contacts != nil {
		*m.addtotal_contacts += i
	} else {
		m.addtotal_contacts = &i
	}
}

// AddedTotalContacts returns the value that was added to the "total_contacts" field in this mutation.
func (m *CampaignMutation) AddedTotalContacts() (r int, exists bool) {
	v := m.addtotal_contacts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalContacts resets all changes to the "total_contacts" field.
func (m *CampaignMutation) ResetTotalContacts() {
	m.total_contacts = nil
	m.addtotal_contacts = nil
}

// SetCompletedCalls sets the "completed_calls" field.
func (m *CampaignMutation) SetCompletedCalls(i int) {
	m.completed_calls = &i
	m.addcompleted_calls = nil
}

// CompletedCalls returns the value of the "completed_calls" field in the mutation.
func (m *CampaignMutation) CompletedCalls() (r int, exists bool) {
	v := m.completed_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedCalls returns the old "completed_calls" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCompletedCalls(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedCalls: %w", err)
	}
	return oldValue.CompletedCalls, nil
}

// AddCompletedCalls adds i to the "completed_calls" field.
func (m *CampaignMutation) AddCompletedCalls(i int) {
	if m.addcompleted_calls != nil {
		*m.addcompleted_calls += i
	} else {
		m.addcompleted_calls = &i
	}
}

// AddedCompletedCalls returns the value that was added to the "completed_calls" field in this mutation.
func (m *CampaignMutation) AddedCompletedCalls() (r int, exists bool) {
	v := m.addcompleted_calls
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedCalls resets all changes to the "completed_calls" field.
func (m *CampaignMutation) ResetCompletedCalls() {
	m.completed_calls = nil
	m.addcompleted_calls = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant_id != nil {
		fields = append(fields, campaign.FieldTenantID)
	}
	if m.agent_id != nil {
		fields = append(fields, campaign.FieldAgentID)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.timezone != nil {
		fields = append(fields, campaign.FieldTimezone)
	}
	if m.first_call_time != nil {
		fields = append(fields, campaign.FieldFirstCallTime)
	}
	if m.last_call_time != nil {
		fields = append(fields, campaign.FieldLastCallTime)
	}
	if m.from_phone != nil {
		fields = append(fields, campaign.FieldFromPhone)
	}
	if m.start_date != nil {
		fields = append(fields, campaign.FieldStartDate)
	}
	if m.total_contacts != nil {
		fields = append(fields, campaign.FieldTotalContacts)
	}
	if m.completed_calls != nil {
		fields = append(fields, campaign.FieldCompletedCalls)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldTenantID:
		return m.TenantID()
	case campaign.FieldAgentID:
		return m.AgentID()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldTimezone:
		return m.Timezone()
	case campaign.FieldFirstCallTime:
		return m.FirstCallTime()
	case campaign.FieldLastCallTime:
		return m.LastCallTime()
	case campaign.FieldFromPhone:
		return m.FromPhone()
	case campaign.FieldStartDate:
		return m.StartDate()
	case campaign.FieldTotalContacts:
		return m.TotalContacts()
	case campaign.FieldCompletedCalls:
		return m.CompletedCalls()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldTenantID:
		return m.OldTenantID(ctx)
	case campaign.FieldAgentID:
		return m.OldAgentID(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldTimezone:
		return m.OldTimezone(ctx)
	case campaign.FieldFirstCallTime:
		return m.OldFirstCallTime(ctx)
	case campaign.FieldLastCallTime:
		return m.OldLastCallTime(ctx)
	case campaign.FieldFromPhone:
		return m.OldFromPhone(ctx)
	case campaign.FieldStartDate:
		return m.OldStartDate(ctx)
	case campaign.FieldTotalContacts:
		return m.OldTotalContacts(ctx)
	case campaign.FieldCompletedCalls:
		return m.OldCompletedCalls(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case campaign.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case campaign.FieldFirstCallTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstCallTime(v)
		return nil
	case campaign.FieldLastCallTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCallTime(v)
		return nil
	case campaign.FieldFromPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromPhone(v)
		return nil
	case campaign.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case campaign.FieldTotalContacts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalContacts(v)
		return nil
	case campaign.FieldCompletedCalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedCalls(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_contacts != nil {
		fields = append(fields, campaign.FieldTotalContacts)
	}
	if m.addcompleted_calls != nil {
		fields = append(fields, campaign.FieldCompletedCalls)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldTotalContacts:
		return m.AddedTotalContacts()
	case campaign.FieldCompletedCalls:
		return m.AddedCompletedCalls()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldTotalContacts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalContacts(v)
		return nil
	case campaign.FieldCompletedCalls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedCalls(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldFromPhone) {
		fields = append(fields, campaign.FieldFromPhone)
	}
	if m.FieldCleared(campaign.FieldStartDate) {
		fields = append(fields, campaign.FieldStartDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldFromPhone:
		m.ClearFromPhone()
		return nil
	case campaign.FieldStartDate:
		m.ClearStartDate()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldTenantID:
		m.ResetTenantID()
		return nil
	case campaign.FieldAgentID:
		m.ResetAgentID()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldTimezone:
		m.ResetTimezone()
		return nil
	case campaign.FieldFirstCallTime:
		m.ResetFirstCallTime()
		return nil
	case campaign.FieldLastCallTime:
		m.ResetLastCallTime()
		return nil
	case campaign.FieldFromPhone:
		m.ResetFromPhone()
		return nil
	case campaign.FieldStartDate:
		m.ResetStartDate()
		return nil
	case campaign.FieldTotalContacts:
		m.ResetTotalContacts()
		return nil
	case campaign.FieldCompletedCalls:
		m.ResetCompletedCalls()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// ContactMutation represents an operation that mutates the Contact nodes in the graph.
type ContactMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	tenant_id                 *string
	phone                     *string
	name                      *string
	email                     *string
	company                   *string
	lead_source               *string
	entry_type                *contact.EntryType
	is_auto_created           *bool
	auto_creation_source      *string
	auto_created_from_call_id *string
	tags                      *[]string
	appendtags                []string
	custom_fields             *map[string]interface{}
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Contact, error)
	predicates                []predicate.Contact
}

var _ ent.Mutation = (*ContactMutation)(nil)

// contactOption allows management of the mutation configuration using functional options.
type contactOption func(*ContactMutation)

// newContactMutation creates new mutation for the Contact entity.
func newContactMutation(c config, op Op, opts ...contactOption) *ContactMutation {
	m := &ContactMutation{
		config:        c,
		op:            op,
		typ:           TypeContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactID sets the ID field of the mutation.
func withContactID(id string) contactOption {
	return func(m *ContactMutation) {
		var (
			err   error
			once  sync.Once
			value *Contact
		)
		m.oldValue = func(ctx context.Context) (*Contact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContact sets the old Contact of the mutation.
func withContact(node *Contact) contactOption {
	return func(m *ContactMutation) {
		m.oldValue = func(context.Context) (*Contact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contact entities.
func (m *ContactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ContactMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ContactMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ContactMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPhone sets the "phone" field.
func (m *ContactMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ContactMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *ContactMutation) ResetPhone() {
	m.phone = nil
}

// SetName sets the "name" field.
func (m *ContactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *ContactMutation) ClearName() {
	m.name = nil
	m.clearedFields[contact.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ContactMutation) NameCleared() bool {
	_, ok := m.clearedFields[contact.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ContactMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, contact.FieldName)
}

// SetEmail sets the "email" field.
func (m *ContactMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ContactMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ContactMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[contact.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ContactMutation) EmailCleared() bool {
	_, ok := m.clearedFields[contact.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ContactMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, contact.FieldEmail)
}

// SetCompany sets the "company" field.
func (m *ContactMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *ContactMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCompany(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *ContactMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[contact.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *ContactMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[contact.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *ContactMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, contact.FieldCompany)
}

// SetLeadSource sets the "lead_source" field.
func (m *ContactMutation) SetLeadSource(s string) {
	m.lead_source = &s
}

// LeadSource returns the value of the "lead_source" field in the mutation.
func (m *ContactMutation) LeadSource() (r string, exists bool) {
	v := m.lead_source
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadSource returns the old "lead_source" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldLeadSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadSource: %w", err)
	}
	return oldValue.LeadSource, nil
}

// ClearLeadSource clears the value of the "lead_source" field.
func (m *ContactMutation) ClearLeadSource() {
	m.lead_source = nil
	m.clearedFields[contact.FieldLeadSource] = struct{}{}
}

// LeadSourceCleared returns if the "lead_source" field was cleared in this mutation.
func (m *ContactMutation) LeadSourceCleared() bool {
	_, ok := m.clearedFields[contact.FieldLeadSource]
	return ok
}

// ResetLeadSource resets all changes to the "lead_source" field.
func (m *ContactMutation) ResetLeadSource() {
	m.lead_source = nil
	delete(m.clearedFields, contact.FieldLeadSource)
}

// SetEntryType sets the "entry_type" field.
func (m *ContactMutation) SetEntryType(ct contact.EntryType) {
	m.entry_type = &ct
}

// EntryType returns the value of the "entry_type" field in the mutation.
func (m *ContactMutation) EntryType() (r contact.EntryType, exists bool) {
	v := m.entry_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryType returns the old "entry_type" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEntryType(ctx context.Context) (v contact.EntryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryType: %w", err)
	}
	return oldValue.EntryType, nil
}

// ResetEntryType resets all changes to the "entry_type" field.
func (m *ContactMutation) ResetEntryType() {
	m.entry_type = nil
}

// SetIsAutoCreated sets the "is_auto_created" field.
func (m *ContactMutation) SetIsAutoCreated(b bool) {
	m.is_auto_created = &b
}

// IsAutoCreated returns the value of the "is_auto_created" field in the mutation.
func (m *ContactMutation) IsAutoCreated() (r bool, exists bool) {
	v := m.is_auto_created
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAutoCreated returns the old "is_auto_created" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldIsAutoCreated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAutoCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAutoCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAutoCreated: %w", err)
	}
	return oldValue.IsAutoCreated, nil
}

// ResetIsAutoCreated resets all changes to the "is_auto_created" field.
func (m *ContactMutation) ResetIsAutoCreated() {
	m.is_auto_created = nil
}

// SetAutoCreationSource sets the "auto_creation_source" field.
func (m *ContactMutation) SetAutoCreationSource(s string) {
	m.auto_creation_source = &s
}

// AutoCreationSource returns the value of the "auto_creation_source" field in the mutation.
func (m *ContactMutation) AutoCreationSource() (r string, exists bool) {
	v := m.auto_creation_source
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoCreationSource returns the old "auto_creation_source" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldAutoCreationSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoCreationSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoCreationSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoCreationSource: %w", err)
	}
	return oldValue.AutoCreationSource, nil
}

// ClearAutoCreationSource clears the value of the "auto_creation_source" field.
func (m *ContactMutation) ClearAutoCreationSource() {
	m.auto_creation_source = nil
	m.clearedFields[contact.FieldAutoCreationSource] = struct{}{}
}

// AutoCreationSourceCleared returns if the "auto_creation_source" field was cleared in this mutation.
func (m *ContactMutation) AutoCreationSourceCleared() bool {
	_, ok := m.clearedFields[contact.FieldAutoCreationSource]
	return ok
}

// ResetAutoCreationSource resets all changes to the "auto_creation_source" field.
func (m *ContactMutation) ResetAutoCreationSource() {
	m.auto_creation_source = nil
	delete(m.clearedFields, contact.FieldAutoCreationSource)
}

// SetAutoCreatedFromCallID sets the "auto_created_from_call_id" field.
func (m *ContactMutation) SetAutoCreatedFromCallID(s string) {
	m.auto_created_from_call_id = &s
}

// AutoCreatedFromCallID returns the value of the "auto_created_from_call_id" field in the mutation.
func (m *ContactMutation) AutoCreatedFromCallID() (r string, exists bool) {
	v := m.auto_created_from_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoCreatedFromCallID returns the old "auto_created_from_call_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldAutoCreatedFromCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoCreatedFromCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoCreatedFromCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoCreatedFromCallID: %w", err)
	}
	return oldValue.AutoCreatedFromCallID, nil
}

// ClearAutoCreatedFromCallID clears the value of the "auto_created_from_call_id" field.
func (m *ContactMutation) ClearAutoCreatedFromCallID() {
	m.auto_created_from_call_id = nil
	m.clearedFields[contact.FieldAutoCreatedFromCallID] = struct{}{}
}

// AutoCreatedFromCallIDCleared returns if the "auto_created_from_call_id" field was cleared in this mutation.
func (m *ContactMutation) AutoCreatedFromCallIDCleared() bool {
	_, ok := m.clearedFields[contact.FieldAutoCreatedFromCallID]
	return ok
}

// ResetAutoCreatedFromCallID resets all changes to the "auto_created_from_call_id" field.
func (m *ContactMutation) ResetAutoCreatedFromCallID() {
	m.auto_created_from_call_id = nil
	delete(m.clearedFields, contact.FieldAutoCreatedFromCallID)
}

// SetTags sets the "tags" field.
func (m *ContactMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ContactMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ContactMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ContactMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ContactMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[contact.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ContactMutation) TagsCleared() bool {
	_, ok := m.clearedFields[contact.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ContactMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, contact.FieldTags)
}

// SetCustomFields sets the "custom_fields" field.
func (m *ContactMutation) SetCustomFields(value map[string]interface{}) {
	m.custom_fields = &value
}

// CustomFields returns the value of the "custom_fields" field in the mutation.
func (m *ContactMutation) CustomFields() (r map[string]interface{}, exists bool) {
	v := m.custom_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomFields returns the old "custom_fields" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCustomFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomFields: %w", err)
	}
	return oldValue.CustomFields, nil
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (m *ContactMutation) ClearCustomFields() {
	m.custom_fields = nil
	m.clearedFields[contact.FieldCustomFields] = struct{}{}
}

// CustomFieldsCleared returns if the "custom_fields" field was cleared in this mutation.
func (m *ContactMutation) CustomFieldsCleared() bool {
	_, ok := m.clearedFields[contact.FieldCustomFields]
	return ok
}

// ResetCustomFields resets all changes to the "custom_fields" field.
func (m *ContactMutation) ResetCustomFields() {
	m.custom_fields = nil
	delete(m.clearedFields, contact.FieldCustomFields)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ContactMutation builder.
func (m *ContactMutation) Where(ps ...predicate.Contact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contact).
func (m *ContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, contact.FieldTenantID)
	}
	if m.phone != nil {
		fields = append(fields, contact.FieldPhone)
	}
	if m.name != nil {
		fields = append(fields, contact.FieldName)
	}
	if m.email != nil {
		fields = append(fields, contact.FieldEmail)
	}
	if m.company != nil {
		fields = append(fields, contact.FieldCompany)
	}
	if m.lead_source != nil {
		fields = append(fields, contact.FieldLeadSource)
	}
	if m.entry_type != nil {
		fields = append(fields, contact.FieldEntryType)
	}
	if m.is_auto_created != nil {
		fields = append(fields, contact.FieldIsAutoCreated)
	}
	if m.auto_creation_source != nil {
		fields = append(fields, contact.FieldAutoCreationSource)
	}
	if m.auto_created_from_call_id != nil {
		fields = append(fields, contact.FieldAutoCreatedFromCallID)
	}
	if m.tags != nil {
		fields = append(fields, contact.FieldTags)
	}
	if m.custom_fields != nil {
		fields = append(fields, contact.FieldCustomFields)
	}
	if m.created_at != nil {
		fields = append(fields, contact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldTenantID:
		return m.TenantID()
	case contact.FieldPhone:
		return m.Phone()
	case contact.FieldName:
		return m.Name()
	case contact.FieldEmail:
		return m.Email()
	case contact.FieldCompany:
		return m.Company()
	case contact.FieldLeadSource:
		return m.LeadSource()
	case contact.FieldEntryType:
		return m.EntryType()
	case contact.FieldIsAutoCreated:
		return m.IsAutoCreated()
	case contact.FieldAutoCreationSource:
		return m.AutoCreationSource()
	case contact.FieldAutoCreatedFromCallID:
		return m.AutoCreatedFromCallID()
	case contact.FieldTags:
		return m.Tags()
	case contact.FieldCustomFields:
		return m.CustomFields()
	case contact.FieldCreatedAt:
		return m.CreatedAt()
	case contact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contact.FieldTenantID:
		return m.OldTenantID(ctx)
	case contact.FieldPhone:
		return m.OldPhone(ctx)
	case contact.FieldName:
		return m.OldName(ctx)
	case contact.FieldEmail:
		return m.OldEmail(ctx)
	case contact.FieldCompany:
		return m.OldCompany(ctx)
	case contact.FieldLeadSource:
		return m.OldLeadSource(ctx)
	case contact.FieldEntryType:
		return m.OldEntryType(ctx)
	case contact.FieldIsAutoCreated:
		return m.OldIsAutoCreated(ctx)
	case contact.FieldAutoCreationSource:
		return m.OldAutoCreationSource(ctx)
	case contact.FieldAutoCreatedFromCallID:
		return m.OldAutoCreatedFromCallID(ctx)
	case contact.FieldTags:
		return m.OldTags(ctx)
	case contact.FieldCustomFields:
		return m.OldCustomFields(ctx)
	case contact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contact.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case contact.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case contact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contact.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case contact.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case contact.FieldLeadSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadSource(v)
		return nil
	case contact.FieldEntryType:
		v, ok := value.(contact.EntryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryType(v)
		return nil
	case contact.FieldIsAutoCreated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAutoCreated(v)
		return nil
	case contact.FieldAutoCreationSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoCreationSource(v)
		return nil
	case contact.FieldAutoCreatedFromCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoCreatedFromCallID(v)
		return nil
	case contact.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case contact.FieldCustomFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomFields(v)
		return nil
	case contact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contact.FieldName) {
		fields = append(fields, contact.FieldName)
	}
	if m.FieldCleared(contact.FieldEmail) {
		fields = append(fields, contact.FieldEmail)
	}
	if m.FieldCleared(contact.FieldCompany) {
		fields = append(fields, contact.FieldCompany)
	}
	if m.FieldCleared(contact.FieldLeadSource) {
		fields = append(fields, contact.FieldLeadSource)
	}
	if m.FieldCleared(contact.FieldAutoCreationSource) {
		fields = append(fields, contact.FieldAutoCreationSource)
	}
	if m.FieldCleared(contact.FieldAutoCreatedFromCallID) {
		fields = append(fields, contact.FieldAutoCreatedFromCallID)
	}
	if m.FieldCleared(contact.FieldTags) {
		fields = append(fields, contact.FieldTags)
	}
	if m.FieldCleared(contact.FieldCustomFields) {
		fields = append(fields, contact.FieldCustomFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMutation) ClearField(name string) error {
	switch name {
	case contact.FieldName:
		m.ClearName()
		return nil
	case contact.FieldEmail:
		m.ClearEmail()
		return nil
	case contact.FieldCompany:
		m.ClearCompany()
		return nil
	case contact.FieldLeadSource:
		m.ClearLeadSource()
		return nil
	case contact.FieldAutoCreationSource:
		m.ClearAutoCreationSource()
		return nil
	case contact.FieldAutoCreatedFromCallID:
		m.ClearAutoCreatedFromCallID()
		return nil
	case contact.FieldTags:
		m.ClearTags()
		return nil
	case contact.FieldCustomFields:
		m.ClearCustomFields()
		return nil
	}
	return fmt.Errorf("unknown Contact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMutation) ResetField(name string) error {
	switch name {
	case contact.FieldTenantID:
		m.ResetTenantID()
		return nil
	case contact.FieldPhone:
		m.ResetPhone()
		return nil
	case contact.FieldName:
		m.ResetName()
		return nil
	case contact.FieldEmail:
		m.ResetEmail()
		return nil
	case contact.FieldCompany:
		m.ResetCompany()
		return nil
	case contact.FieldLeadSource:
		m.ResetLeadSource()
		return nil
	case contact.FieldEntryType:
		m.ResetEntryType()
		return nil
	case contact.FieldIsAutoCreated:
		m.ResetIsAutoCreated()
		return nil
	case contact.FieldAutoCreationSource:
		m.ResetAutoCreationSource()
		return nil
	case contact.FieldAutoCreatedFromCallID:
		m.ResetAutoCreatedFromCallID()
		return nil
	case contact.FieldTags:
		m.ResetTags()
		return nil
	case contact.FieldCustomFields:
		m.ResetCustomFields()
		return nil
	case contact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Contact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Contact edge %s", name)
}

// CreditTransactionMutation represents an operation that mutates the CreditTransaction nodes in the graph.
type CreditTransactionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	_type            *credittransaction.Type
	amount           *int
	addamount        *int
	balance_after    *int
	addbalance_after *int
	call_id          *string
	description      *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CreditTransaction, error)
	predicates       []predicate.CreditTransaction
}

var _ ent.Mutation = (*CreditTransactionMutation)(nil)

// credittransactionOption allows management of the mutation configuration using functional options.
type credittransactionOption func(*CreditTransactionMutation)

// newCreditTransactionMutation creates new mutation for the CreditTransaction entity.
func newCreditTransactionMutation(c config, op Op, opts ...credittransactionOption) *CreditTransactionMutation {
	m := &CreditTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditTransactionID sets the ID field of the mutation.
func withCreditTransactionID(id string) credittransactionOption {
	return func(m *CreditTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditTransaction
		)
		m.oldValue = func(ctx context.Context) (*CreditTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditTransaction sets the old CreditTransaction of the mutation.
func withCreditTransaction(node *CreditTransaction) credittransactionOption {
	return func(m *CreditTransactionMutation) {
		m.oldValue = func(context.Context) (*CreditTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditTransaction entities.
func (m *CreditTransactionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditTransactionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditTransactionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CreditTransactionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CreditTransactionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CreditTransactionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetType sets the "type" field.
func (m *CreditTransactionMutation) SetType(c credittransaction.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CreditTransactionMutation) GetType() (r credittransaction.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldType(ctx context.Context) (v credittransaction.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CreditTransactionMutation) ResetType() {
	m._type = nil
}

// SetAmount sets the "amount" field.
func (m *CreditTransactionMutation) SetAmount(i int) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *CreditTransactionMutation) Amount() (r int, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *CreditTransactionMutation) AddAmount(i int) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *CreditTransactionMutation) AddedAmount() (r int, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *CreditTransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetBalanceAfter sets the "balance_after" field.
func (m *CreditTransactionMutation) SetBalanceAfter(i int) {
	m.balance_after = &i
	m.addbalance_after = nil
}

// BalanceAfter returns the value of the "balance_after" field in the mutation.
func (m *CreditTransactionMutation) BalanceAfter() (r int, exists bool) {
	v := m.balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceAfter returns the old "balance_after" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldBalanceAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceAfter: %w", err)
	}
	return oldValue.BalanceAfter, nil
}

// AddBalanceAfter adds i to the "balance_after" field.
func (m *CreditTransactionMutation) AddBalanceAfter(i int) {
	if m.addbalance_after != nil {
		*m.addbalance_after += i
	} else {
		m.addbalance_after = &i
	}
}

// AddedBalanceAfter returns the value that was added to the "balance_after" field in this mutation.
func (m *CreditTransactionMutation) AddedBalanceAfter() (r int, exists bool) {
	v := m.addbalance_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceAfter resets all changes to the "balance_after" field.
func (m *CreditTransactionMutation) ResetBalanceAfter() {
	m.balance_after = nil
	m.addbalance_after = nil
}

// SetCallID sets the "call_id" field.
func (m *CreditTransactionMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *CreditTransactionMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ClearCallID clears the value of the "call_id" field.
func (m *CreditTransactionMutation) ClearCallID() {
	m.call_id = nil
	m.clearedFields[credittransaction.FieldCallID] = struct{}{}
}

// CallIDCleared returns if the "call_id" field was cleared in this mutation.
func (m *CreditTransactionMutation) CallIDCleared() bool {
	_, ok := m.clearedFields[credittransaction.FieldCallID]
	return ok
}

// ResetCallID resets all changes to the "call_id" field.
func (m *CreditTransactionMutation) ResetCallID() {
	m.call_id = nil
	delete(m.clearedFields, credittransaction.FieldCallID)
}

// SetDescription sets the "description" field.
func (m *CreditTransactionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CreditTransactionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CreditTransactionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[credittransaction.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CreditTransactionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[credittransaction.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CreditTransactionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, credittransaction.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *CreditTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreditTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreditTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CreditTransactionMutation builder.
func (m *CreditTransactionMutation) Where(ps ...predicate.CreditTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditTransaction).
func (m *CreditTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditTransactionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, credittransaction.FieldTenantID)
	}
	if m._type != nil {
		fields = append(fields, credittransaction.FieldType)
	}
	if m.amount != nil {
		fields = append(fields, credittransaction.FieldAmount)
	}
	if m.balance_after != nil {
		fields = append(fields, credittransaction.FieldBalanceAfter)
	}
	if m.call_id != nil {
		fields = append(fields, credittransaction.FieldCallID)
	}
	if m.description != nil {
		fields = append(fields, credittransaction.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, credittransaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case credittransaction.FieldTenantID:
		return m.TenantID()
	case credittransaction.FieldType:
		return m.GetType()
	case credittransaction.FieldAmount:
		return m.Amount()
	case credittransaction.FieldBalanceAfter:
		return m.BalanceAfter()
	case credittransaction.FieldCallID:
		return m.CallID()
	case credittransaction.FieldDescription:
		return m.Description()
	case credittransaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case credittransaction.FieldTenantID:
		return m.OldTenantID(ctx)
	case credittransaction.FieldType:
		return m.OldType(ctx)
	case credittransaction.FieldAmount:
		return m.OldAmount(ctx)
	case credittransaction.FieldBalanceAfter:
		return m.OldBalanceAfter(ctx)
	case credittransaction.FieldCallID:
		return m.OldCallID(ctx)
	case credittransaction.FieldDescription:
		return m.OldDescription(ctx)
	case credittransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CreditTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case credittransaction.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case credittransaction.FieldType:
		v, ok := value.(credittransaction.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case credittransaction.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case credittransaction.FieldBalanceAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceAfter(v)
		return nil
	case credittransaction.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case credittransaction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case credittransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, credittransaction.FieldAmount)
	}
	if m.addbalance_after != nil {
		fields = append(fields, credittransaction.FieldBalanceAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case credittransaction.FieldAmount:
		return m.AddedAmount()
	case credittransaction.FieldBalanceAfter:
		return m.AddedBalanceAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case credittransaction.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case credittransaction.FieldBalanceAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceAfter(v)
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(credittransaction.FieldCallID) {
		fields = append(fields, credittransaction.FieldCallID)
	}
	if m.FieldCleared(credittransaction.FieldDescription) {
		fields = append(fields, credittransaction.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditTransactionMutation) ClearField(name string) error {
	switch name {
	case credittransaction.FieldCallID:
		m.ClearCallID()
		return nil
	case credittransaction.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditTransactionMutation) ResetField(name string) error {
	switch name {
	case credittransaction.FieldTenantID:
		m.ResetTenantID()
		return nil
	case credittransaction.FieldType:
		m.ResetType()
		return nil
	case credittransaction.FieldAmount:
		m.ResetAmount()
		return nil
	case credittransaction.FieldBalanceAfter:
		m.ResetBalanceAfter()
		return nil
	case credittransaction.FieldCallID:
		m.ResetCallID()
		return nil
	case credittransaction.FieldDescription:
		m.ResetDescription()
		return nil
	case credittransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditTransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditTransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditTransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CreditTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditTransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CreditTransaction edge %s", name)
}

// EngagementFlowMutation represents an operation that mutates the EngagementFlow nodes in the graph.
type EngagementFlowMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	name             *string
	priority         *int
	addpriority      *int
	enabled          *bool
	trigger_type     *engagementflow.TriggerType
	conditions       *[]map[string]interface{}
	appendconditions []map[string]interface{}
	actions          *[]map[string]interface{}
	appendactions    []map[string]interface{}
	agent_id         *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*EngagementFlow, error)
	predicates       []predicate.EngagementFlow
}

var _ ent.Mutation = (*EngagementFlowMutation)(nil)

// engagementflowOption allows management of the mutation configuration using functional options.
type engagementflowOption func(*EngagementFlowMutation)

// newEngagementFlowMutation creates new mutation for the EngagementFlow entity.
func newEngagementFlowMutation(c config, op Op, opts ...engagementflowOption) *EngagementFlowMutation {
	m := &EngagementFlowMutation{
		config:        c,
		op:            op,
		typ:           TypeEngagementFlow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEngagementFlowID sets the ID field of the mutation.
func withEngagementFlowID(id string) engagementflowOption {
	return func(m *EngagementFlowMutation) {
		var (
			err   error
			once  sync.Once
			value *EngagementFlow
		)
		m.oldValue = func(ctx context.Context) (*EngagementFlow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EngagementFlow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEngagementFlow sets the old EngagementFlow of the mutation.
func withEngagementFlow(node *EngagementFlow) engagementflowOption {
	return func(m *EngagementFlowMutation) {
		m.oldValue = func(context.Context) (*EngagementFlow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EngagementFlowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EngagementFlowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EngagementFlow entities.
func (m *EngagementFlowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EngagementFlowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EngagementFlowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EngagementFlow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *EngagementFlowMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EngagementFlowMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EngagementFlowMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *EngagementFlowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EngagementFlowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EngagementFlowMutation) ResetName() {
	m.name = nil
}

// SetPriority sets the "priority" field.
func (m *EngagementFlowMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *EngagementFlowMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *EngagementFlowMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *EngagementFlowMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *EngagementFlowMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEnabled sets the "enabled" field.
func (m *EngagementFlowMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *EngagementFlowMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *EngagementFlowMutation) ResetEnabled() {
	m.enabled = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *EngagementFlowMutation) SetTriggerType(et engagementflow.TriggerType) {
	m.trigger_type = &et
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *EngagementFlowMutation) TriggerType() (r engagementflow.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldTriggerType(ctx context.Context) (v engagementflow.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *EngagementFlowMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetConditions sets the "conditions" field.
func (m *EngagementFlowMutation) SetConditions(value []map[string]interface{}) {
	m.conditions = &value
	m.appendconditions = nil
}

// Conditions returns the value of the "conditions" field in the mutation.
func (m *EngagementFlowMutation) Conditions() (r []map[string]interface{}, exists bool) {
	v := m.conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldConditions returns the old "conditions" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldConditions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditions: %w", err)
	}
	return oldValue.Conditions, nil
}

// AppendConditions adds value to the "conditions" field.
func (m *EngagementFlowMutation) AppendConditions(value []map[string]interface{}) {
	m.appendconditions = append(m.appendconditions, value...)
}

// AppendedConditions returns the list of values that were appended to the "conditions" field in this mutation.
func (m *EngagementFlowMutation) AppendedConditions() ([]map[string]interface{}, bool) {
	if len(m.appendconditions) == 0 {
		return nil, false
	}
	return m.appendconditions, true
}

// ClearConditions clears the value of the "conditions" field.
func (m *EngagementFlowMutation) ClearConditions() {
	m.conditions = nil
	m.appendconditions = nil
	m.clearedFields[engagementflow.FieldConditions] = struct{}{}
}

// ConditionsCleared returns if the "conditions" field was cleared in this mutation.
func (m *EngagementFlowMutation) ConditionsCleared() bool {
	_, ok := m.clearedFields[engagementflow.FieldConditions]
	return ok
}

// ResetConditions resets all changes to the "conditions" field.
func (m *EngagementFlowMutation) ResetConditions() {
	m.conditions = nil
	m.appendconditions = nil
	delete(m.clearedFields, engagementflow.FieldConditions)
}

// SetActions sets the "actions" field.
func (m *EngagementFlowMutation) SetActions(value []map[string]interface{}) {
	m.actions = &value
	m.appendactions = nil
}

// Actions returns the value of the "actions" field in the mutation.
func (m *EngagementFlowMutation) Actions() (r []map[string]interface{}, exists bool) {
	v := m.actions
	if v == nil {
		return
	}
	return *v, true
}

// OldActions returns the old "actions" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldActions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActions: %w", err)
	}
	return oldValue.Actions, nil
}

// AppendActions adds value to the "actions" field.
func (m *EngagementFlowMutation) AppendActions(value []map[string]interface{}) {
	m.appendactions = append(m.appendactions, value...)
}

// AppendedActions returns the list of values that were appended to the "actions" field in this mutation.
func (m *EngagementFlowMutation) AppendedActions() ([]map[string]interface{}, bool) {
	if len(m.appendactions) == 0 {
		return nil, false
	}
	return m.appendactions, true
}

// ResetActions resets all changes to the "actions" field.
func (m *EngagementFlowMutation) ResetActions() {
	m.actions = nil
	m.appendactions = nil
}

// SetAgentID sets the "agent_id" field.
func (m *EngagementFlowMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *EngagementFlowMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *EngagementFlowMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[engagementflow.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *EngagementFlowMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[engagementflow.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *EngagementFlowMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, engagementflow.FieldAgentID)
}

// SetCreatedAt sets the "created_at" field.
func (m *EngagementFlowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EngagementFlowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EngagementFlowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EngagementFlowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EngagementFlowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EngagementFlow entity.
// If the EngagementFlow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EngagementFlowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EngagementFlowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EngagementFlowMutation builder.
func (m *EngagementFlowMutation) Where(ps ...predicate.EngagementFlow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EngagementFlowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EngagementFlowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EngagementFlow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EngagementFlowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EngagementFlowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EngagementFlow).
func (m *EngagementFlowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EngagementFlowMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, engagementflow.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, engagementflow.FieldName)
	}
	if m.priority != nil {
		fields = append(fields, engagementflow.FieldPriority)
	}
	if m.enabled != nil {
		fields = append(fields, engagementflow.FieldEnabled)
	}
	if m.trigger_type != nil {
		fields = append(fields, engagementflow.FieldTriggerType)
	}
	if m.conditions != nil {
		fields = append(fields, engagementflow.FieldConditions)
	}
	if m.actions != nil {
		fields = append(fields, engagementflow.FieldActions)
	}
	if m.agent_id != nil {
		fields = append(fields, engagementflow.FieldAgentID)
	}
	if m.created_at != nil {
		fields = append(fields, engagementflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, engagementflow.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EngagementFlowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case engagementflow.FieldTenantID:
		return m.TenantID()
	case engagementflow.FieldName:
		return m.Name()
	case engagementflow.FieldPriority:
		return m.Priority()
	case engagementflow.FieldEnabled:
		return m.Enabled()
	case engagementflow.FieldTriggerType:
		return m.TriggerType()
	case engagementflow.FieldConditions:
		return m.Conditions()
	case engagementflow.FieldActions:
		return m.Actions()
	case engagementflow.FieldAgentID:
		return m.AgentID()
	case engagementflow.FieldCreatedAt:
		return m.CreatedAt()
	case engagementflow.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EngagementFlowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case engagementflow.FieldTenantID:
		return m.OldTenantID(ctx)
	case engagementflow.FieldName:
		return m.OldName(ctx)
	case engagementflow.FieldPriority:
		return m.OldPriority(ctx)
	case engagementflow.FieldEnabled:
		return m.OldEnabled(ctx)
	case engagementflow.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case engagementflow.FieldConditions:
		return m.OldConditions(ctx)
	case engagementflow.FieldActions:
		return m.OldActions(ctx)
	case engagementflow.FieldAgentID:
		return m.OldAgentID(ctx)
	case engagementflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case engagementflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EngagementFlow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementFlowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case engagementflow.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case engagementflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case engagementflow.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case engagementflow.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case engagementflow.FieldTriggerType:
		v, ok := value.(engagementflow.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case engagementflow.FieldConditions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditions(v)
		return nil
	case engagementflow.FieldActions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActions(v)
		return nil
	case engagementflow.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case engagementflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case engagementflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EngagementFlow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EngagementFlowMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, engagementflow.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EngagementFlowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case engagementflow.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EngagementFlowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case engagementflow.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown EngagementFlow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EngagementFlowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(engagementflow.FieldConditions) {
		fields = append(fields, engagementflow.FieldConditions)
	}
	if m.FieldCleared(engagementflow.FieldAgentID) {
		fields = append(fields, engagementflow.FieldAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EngagementFlowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EngagementFlowMutation) ClearField(name string) error {
	switch name {
	case engagementflow.FieldConditions:
		m.ClearConditions()
		return nil
	case engagementflow.FieldAgentID:
		m.ClearAgentID()
		return nil
	}
	return fmt.Errorf("unknown EngagementFlow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EngagementFlowMutation) ResetField(name string) error {
	switch name {
	case engagementflow.FieldTenantID:
		m.ResetTenantID()
		return nil
	case engagementflow.FieldName:
		m.ResetName()
		return nil
	case engagementflow.FieldPriority:
		m.ResetPriority()
		return nil
	case engagementflow.FieldEnabled:
		m.ResetEnabled()
		return nil
	case engagementflow.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case engagementflow.FieldConditions:
		m.ResetConditions()
		return nil
	case engagementflow.FieldActions:
		m.ResetActions()
		return nil
	case engagementflow.FieldAgentID:
		m.ResetAgentID()
		return nil
	case engagementflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case engagementflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EngagementFlow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EngagementFlowMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EngagementFlowMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EngagementFlowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EngagementFlowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EngagementFlowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EngagementFlowMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EngagementFlowMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EngagementFlow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EngagementFlowMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EngagementFlow edge %s", name)
}

// LeadAnalyticsMutation represents an operation that mutates the LeadAnalytics nodes in the graph.
type LeadAnalyticsMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	tenant_id                  *string
	phone                      *string
	analysis_type              *leadanalytics.AnalysisType
	call_id                    *string
	latest_call_id             *string
	intent_level               *string
	intent_score               *int
	addintent_score            *int
	urgency_level              *string
	urgency_score              *int
	addurgency_score           *int
	budget_constraint          *string
	budget_score               *int
	addbudget_score            *int
	fit_alignment              *string
	fit_score                  *int
	addfit_score               *int
	engagement_health          *string
	engagement_score           *int
	addengagement_score        *int
	total_score                *int
	addtotal_score             *int
	lead_status_tag            *leadanalytics.LeadStatusTag
	extracted_name             *string
	extracted_email            *string
	extracted_company          *string
	smart_notification         *string
	cta_pricing_clicked        *bool
	cta_demo_clicked           *bool
	cta_followup_clicked       *bool
	cta_sample_clicked         *bool
	cta_escalated_to_human     *bool
	demo_book_datetime         *time.Time
	reasoning                  *map[string]interface{}
	previous_calls_analyzed    *int
	addprevious_calls_analyzed *int
	analysis_timestamp         *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*LeadAnalytics, error)
	predicates                 []predicate.LeadAnalytics
}

var _ ent.Mutation = (*LeadAnalyticsMutation)(nil)

// leadanalyticsOption allows management of the mutation configuration using functional options.
type leadanalyticsOption func(*LeadAnalyticsMutation)

// newLeadAnalyticsMutation creates new mutation for the LeadAnalytics entity.
func newLeadAnalyticsMutation(c config, op Op, opts ...leadanalyticsOption) *LeadAnalyticsMutation {
	m := &LeadAnalyticsMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadAnalytics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadAnalyticsID sets the ID field of the mutation.
func withLeadAnalyticsID(id string) leadanalyticsOption {
	return func(m *LeadAnalyticsMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadAnalytics
		)
		m.oldValue = func(ctx context.Context) (*LeadAnalytics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadAnalytics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadAnalytics sets the old LeadAnalytics of the mutation.
func withLeadAnalytics(node *LeadAnalytics) leadanalyticsOption {
	return func(m *LeadAnalyticsMutation) {
		m.oldValue = func(context.Context) (*LeadAnalytics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadAnalyticsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadAnalyticsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LeadAnalytics entities.
func (m *LeadAnalyticsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadAnalyticsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadAnalyticsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadAnalytics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *LeadAnalyticsMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *LeadAnalyticsMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *LeadAnalyticsMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPhone sets the "phone" field.
func (m *LeadAnalyticsMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadAnalyticsMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadAnalyticsMutation) ResetPhone() {
	m.phone = nil
}

// SetAnalysisType sets the "analysis_type" field.
func (m *LeadAnalyticsMutation) SetAnalysisType(lt leadanalytics.AnalysisType) {
	m.analysis_type = &lt
}

// AnalysisType returns the value of the "analysis_type" field in the mutation.
func (m *LeadAnalyticsMutation) AnalysisType() (r leadanalytics.AnalysisType, exists bool) {
	v := m.analysis_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisType returns the old "analysis_type" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldAnalysisType(ctx context.Context) (v leadanalytics.AnalysisType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisType: %w", err)
	}
	return oldValue.AnalysisType, nil
}

// ResetAnalysisType resets all changes to the "analysis_type" field.
func (m *LeadAnalyticsMutation) ResetAnalysisType() {
	m.analysis_type = nil
}

// SetCallID sets the "call_id" field.
func (m *LeadAnalyticsMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *LeadAnalyticsMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ClearCallID clears the value of the "call_id" field.
func (m *LeadAnalyticsMutation) ClearCallID() {
	m.call_id = nil
	m.clearedFields[leadanalytics.FieldCallID] = struct{}{}
}

// CallIDCleared returns if the "call_id" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) CallIDCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldCallID]
	return ok
}

// ResetCallID resets all changes to the "call_id" field.
func (m *LeadAnalyticsMutation) ResetCallID() {
	m.call_id = nil
	delete(m.clearedFields, leadanalytics.FieldCallID)
}

// SetLatestCallID sets the "latest_call_id" field.
func (m *LeadAnalyticsMutation) SetLatestCallID(s string) {
	m.latest_call_id = &s
}

// LatestCallID returns the value of the "latest_call_id" field in the mutation.
func (m *LeadAnalyticsMutation) LatestCallID() (r string, exists bool) {
	v := m.latest_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestCallID returns the old "latest_call_id" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldLatestCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestCallID: %w", err)
	}
	return oldValue.LatestCallID, nil
}

// ClearLatestCallID clears the value of the "latest_call_id" field.
func (m *LeadAnalyticsMutation) ClearLatestCallID() {
	m.latest_call_id = nil
	m.clearedFields[leadanalytics.FieldLatestCallID] = struct{}{}
}

// LatestCallIDCleared returns if the "latest_call_id" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) LatestCallIDCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldLatestCallID]
	return ok
}

// ResetLatestCallID resets all changes to the "latest_call_id" field.
func (m *LeadAnalyticsMutation) ResetLatestCallID() {
	m.latest_call_id = nil
	delete(m.clearedFields, leadanalytics.FieldLatestCallID)
}

// SetIntentLevel sets the "intent_level" field.
func (m *LeadAnalyticsMutation) SetIntentLevel(s string) {
	m.intent_level = &s
}

// IntentLevel returns the value of the "intent_level" field in the mutation.
func (m *LeadAnalyticsMutation) IntentLevel() (r string, exists bool) {
	v := m.intent_level
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentLevel returns the old "intent_level" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldIntentLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentLevel: %w", err)
	}
	return oldValue.IntentLevel, nil
}

// ClearIntentLevel clears the value of the "intent_level" field.
func (m *LeadAnalyticsMutation) ClearIntentLevel() {
	m.intent_level = nil
	m.clearedFields[leadanalytics.FieldIntentLevel] = struct{}{}
}

// IntentLevelCleared returns if the "intent_level" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) IntentLevelCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldIntentLevel]
	return ok
}

// ResetIntentLevel resets all changes to the "intent_level" field.
func (m *LeadAnalyticsMutation) ResetIntentLevel() {
	m.intent_level = nil
	delete(m.clearedFields, leadanalytics.FieldIntentLevel)
}

// SetIntentScore sets the "intent_score" field.
func (m *LeadAnalyticsMutation) SetIntentScore(i int) {
	m.intent_score = &i
	m.addintent_score = nil
}

// IntentScore returns the value of the "intent_score" field in the mutation.
func (m *LeadAnalyticsMutation) IntentScore() (r int, exists bool) {
	v := m.intent_score
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentScore returns the old "intent_score" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldIntentScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentScore: %w", err)
	}
	return oldValue.IntentScore, nil
}

// AddIntentScore adds i to the "intent_score" field.
func (m *LeadAnalyticsMutation) AddIntentScore(i int) {
	if m.addintent_score != nil {
		*m.addintent_score += i
	} else {
		m.addintent_score = &i
	}
}

// AddedIntentScore returns the value that was added to the "intent_score" field in this mutation.
func (m *LeadAnalyticsMutation) AddedIntentScore() (r int, exists bool) {
	v := m.addintent_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntentScore resets all changes to the "intent_score" field.
func (m *LeadAnalyticsMutation) ResetIntentScore() {
	m.intent_score = nil
	m.addintent_score = nil
}

// SetUrgencyLevel sets the "urgency_level" field.
func (m *LeadAnalyticsMutation) SetUrgencyLevel(s string) {
	m.urgency_level = &s
}

// UrgencyLevel returns the value of the "urgency_level" field in the mutation.
func (m *LeadAnalyticsMutation) UrgencyLevel() (r string, exists bool) {
	v := m.urgency_level
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgencyLevel returns the old "urgency_level" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldUrgencyLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgencyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgencyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgencyLevel: %w", err)
	}
	return oldValue.UrgencyLevel, nil
}

// ClearUrgencyLevel clears the value of the "urgency_level" field.
func (m *LeadAnalyticsMutation) ClearUrgencyLevel() {
	m.urgency_level = nil
	m.clearedFields[leadanalytics.FieldUrgencyLevel] = struct{}{}
}

// UrgencyLevelCleared returns if the "urgency_level" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) UrgencyLevelCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldUrgencyLevel]
	return ok
}

// ResetUrgencyLevel resets all changes to the "urgency_level" field.
func (m *LeadAnalyticsMutation) ResetUrgencyLevel() {
	m.urgency_level = nil
	delete(m.clearedFields, leadanalytics.FieldUrgencyLevel)
}

// SetUrgencyScore sets the "urgency_score" field.
func (m *LeadAnalyticsMutation) SetUrgencyScore(i int) {
	m.urgency_score = &i
	m.addurgency_score = nil
}

// UrgencyScore returns the value of the "urgency_score" field in the mutation.
func (m *LeadAnalyticsMutation) UrgencyScore() (r int, exists bool) {
	v := m.urgency_score
	if v == nil {
		return
	}
	return *v, true
}

// OldUrgencyScore returns the old "urgency_score" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldUrgencyScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUrgencyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUrgencyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUrgencyScore: %w", err)
	}
	return oldValue.UrgencyScore, nil
}

// AddUrgencyScore adds i to the "urgency_score" field.
func (m *LeadAnalyticsMutation) AddUrgencyScore(i int) {
	if m.addurgency_score != nil {
		*m.addurgency_score += i
	} else {
		m.addurgency_score = &i
	}
}

// AddedUrgencyScore returns the value that was added to the "urgency_score" field in this mutation.
func (m *LeadAnalyticsMutation) AddedUrgencyScore() (r int, exists bool) {
	v := m.addurgency_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetUrgencyScore resets all changes to the "urgency_score" field.
func (m *LeadAnalyticsMutation) ResetUrgencyScore() {
	m.urgency_score = nil
	m.addurgency_score = nil
}

// SetBudgetConstraint sets the "budget_constraint" field.
func (m *LeadAnalyticsMutation) SetBudgetConstraint(s string) {
	m.budget_constraint = &s
}

// BudgetConstraint returns the value of the "budget_constraint" field in the mutation.
func (m *LeadAnalyticsMutation) BudgetConstraint() (r string, exists bool) {
	v := m.budget_constraint
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetConstraint returns the old "budget_constraint" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldBudgetConstraint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetConstraint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetConstraint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetConstraint: %w", err)
	}
	return oldValue.BudgetConstraint, nil
}

// ClearBudgetConstraint clears the value of the "budget_constraint" field.
func (m *LeadAnalyticsMutation) ClearBudgetConstraint() {
	m.budget_constraint = nil
	m.clearedFields[leadanalytics.FieldBudgetConstraint] = struct{}{}
}

// BudgetConstraintCleared returns if the "budget_constraint" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) BudgetConstraintCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldBudgetConstraint]
	return ok
}

// ResetBudgetConstraint resets all changes to the "budget_constraint" field.
func (m *LeadAnalyticsMutation) ResetBudgetConstraint() {
	m.budget_constraint = nil
	delete(m.clearedFields, leadanalytics.FieldBudgetConstraint)
}

// SetBudgetScore sets the "budget_score" field.
func (m *LeadAnalyticsMutation) SetBudgetScore(i int) {
	m.budget_score = &i
	m.addbudget_score = nil
}

// BudgetScore returns the value of the "budget_score" field in the mutation.
func (m *LeadAnalyticsMutation) BudgetScore() (r int, exists bool) {
	v := m.budget_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetScore returns the old "budget_score" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldBudgetScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetScore: %w", err)
	}
	return oldValue.BudgetScore, nil
}

// AddBudgetScore adds i to the "budget_score" field.
func (m *LeadAnalyticsMutation) AddBudgetScore(i int) {
	if m.addbudget_score != nil {
		*m.addbudget_score += i
	} else {
		m.addbudget_score = &i
	}
}

// AddedBudgetScore returns the value that was added to the "budget_score" field in this mutation.
func (m *LeadAnalyticsMutation) AddedBudgetScore() (r int, exists bool) {
	v := m.addbudget_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudgetScore resets all changes to the "budget_score" field.
func (m *LeadAnalyticsMutation) ResetBudgetScore() {
	m.budget_score = nil
	m.addbudget_score = nil
}

// SetFitAlignment sets the "fit_alignment" field.
func (m *LeadAnalyticsMutation) SetFitAlignment(s string) {
	m.fit_alignment = &s
}

// FitAlignment returns the value of the "fit_alignment" field in the mutation.
func (m *LeadAnalyticsMutation) FitAlignment() (r string, exists bool) {
	v := m.fit_alignment
	if v == nil {
		return
	}
	return *v, true
}

// OldFitAlignment returns the old "fit_alignment" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldFitAlignment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFitAlignment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFitAlignment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFitAlignment: %w", err)
	}
	return oldValue.FitAlignment, nil
}

// ClearFitAlignment clears the value of the "fit_alignment" field.
func (m *LeadAnalyticsMutation) ClearFitAlignment() {
	m.fit_alignment = nil
	m.clearedFields[leadanalytics.FieldFitAlignment] = struct{}{}
}

// FitAlignmentCleared returns if the "fit_alignment" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) FitAlignmentCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldFitAlignment]
	return ok
}

// ResetFitAlignment resets all changes to the "fit_alignment" field.
func (m *LeadAnalyticsMutation) ResetFitAlignment() {
	m.fit_alignment = nil
	delete(m.clearedFields, leadanalytics.FieldFitAlignment)
}

// SetFitScore sets the "fit_score" field.
func (m *LeadAnalyticsMutation) SetFitScore(i int) {
	m.fit_score = &i
	m.addfit_score = nil
}

// FitScore returns the value of the "fit_score" field in the mutation.
func (m *LeadAnalyticsMutation) FitScore() (r int, exists bool) {
	v := m.fit_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFitScore returns the old "fit_score" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldFitScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFitScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFitScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFitScore: %w", err)
	}
	return oldValue.FitScore, nil
}

// AddFitScore adds i to the "fit_score" field.
func (m *LeadAnalyticsMutation) AddFitScore(i int) {
	if m.addfit_score != nil {
		*m.addfit_score += i
	} else {
		m.addfit_score = &i
	}
}

// AddedFitScore returns the value that was added to the "fit_score" field in this mutation.
func (m *LeadAnalyticsMutation) AddedFitScore() (r int, exists bool) {
	v := m.addfit_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFitScore resets all changes to the "fit_score" field.
func (m *LeadAnalyticsMutation) ResetFitScore() {
	m.fit_score = nil
	m.addfit_score = nil
}

// SetEngagementHealth sets the "engagement_health" field.
func (m *LeadAnalyticsMutation) SetEngagementHealth(s string) {
	m.engagement_health = &s
}

// EngagementHealth returns the value of the "engagement_health" field in the mutation.
func (m *LeadAnalyticsMutation) EngagementHealth() (r string, exists bool) {
	v := m.engagement_health
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementHealth returns the old "engagement_health" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldEngagementHealth(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementHealth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementHealth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementHealth: %w", err)
	}
	return oldValue.EngagementHealth, nil
}

// ClearEngagementHealth clears the value of the "engagement_health" field.
func (m *LeadAnalyticsMutation) ClearEngagementHealth() {
	m.engagement_health = nil
	m.clearedFields[leadanalytics.FieldEngagementHealth] = struct{}{}
}

// EngagementHealthCleared returns if the "engagement_health" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) EngagementHealthCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldEngagementHealth]
	return ok
}

// ResetEngagementHealth resets all changes to the "engagement_health" field.
func (m *LeadAnalyticsMutation) ResetEngagementHealth() {
	m.engagement_health = nil
	delete(m.clearedFields, leadanalytics.FieldEngagementHealth)
}

// SetEngagementScore sets the "engagement_score" field.
func (m *LeadAnalyticsMutation) SetEngagementScore(i int) {
	m.engagement_score = &i
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *LeadAnalyticsMutation) EngagementScore() (r int, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldEngagementScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds i to the "engagement_score" field.
func (m *LeadAnalyticsMutation) AddEngagementScore(i int) {
	if m.addengagement_score != nil {
		*m.addengagement_score += i
	} else {
		m.addengagement_score = &i
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *LeadAnalyticsMutation) AddedEngagementScore() (r int, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *LeadAnalyticsMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetTotalScore sets the "total_score" field.
func (m *LeadAnalyticsMutation) SetTotalScore(i int) {
	m.total_score = &i
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *LeadAnalyticsMutation) TotalScore() (r int, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldTotalScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds i to the "total_score" field.
func (m *LeadAnalyticsMutation) AddTotalScore(i int) {
	if m.addtotal_score != nil {
		*m.addtotal_score += i
	} else {
		m.addtotal_score = &i
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *LeadAnalyticsMutation) AddedTotalScore() (r int, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *LeadAnalyticsMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
}

// SetLeadStatusTag sets the "lead_status_tag" field.
func (m *LeadAnalyticsMutation) SetLeadStatusTag(lst leadanalytics.LeadStatusTag) {
	m.lead_status_tag = &lst
}

// LeadStatusTag returns the value of the "lead_status_tag" field in the mutation.
func (m *LeadAnalyticsMutation) LeadStatusTag() (r leadanalytics.LeadStatusTag, exists bool) {
	v := m.lead_status_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadStatusTag returns the old "lead_status_tag" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldLeadStatusTag(ctx context.Context) (v leadanalytics.LeadStatusTag, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadStatusTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadStatusTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadStatusTag: %w", err)
	}
	return oldValue.LeadStatusTag, nil
}

// ClearLeadStatusTag clears the value of the "lead_status_tag" field.
func (m *LeadAnalyticsMutation) ClearLeadStatusTag() {
	m.lead_status_tag = nil
	m.clearedFields[leadanalytics.FieldLeadStatusTag] = struct{}{}
}

// LeadStatusTagCleared returns if the "lead_status_tag" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) LeadStatusTagCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldLeadStatusTag]
	return ok
}

// ResetLeadStatusTag resets all changes to the "lead_status_tag" field.
func (m *LeadAnalyticsMutation) ResetLeadStatusTag() {
	m.lead_status_tag = nil
	delete(m.clearedFields, leadanalytics.FieldLeadStatusTag)
}

// SetExtractedName sets the "extracted_name" field.
func (m *LeadAnalyticsMutation) SetExtractedName(s string) {
	m.extracted_name = &s
}

// ExtractedName returns the value of the "extracted_name" field in the mutation.
func (m *LeadAnalyticsMutation) ExtractedName() (r string, exists bool) {
	v := m.extracted_name
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedName returns the old "extracted_name" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldExtractedName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedName: %w", err)
	}
	return oldValue.ExtractedName, nil
}

// ClearExtractedName clears the value of the "extracted_name" field.
func (m *LeadAnalyticsMutation) ClearExtractedName() {
	m.extracted_name = nil
	m.clearedFields[leadanalytics.FieldExtractedName] = struct{}{}
}

// ExtractedNameCleared returns if the "extracted_name" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) ExtractedNameCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldExtractedName]
	return ok
}

// ResetExtractedName resets all changes to the "extracted_name" field.
func (m *LeadAnalyticsMutation) ResetExtractedName() {
	m.extracted_name = nil
	delete(m.clearedFields, leadanalytics.FieldExtractedName)
}

// SetExtractedEmail sets the "extracted_email" field.
func (m *LeadAnalyticsMutation) SetExtractedEmail(s string) {
	m.extracted_email = &s
}

// ExtractedEmail returns the value of the "extracted_email" field in the mutation.
func (m *LeadAnalyticsMutation) ExtractedEmail() (r string, exists bool) {
	v := m.extracted_email
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedEmail returns the old "extracted_email" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldExtractedEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedEmail: %w", err)
	}
	return oldValue.ExtractedEmail, nil
}

// ClearExtractedEmail clears the value of the "extracted_email" field.
func (m *LeadAnalyticsMutation) ClearExtractedEmail() {
	m.extracted_email = nil
	m.clearedFields[leadanalytics.FieldExtractedEmail] = struct{}{}
}

// ExtractedEmailCleared returns if the "extracted_email" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) ExtractedEmailCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldExtractedEmail]
	return ok
}

// ResetExtractedEmail resets all changes to the "extracted_email" field.
func (m *LeadAnalyticsMutation) ResetExtractedEmail() {
	m.extracted_email = nil
	delete(m.clearedFields, leadanalytics.FieldExtractedEmail)
}

// SetExtractedCompany sets the "extracted_company" field.
func (m *LeadAnalyticsMutation) SetExtractedCompany(s string) {
	m.extracted_company = &s
}

// ExtractedCompany returns the value of the "extracted_company" field in the mutation.
func (m *LeadAnalyticsMutation) ExtractedCompany() (r string, exists bool) {
	v := m.extracted_company
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedCompany returns the old "extracted_company" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldExtractedCompany(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedCompany: %w", err)
	}
	return oldValue.ExtractedCompany, nil
}

// ClearExtractedCompany clears the value of the "extracted_company" field.
func (m *LeadAnalyticsMutation) ClearExtractedCompany() {
	m.extracted_company = nil
	m.clearedFields[leadanalytics.FieldExtractedCompany] = struct{}{}
}

// ExtractedCompanyCleared returns if the "extracted_company" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) ExtractedCompanyCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldExtractedCompany]
	return ok
}

// ResetExtractedCompany resets all changes to the "extracted_company" field.
func (m *LeadAnalyticsMutation) ResetExtractedCompany() {
	m.extracted_company = nil
	delete(m.clearedFields, leadanalytics.FieldExtractedCompany)
}

// SetSmartNotification sets the "smart_notification" field.
func (m *LeadAnalyticsMutation) SetSmartNotification(s string) {
	m.smart_notification = &s
}

// SmartNotification returns the value of the "smart_notification" field in the mutation.
func (m *LeadAnalyticsMutation) SmartNotification() (r string, exists bool) {
	v := m.smart_notification
	if v == nil {
		return
	}
	return *v, true
}

// OldSmartNotification returns the old "smart_notification" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldSmartNotification(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSmartNotification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSmartNotification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSmartNotification: %w", err)
	}
	return oldValue.SmartNotification, nil
}

// ClearSmartNotification clears the value of the "smart_notification" field.
func (m *LeadAnalyticsMutation) ClearSmartNotification() {
	m.smart_notification = nil
	m.clearedFields[leadanalytics.FieldSmartNotification] = struct{}{}
}

// SmartNotificationCleared returns if the "smart_notification" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) SmartNotificationCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldSmartNotification]
	return ok
}

// ResetSmartNotification resets all changes to the "smart_notification" field.
func (m *LeadAnalyticsMutation) ResetSmartNotification() {
	m.smart_notification = nil
	delete(m.clearedFields, leadanalytics.FieldSmartNotification)
}

// SetCtaPricingClicked sets the "cta_pricing_clicked" field.
func (m *LeadAnalyticsMutation) SetCtaPricingClicked(b bool) {
	m.cta_pricing_clicked = &b
}

// CtaPricingClicked returns the value of the "cta_pricing_clicked" field in the mutation.
func (m *LeadAnalyticsMutation) CtaPricingClicked() (r bool, exists bool) {
	v := m.cta_pricing_clicked
	if v == nil {
		return
	}
	return *v, true
}

// OldCtaPricingClicked returns the old "cta_pricing_clicked" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldCtaPricingClicked(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtaPricingClicked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtaPricingClicked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtaPricingClicked: %w", err)
	}
	return oldValue.CtaPricingClicked, nil
}

// ClearCtaPricingClicked clears the value of the "cta_pricing_clicked" field.
func (m *LeadAnalyticsMutation) ClearCtaPricingClicked() {
	m.cta_pricing_clicked = nil
	m.clearedFields[leadanalytics.FieldCtaPricingClicked] = struct{}{}
}

// CtaPricingClickedCleared returns if the "cta_pricing_clicked" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) CtaPricingClickedCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldCtaPricingClicked]
	return ok
}

// ResetCtaPricingClicked resets all changes to the "cta_pricing_clicked" field.
func (m *LeadAnalyticsMutation) ResetCtaPricingClicked() {
	m.cta_pricing_clicked = nil
	delete(m.clearedFields, leadanalytics.FieldCtaPricingClicked)
}

// SetCtaDemoClicked sets the "cta_demo_clicked" field.
func (m *LeadAnalyticsMutation) SetCtaDemoClicked(b bool) {
	m.cta_demo_clicked = &b
}

// CtaDemoClicked returns the value of the "cta_demo_clicked" field in the mutation.
func (m *LeadAnalyticsMutation) CtaDemoClicked() (r bool, exists bool) {
	v := m.cta_demo_clicked
	if v == nil {
		return
	}
	return *v, true
}

// OldCtaDemoClicked returns the old "cta_demo_clicked" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldCtaDemoClicked(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtaDemoClicked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtaDemoClicked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtaDemoClicked: %w", err)
	}
	return oldValue.CtaDemoClicked, nil
}

// ClearCtaDemoClicked clears the value of the "cta_demo_clicked" field.
func (m *LeadAnalyticsMutation) ClearCtaDemoClicked() {
	m.cta_demo_clicked = nil
	m.clearedFields[leadanalytics.FieldCtaDemoClicked] = struct{}{}
}

// CtaDemoClickedCleared returns if the "cta_demo_clicked" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) CtaDemoClickedCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldCtaDemoClicked]
	return ok
}

// ResetCtaDemoClicked resets all changes to the "cta_demo_clicked" field.
func (m *LeadAnalyticsMutation) ResetCtaDemoClicked() {
	m.cta_demo_clicked = nil
	delete(m.clearedFields, leadanalytics.FieldCtaDemoClicked)
}

// SetCtaFollowupClicked sets the "cta_followup_clicked" field.
func (m *LeadAnalyticsMutation) SetCtaFollowupClicked(b bool) {
	m.cta_followup_clicked = &b
}

// CtaFollowupClicked returns the value of the "cta_followup_clicked" field in the mutation.
func (m *LeadAnalyticsMutation) CtaFollowupClicked() (r bool, exists bool) {
	v := m.cta_followup_clicked
	if v == nil {
		return
	}
	return *v, true
}

// OldCtaFollowupClicked returns the old "cta_followup_clicked" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldCtaFollowupClicked(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtaFollowupClicked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtaFollowupClicked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtaFollowupClicked: %w", err)
	}
	return oldValue.CtaFollowupClicked, nil
}

// ClearCtaFollowupClicked clears the value of the "cta_followup_clicked" field.
func (m *LeadAnalyticsMutation) ClearCtaFollowupClicked() {
	m.cta_followup_clicked = nil
	m.clearedFields[leadanalytics.FieldCtaFollowupClicked] = struct{}{}
}

// CtaFollowupClickedCleared returns if the "cta_followup_clicked" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) CtaFollowupClickedCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldCtaFollowupClicked]
	return ok
}

// ResetCtaFollowupClicked resets all changes to the "cta_followup_clicked" field.
func (m *LeadAnalyticsMutation) ResetCtaFollowupClicked() {
	m.cta_followup_clicked = nil
	delete(m.clearedFields, leadanalytics.FieldCtaFollowupClicked)
}

// SetCtaSampleClicked sets the "cta_sample_clicked" field.
func (m *LeadAnalyticsMutation) SetCtaSampleClicked(b bool) {
	m.cta_sample_clicked = &b
}

// CtaSampleClicked returns the value of the "cta_sample_clicked" field in the mutation.
func (m *LeadAnalyticsMutation) CtaSampleClicked() (r bool, exists bool) {
	v := m.cta_sample_clicked
	if v == nil {
		return
	}
	return *v, true
}

// OldCtaSampleClicked returns the old "cta_sample_clicked" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldCtaSampleClicked(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtaSampleClicked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtaSampleClicked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtaSampleClicked: %w", err)
	}
	return oldValue.CtaSampleClicked, nil
}

// ClearCtaSampleClicked clears the value of the "cta_sample_clicked" field.
func (m *LeadAnalyticsMutation) ClearCtaSampleClicked() {
	m.cta_sample_clicked = nil
	m.clearedFields[leadanalytics.FieldCtaSampleClicked] = struct{}{}
}

// CtaSampleClickedCleared returns if the "cta_sample_clicked" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) CtaSampleClickedCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldCtaSampleClicked]
	return ok
}

// ResetCtaSampleClicked resets all changes to the "cta_sample_clicked" field.
func (m *LeadAnalyticsMutation) ResetCtaSampleClicked() {
	m.cta_sample_clicked = nil
	delete(m.clearedFields, leadanalytics.FieldCtaSampleClicked)
}

// SetCtaEscalatedToHuman sets the "cta_escalated_to_human" field.
func (m *LeadAnalyticsMutation) SetCtaEscalatedToHuman(b bool) {
	m.cta_escalated_to_human = &b
}

// CtaEscalatedToHuman returns the value of the "cta_escalated_to_human" field in the mutation.
func (m *LeadAnalyticsMutation) CtaEscalatedToHuman() (r bool, exists bool) {
	v := m.cta_escalated_to_human
	if v == nil {
		return
	}
	return *v, true
}

// OldCtaEscalatedToHuman returns the old "cta_escalated_to_human" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldCtaEscalatedToHuman(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtaEscalatedToHuman is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtaEscalatedToHuman requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtaEscalatedToHuman: %w", err)
	}
	return oldValue.CtaEscalatedToHuman, nil
}

// ClearCtaEscalatedToHuman clears the value of the "cta_escalated_to_human" field.
func (m *LeadAnalyticsMutation) ClearCtaEscalatedToHuman() {
	m.cta_escalated_to_human = nil
	m.clearedFields[leadanalytics.FieldCtaEscalatedToHuman] = struct{}{}
}

// CtaEscalatedToHumanCleared returns if the "cta_escalated_to_human" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) CtaEscalatedToHumanCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldCtaEscalatedToHuman]
	return ok
}

// ResetCtaEscalatedToHuman resets all changes to the "cta_escalated_to_human" field.
func (m *LeadAnalyticsMutation) ResetCtaEscalatedToHuman() {
	m.cta_escalated_to_human = nil
	delete(m.clearedFields, leadanalytics.FieldCtaEscalatedToHuman)
}

// SetDemoBookDatetime sets the "demo_book_datetime" field.
func (m *LeadAnalyticsMutation) SetDemoBookDatetime(t time.Time) {
	m.demo_book_datetime = &t
}

// DemoBookDatetime returns the value of the "demo_book_datetime" field in the mutation.
func (m *LeadAnalyticsMutation) DemoBookDatetime() (r time.Time, exists bool) {
	v := m.demo_book_datetime
	if v == nil {
		return
	}
	return *v, true
}

// OldDemoBookDatetime returns the old "demo_book_datetime" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldDemoBookDatetime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDemoBookDatetime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDemoBookDatetime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDemoBookDatetime: %w", err)
	}
	return oldValue.DemoBookDatetime, nil
}

// ClearDemoBookDatetime clears the value of the "demo_book_datetime" field.
func (m *LeadAnalyticsMutation) ClearDemoBookDatetime() {
	m.demo_book_datetime = nil
	m.clearedFields[leadanalytics.FieldDemoBookDatetime] = struct{}{}
}

// DemoBookDatetimeCleared returns if the "demo_book_datetime" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) DemoBookDatetimeCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldDemoBookDatetime]
	return ok
}

// ResetDemoBookDatetime resets all changes to the "demo_book_datetime" field.
func (m *LeadAnalyticsMutation) ResetDemoBookDatetime() {
	m.demo_book_datetime = nil
	delete(m.clearedFields, leadanalytics.FieldDemoBookDatetime)
}

// SetReasoning sets the "reasoning" field.
func (m *LeadAnalyticsMutation) SetReasoning(value map[string]interface{}) {
	m.reasoning = &value
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *LeadAnalyticsMutation) Reasoning() (r map[string]interface{}, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldReasoning(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *LeadAnalyticsMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[leadanalytics.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *LeadAnalyticsMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[leadanalytics.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *LeadAnalyticsMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, leadanalytics.FieldReasoning)
}

// SetPreviousCallsAnalyzed sets the "previous_calls_analyzed" field.
func (m *LeadAnalyticsMutation) SetPreviousCallsAnalyzed(i int) {
	m.previous_calls_analyzed = &i
	m.addprevious_calls_analyzed = nil
}

// PreviousCallsAnalyzed returns the value of the "previous_calls_analyzed" field in the mutation.
func (m *LeadAnalyticsMutation) PreviousCallsAnalyzed() (r int, exists bool) {
	v := m.previous_calls_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousCallsAnalyzed returns the old "previous_calls_analyzed" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldPreviousCallsAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousCallsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousCallsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousCallsAnalyzed: %w", err)
	}
	return oldValue.PreviousCallsAnalyzed, nil
}

// AddPreviousCallsAnalyzed adds i to the "previous_calls_analyzed" field.
func (m *LeadAnalyticsMutation) AddPreviousCallsAnalyzed(i int) {
	if m.addprevious_calls_analyzed != nil {
		*m.addprevious_calls_analyzed += i
	} else {
		m.addprevious_calls_analyzed = &i
	}
}

// AddedPreviousCallsAnalyzed returns the value that was added to the "previous_calls_analyzed" field in this mutation.
func (m *LeadAnalyticsMutation) AddedPreviousCallsAnalyzed() (r int, exists bool) {
	v := m.addprevious_calls_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreviousCallsAnalyzed resets all changes to the "previous_calls_analyzed" field.
func (m *LeadAnalyticsMutation) ResetPreviousCallsAnalyzed() {
	m.previous_calls_analyzed = nil
	m.addprevious_calls_analyzed = nil
}

// SetAnalysisTimestamp sets the "analysis_timestamp" field.
func (m *LeadAnalyticsMutation) SetAnalysisTimestamp(t time.Time) {
	m.analysis_timestamp = &t
}

// AnalysisTimestamp returns the value of the "analysis_timestamp" field in the mutation.
func (m *LeadAnalyticsMutation) AnalysisTimestamp() (r time.Time, exists bool) {
	v := m.analysis_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisTimestamp returns the old "analysis_timestamp" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldAnalysisTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisTimestamp: %w", err)
	}
	return oldValue.AnalysisTimestamp, nil
}

// ResetAnalysisTimestamp resets all changes to the "analysis_timestamp" field.
func (m *LeadAnalyticsMutation) ResetAnalysisTimestamp() {
	m.analysis_timestamp = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadAnalyticsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadAnalyticsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadAnalyticsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadAnalyticsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadAnalyticsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LeadAnalytics entity.
// If the LeadAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadAnalyticsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadAnalyticsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LeadAnalyticsMutation builder.
func (m *LeadAnalyticsMutation) Where(ps ...predicate.LeadAnalytics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadAnalyticsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadAnalyticsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadAnalytics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadAnalyticsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadAnalyticsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadAnalytics).
func (m *LeadAnalyticsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadAnalyticsMutation) Fields() []string {
	fields := make([]string, 0, 32)
	if m.tenant_id != nil {
		fields = append(fields, leadanalytics.FieldTenantID)
	}
	if m.phone != nil {
		fields = append(fields, leadanalytics.FieldPhone)
	}
	if m.analysis_type != nil {
		fields = append(fields, leadanalytics.FieldAnalysisType)
	}
	if m.call_id != nil {
		fields = append(fields, leadanalytics.FieldCallID)
	}
	if m.latest_call_id != nil {
		fields = append(fields, leadanalytics.FieldLatestCallID)
	}
	if m.intent_level != nil {
		fields = append(fields, leadanalytics.FieldIntentLevel)
	}
	if m.intent_score != nil {
		fields = append(fields, leadanalytics.FieldIntentScore)
	}
	if m.urgency_level != nil {
		fields = append(fields, leadanalytics.FieldUrgencyLevel)
	}
	if m.urgency_score != nil {
		fields = append(fields, leadanalytics.FieldUrgencyScore)
	}
	if m.budget_constraint != nil {
		fields = append(fields, leadanalytics.FieldBudgetConstraint)
	}
	if m.budget_score != nil {
		fields = append(fields, leadanalytics.FieldBudgetScore)
	}
	if m.fit_alignment != nil {
		fields = append(fields, leadanalytics.FieldFitAlignment)
	}
	if m.fit_score != nil {
		fields = append(fields, leadanalytics.FieldFitScore)
	}
	if m.engagement_health != nil {
		fields = append(fields, leadanalytics.FieldEngagementHealth)
	}
	if m.engagement_score != nil {
		fields = append(fields, leadanalytics.FieldEngagementScore)
	}
	if m.total_score != nil {
		fields = append(fields, leadanalytics.FieldTotalScore)
	}
	if m.lead_status_tag != nil {
		fields = append(fields, leadanalytics.FieldLeadStatusTag)
	}
	if m.extracted_name != nil {
		fields = append(fields, leadanalytics.FieldExtractedName)
	}
	if m.extracted_email != nil {
		fields = append(fields, leadanalytics.FieldExtractedEmail)
	}
	if m.extracted_company != nil {
		fields = append(fields, leadanalytics.FieldExtractedCompany)
	}
	if m.smart_notification != nil {
		fields = append(fields, leadanalytics.FieldSmartNotification)
	}
	if m.cta_pricing_clicked != nil {
		fields = append(fields, leadanalytics.FieldCtaPricingClicked)
	}
	if m.cta_demo_clicked != nil {
		fields = append(fields, leadanalytics.FieldCtaDemoClicked)
	}
	if m.cta_followup_clicked != nil {
		fields = append(fields, leadanalytics.FieldCtaFollowupClicked)
	}
	if m.cta_sample_clicked != nil {
		fields = append(fields, leadanalytics.FieldCtaSampleClicked)
	}
	if m.cta_escalated_to_human != nil {
		fields = append(fields, leadanalytics.FieldCtaEscalatedToHuman)
	}
	if m.demo_book_datetime != nil {
		fields = append(fields, leadanalytics.FieldDemoBookDatetime)
	}
	if m.reasoning != nil {
		fields = append(fields, leadanalytics.FieldReasoning)
	}
	if m.previous_calls_analyzed != nil {
		fields = append(fields, leadanalytics.FieldPreviousCallsAnalyzed)
	}
	if m.analysis_timestamp != nil {
		fields = append(fields, leadanalytics.FieldAnalysisTimestamp)
	}
	if m.created_at != nil {
		fields = append(fields, leadanalytics.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, leadanalytics.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadAnalyticsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadanalytics.FieldTenantID:
		return m.TenantID()
	case leadanalytics.FieldPhone:
		return m.Phone()
	case leadanalytics.FieldAnalysisType:
		return m.AnalysisType()
	case leadanalytics.FieldCallID:
		return m.CallID()
	case leadanalytics.FieldLatestCallID:
		return m.LatestCallID()
	case leadanalytics.FieldIntentLevel:
		return m.IntentLevel()
	case leadanalytics.FieldIntentScore:
		return m.IntentScore()
	case leadanalytics.FieldUrgencyLevel:
		return m.UrgencyLevel()
	case leadanalytics.FieldUrgencyScore:
		return m.UrgencyScore()
	case leadanalytics.FieldBudgetConstraint:
		return m.BudgetConstraint()
	case leadanalytics.FieldBudgetScore:
		return m.BudgetScore()
	case leadanalytics.FieldFitAlignment:
		return m.FitAlignment()
	case leadanalytics.FieldFitScore:
		return m.FitScore()
	case leadanalytics.FieldEngagementHealth:
		return m.EngagementHealth()
	case leadanalytics.FieldEngagementScore:
		return m.EngagementScore()
	case leadanalytics.FieldTotalScore:
		return m.TotalScore()
	case leadanalytics.FieldLeadStatusTag:
		return m.LeadStatusTag()
	case leadanalytics.FieldExtractedName:
		return m.ExtractedName()
	case leadanalytics.FieldExtractedEmail:
		return m.ExtractedEmail()
	case leadanalytics.FieldExtractedCompany:
		return m.ExtractedCompany()
	case leadanalytics.FieldSmartNotification:
		return m.SmartNotification()
	case leadanalytics.FieldCtaPricingClicked:
		return m.CtaPricingClicked()
	case leadanalytics.FieldCtaDemoClicked:
		return m.CtaDemoClicked()
	case leadanalytics.FieldCtaFollowupClicked:
		return m.CtaFollowupClicked()
	case leadanalytics.FieldCtaSampleClicked:
		return m.CtaSampleClicked()
	case leadanalytics.FieldCtaEscalatedToHuman:
		return m.CtaEscalatedToHuman()
	case leadanalytics.FieldDemoBookDatetime:
		return m.DemoBookDatetime()
	case leadanalytics.FieldReasoning:
		return m.Reasoning()
	case leadanalytics.FieldPreviousCallsAnalyzed:
		return m.PreviousCallsAnalyzed()
	case leadanalytics.FieldAnalysisTimestamp:
		return m.AnalysisTimestamp()
	case leadanalytics.FieldCreatedAt:
		return m.CreatedAt()
	case leadanalytics.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadAnalyticsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadanalytics.FieldTenantID:
		return m.OldTenantID(ctx)
	case leadanalytics.FieldPhone:
		return m.OldPhone(ctx)
	case leadanalytics.FieldAnalysisType:
		return m.OldAnalysisType(ctx)
	case leadanalytics.FieldCallID:
		return m.OldCallID(ctx)
	case leadanalytics.FieldLatestCallID:
		return m.OldLatestCallID(ctx)
	case leadanalytics.FieldIntentLevel:
		return m.OldIntentLevel(ctx)
	case leadanalytics.FieldIntentScore:
		return m.OldIntentScore(ctx)
	case leadanalytics.FieldUrgencyLevel:
		return m.OldUrgencyLevel(ctx)
	case leadanalytics.FieldUrgencyScore:
		return m.OldUrgencyScore(ctx)
	case leadanalytics.FieldBudgetConstraint:
		return m.OldBudgetConstraint(ctx)
	case leadanalytics.FieldBudgetScore:
		return m.OldBudgetScore(ctx)
	case leadanalytics.FieldFitAlignment:
		return m.OldFitAlignment(ctx)
	case leadanalytics.FieldFitScore:
		return m.OldFitScore(ctx)
	case leadanalytics.FieldEngagementHealth:
		return m.OldEngagementHealth(ctx)
	case leadanalytics.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case leadanalytics.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case leadanalytics.FieldLeadStatusTag:
		return m.OldLeadStatusTag(ctx)
	case leadanalytics.FieldExtractedName:
		return m.OldExtractedName(ctx)
	case leadanalytics.FieldExtractedEmail:
		return m.OldExtractedEmail(ctx)
	case leadanalytics.FieldExtractedCompany:
		return m.OldExtractedCompany(ctx)
	case leadanalytics.FieldSmartNotification:
		return m.OldSmartNotification(ctx)
	case leadanalytics.FieldCtaPricingClicked:
		return m.OldCtaPricingClicked(ctx)
	case leadanalytics.FieldCtaDemoClicked:
		return m.OldCtaDemoClicked(ctx)
	case leadanalytics.FieldCtaFollowupClicked:
		return m.OldCtaFollowupClicked(ctx)
	case leadanalytics.FieldCtaSampleClicked:
		return m.OldCtaSampleClicked(ctx)
	case leadanalytics.FieldCtaEscalatedToHuman:
		return m.OldCtaEscalatedToHuman(ctx)
	case leadanalytics.FieldDemoBookDatetime:
		return m.OldDemoBookDatetime(ctx)
	case leadanalytics.FieldReasoning:
		return m.OldReasoning(ctx)
	case leadanalytics.FieldPreviousCallsAnalyzed:
		return m.OldPreviousCallsAnalyzed(ctx)
	case leadanalytics.FieldAnalysisTimestamp:
		return m.OldAnalysisTimestamp(ctx)
	case leadanalytics.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case leadanalytics.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadAnalytics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadAnalyticsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadanalytics.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case leadanalytics.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case leadanalytics.FieldAnalysisType:
		v, ok := value.(leadanalytics.AnalysisType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisType(v)
		return nil
	case leadanalytics.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case leadanalytics.FieldLatestCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestCallID(v)
		return nil
	case leadanalytics.FieldIntentLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentLevel(v)
		return nil
	case leadanalytics.FieldIntentScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentScore(v)
		return nil
	case leadanalytics.FieldUrgencyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgencyLevel(v)
		return nil
	case leadanalytics.FieldUrgencyScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUrgencyScore(v)
		return nil
	case leadanalytics.FieldBudgetConstraint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetConstraint(v)
		return nil
	case leadanalytics.FieldBudgetScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetScore(v)
		return nil
	case leadanalytics.FieldFitAlignment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFitAlignment(v)
		return nil
	case leadanalytics.FieldFitScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFitScore(v)
		return nil
	case leadanalytics.FieldEngagementHealth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementHealth(v)
		return nil
	case leadanalytics.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case leadanalytics.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case leadanalytics.FieldLeadStatusTag:
		v, ok := value.(leadanalytics.LeadStatusTag)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadStatusTag(v)
		return nil
	case leadanalytics.FieldExtractedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedName(v)
		return nil
	case leadanalytics.FieldExtractedEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedEmail(v)
		return nil
	case leadanalytics.FieldExtractedCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedCompany(v)
		return nil
	case leadanalytics.FieldSmartNotification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSmartNotification(v)
		return nil
	case leadanalytics.FieldCtaPricingClicked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtaPricingClicked(v)
		return nil
	case leadanalytics.FieldCtaDemoClicked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtaDemoClicked(v)
		return nil
	case leadanalytics.FieldCtaFollowupClicked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtaFollowupClicked(v)
		return nil
	case leadanalytics.FieldCtaSampleClicked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtaSampleClicked(v)
		return nil
	case leadanalytics.FieldCtaEscalatedToHuman:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtaEscalatedToHuman(v)
		return nil
	case leadanalytics.FieldDemoBookDatetime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDemoBookDatetime(v)
		return nil
	case leadanalytics.FieldReasoning:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case leadanalytics.FieldPreviousCallsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousCallsAnalyzed(v)
		return nil
	case leadanalytics.FieldAnalysisTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisTimestamp(v)
		return nil
	case leadanalytics.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case leadanalytics.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadAnalytics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadAnalyticsMutation) AddedFields() []string {
	var fields []string
	if m.addintent_score != nil {
		fields = append(fields, leadanalytics.FieldIntentScore)
	}
	if m.addurgency_score != nil {
		fields = append(fields, leadanalytics.FieldUrgencyScore)
	}
	if m.addbudget_score != nil {
		fields = append(fields, leadanalytics.FieldBudgetScore)
	}
	if m.addfit_score != nil {
		fields = append(fields, leadanalytics.FieldFitScore)
	}
	if m.addengagement_score != nil {
		fields = append(fields, leadanalytics.FieldEngagementScore)
	}
	if m.addtotal_score != nil {
		fields = append(fields, leadanalytics.FieldTotalScore)
	}
	if m.addprevious_calls_analyzed != nil {
		fields = append(fields, leadanalytics.FieldPreviousCallsAnalyzed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadAnalyticsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case leadanalytics.FieldIntentScore:
		return m.AddedIntentScore()
	case leadanalytics.FieldUrgencyScore:
		return m.AddedUrgencyScore()
	case leadanalytics.FieldBudgetScore:
		return m.AddedBudgetScore()
	case leadanalytics.FieldFitScore:
		return m.AddedFitScore()
	case leadanalytics.FieldEngagementScore:
		return m.AddedEngagementScore()
	case leadanalytics.FieldTotalScore:
		return m.AddedTotalScore()
	case leadanalytics.FieldPreviousCallsAnalyzed:
		return m.AddedPreviousCallsAnalyzed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadAnalyticsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case leadanalytics.FieldIntentScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntentScore(v)
		return nil
	case leadanalytics.FieldUrgencyScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUrgencyScore(v)
		return nil
	case leadanalytics.FieldBudgetScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetScore(v)
		return nil
	case leadanalytics.FieldFitScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFitScore(v)
		return nil
	case leadanalytics.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	case leadanalytics.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	case leadanalytics.FieldPreviousCallsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreviousCallsAnalyzed(v)
		return nil
	}
	return fmt.Errorf("unknown LeadAnalytics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadAnalyticsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leadanalytics.FieldCallID) {
		fields = append(fields, leadanalytics.FieldCallID)
	}
	if m.FieldCleared(leadanalytics.FieldLatestCallID) {
		fields = append(fields, leadanalytics.FieldLatestCallID)
	}
	if m.FieldCleared(leadanalytics.FieldIntentLevel) {
		fields = append(fields, leadanalytics.FieldIntentLevel)
	}
	if m.FieldCleared(leadanalytics.FieldUrgencyLevel) {
		fields = append(fields, leadanalytics.FieldUrgencyLevel)
	}
	if m.FieldCleared(leadanalytics.FieldBudgetConstraint) {
		fields = append(fields, leadanalytics.FieldBudgetConstraint)
	}
	if m.FieldCleared(leadanalytics.FieldFitAlignment) {
		fields = append(fields, leadanalytics.FieldFitAlignment)
	}
	if m.FieldCleared(leadanalytics.FieldEngagementHealth) {
		fields = append(fields, leadanalytics.FieldEngagementHealth)
	}
	if m.FieldCleared(leadanalytics.FieldLeadStatusTag) {
		fields = append(fields, leadanalytics.FieldLeadStatusTag)
	}
	if m.FieldCleared(leadanalytics.FieldExtractedName) {
		fields = append(fields, leadanalytics.FieldExtractedName)
	}
	if m.FieldCleared(leadanalytics.FieldExtractedEmail) {
		fields = append(fields, leadanalytics.FieldExtractedEmail)
	}
	if m.FieldCleared(leadanalytics.FieldExtractedCompany) {
		fields = append(fields, leadanalytics.FieldExtractedCompany)
	}
	if m.FieldCleared(leadanalytics.FieldSmartNotification) {
		fields = append(fields, leadanalytics.FieldSmartNotification)
	}
	if m.FieldCleared(leadanalytics.FieldCtaPricingClicked) {
		fields = append(fields, leadanalytics.FieldCtaPricingClicked)
	}
	if m.FieldCleared(leadanalytics.FieldCtaDemoClicked) {
		fields = append(fields, leadanalytics.FieldCtaDemoClicked)
	}
	if m.FieldCleared(leadanalytics.FieldCtaFollowupClicked) {
		fields = append(fields, leadanalytics.FieldCtaFollowupClicked)
	}
	if m.FieldCleared(leadanalytics.FieldCtaSampleClicked) {
		fields = append(fields, leadanalytics.FieldCtaSampleClicked)
	}
	if m.FieldCleared(leadanalytics.FieldCtaEscalatedToHuman) {
		fields = append(fields, leadanalytics.FieldCtaEscalatedToHuman)
	}
	if m.FieldCleared(leadanalytics.FieldDemoBookDatetime) {
		fields = append(fields, leadanalytics.FieldDemoBookDatetime)
	}
	if m.FieldCleared(leadanalytics.FieldReasoning) {
		fields = append(fields, leadanalytics.FieldReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadAnalyticsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadAnalyticsMutation) ClearField(name string) error {
	switch name {
	case leadanalytics.FieldCallID:
		m.ClearCallID()
		return nil
	case leadanalytics.FieldLatestCallID:
		m.ClearLatestCallID()
		return nil
	case leadanalytics.FieldIntentLevel:
		m.ClearIntentLevel()
		return nil
	case leadanalytics.FieldUrgencyLevel:
		m.ClearUrgencyLevel()
		return nil
	case leadanalytics.FieldBudgetConstraint:
		m.ClearBudgetConstraint()
		return nil
	case leadanalytics.FieldFitAlignment:
		m.ClearFitAlignment()
		return nil
	case leadanalytics.FieldEngagementHealth:
		m.ClearEngagementHealth()
		return nil
	case leadanalytics.FieldLeadStatusTag:
		m.ClearLeadStatusTag()
		return nil
	case leadanalytics.FieldExtractedName:
		m.ClearExtractedName()
		return nil
	case leadanalytics.FieldExtractedEmail:
		m.ClearExtractedEmail()
		return nil
	case leadanalytics.FieldExtractedCompany:
		m.ClearExtractedCompany()
		return nil
	case leadanalytics.FieldSmartNotification:
		m.ClearSmartNotification()
		return nil
	case leadanalytics.FieldCtaPricingClicked:
		m.ClearCtaPricingClicked()
		return nil
	case leadanalytics.FieldCtaDemoClicked:
		m.ClearCtaDemoClicked()
		return nil
	case leadanalytics.FieldCtaFollowupClicked:
		m.ClearCtaFollowupClicked()
		return nil
	case leadanalytics.FieldCtaSampleClicked:
		m.ClearCtaSampleClicked()
		return nil
	case leadanalytics.FieldCtaEscalatedToHuman:
		m.ClearCtaEscalatedToHuman()
		return nil
	case leadanalytics.FieldDemoBookDatetime:
		m.ClearDemoBookDatetime()
		return nil
	case leadanalytics.FieldReasoning:
		m.ClearReasoning()
		return nil
	}
	return fmt.Errorf("unknown LeadAnalytics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadAnalyticsMutation) ResetField(name string) error {
	switch name {
	case leadanalytics.FieldTenantID:
		m.ResetTenantID()
		return nil
	case leadanalytics.FieldPhone:
		m.ResetPhone()
		return nil
	case leadanalytics.FieldAnalysisType:
		m.ResetAnalysisType()
		return nil
	case leadanalytics.FieldCallID:
		m.ResetCallID()
		return nil
	case leadanalytics.FieldLatestCallID:
		m.ResetLatestCallID()
		return nil
	case leadanalytics.FieldIntentLevel:
		m.ResetIntentLevel()
		return nil
	case leadanalytics.FieldIntentScore:
		m.ResetIntentScore()
		return nil
	case leadanalytics.FieldUrgencyLevel:
		m.ResetUrgencyLevel()
		return nil
	case leadanalytics.FieldUrgencyScore:
		m.ResetUrgencyScore()
		return nil
	case leadanalytics.FieldBudgetConstraint:
		m.ResetBudgetConstraint()
		return nil
	case leadanalytics.FieldBudgetScore:
		m.ResetBudgetScore()
		return nil
	case leadanalytics.FieldFitAlignment:
		m.ResetFitAlignment()
		return nil
	case leadanalytics.FieldFitScore:
		m.ResetFitScore()
		return nil
	case leadanalytics.FieldEngagementHealth:
		m.ResetEngagementHealth()
		return nil
	case leadanalytics.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case leadanalytics.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case leadanalytics.FieldLeadStatusTag:
		m.ResetLeadStatusTag()
		return nil
	case leadanalytics.FieldExtractedName:
		m.ResetExtractedName()
		return nil
	case leadanalytics.FieldExtractedEmail:
		m.ResetExtractedEmail()
		return nil
	case leadanalytics.FieldExtractedCompany:
		m.ResetExtractedCompany()
		return nil
	case leadanalytics.FieldSmartNotification:
		m.ResetSmartNotification()
		return nil
	case leadanalytics.FieldCtaPricingClicked:
		m.ResetCtaPricingClicked()
		return nil
	case leadanalytics.FieldCtaDemoClicked:
		m.ResetCtaDemoClicked()
		return nil
	case leadanalytics.FieldCtaFollowupClicked:
		m.ResetCtaFollowupClicked()
		return nil
	case leadanalytics.FieldCtaSampleClicked:
		m.ResetCtaSampleClicked()
		return nil
	case leadanalytics.FieldCtaEscalatedToHuman:
		m.ResetCtaEscalatedToHuman()
		return nil
	case leadanalytics.FieldDemoBookDatetime:
		m.ResetDemoBookDatetime()
		return nil
	case leadanalytics.FieldReasoning:
		m.ResetReasoning()
		return nil
	case leadanalytics.FieldPreviousCallsAnalyzed:
		m.ResetPreviousCallsAnalyzed()
		return nil
	case leadanalytics.FieldAnalysisTimestamp:
		m.ResetAnalysisTimestamp()
		return nil
	case leadanalytics.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case leadanalytics.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadAnalytics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadAnalyticsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadAnalyticsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadAnalyticsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadAnalyticsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadAnalyticsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadAnalyticsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadAnalyticsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LeadAnalytics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadAnalyticsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LeadAnalytics edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tenant_id              *string
	_type                  *string
	idempotency_key        *string
	status                 *notification.Status
	error_message          *string
	recipient              *string
	subject                *string
	related_campaign_id    *string
	related_transaction_id *string
	payload                *map[string]interface{}
	sent_at                *time.Time
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Notification, error)
	predicates             []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *NotificationMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *NotificationMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *NotificationMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *NotificationMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *NotificationMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *NotificationMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetStatus sets the "status" field.
func (m *NotificationMutation) SetStatus(n notification.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NotificationMutation) Status() (r notification.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldStatus(ctx context.Context) (v notification.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NotificationMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *NotificationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *NotificationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *NotificationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[notification.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *NotificationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[notification.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *NotificationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, notification.FieldErrorMessage)
}

// SetRecipient sets the "recipient" field.
func (m *NotificationMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *NotificationMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *NotificationMutation) ResetRecipient() {
	m.recipient = nil
}

// SetSubject sets the "subject" field.
func (m *NotificationMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *NotificationMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *NotificationMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[notification.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *NotificationMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[notification.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *NotificationMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, notification.FieldSubject)
}

// SetRelatedCampaignID sets the "related_campaign_id" field.
func (m *NotificationMutation) SetRelatedCampaignID(s string) {
	m.related_campaign_id = &s
}

// RelatedCampaignID returns the value of the "related_campaign_id" field in the mutation.
func (m *NotificationMutation) RelatedCampaignID() (r string, exists bool) {
	v := m.related_campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedCampaignID returns the old "related_campaign_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRelatedCampaignID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedCampaignID: %w", err)
	}
	return oldValue.RelatedCampaignID, nil
}

// ClearRelatedCampaignID clears the value of the "related_campaign_id" field.
func (m *NotificationMutation) ClearRelatedCampaignID() {
	m.related_campaign_id = nil
	m.clearedFields[notification.FieldRelatedCampaignID] = struct{}{}
}

// RelatedCampaignIDCleared returns if the "related_campaign_id" field was cleared in this mutation.
func (m *NotificationMutation) RelatedCampaignIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldRelatedCampaignID]
	return ok
}

// ResetRelatedCampaignID resets all changes to the "related_campaign_id" field.
func (m *NotificationMutation) ResetRelatedCampaignID() {
	m.related_campaign_id = nil
	delete(m.clearedFields, notification.FieldRelatedCampaignID)
}

// SetRelatedTransactionID sets the "related_transaction_id" field.
func (m *NotificationMutation) SetRelatedTransactionID(s string) {
	m.related_transaction_id = &s
}

// RelatedTransactionID returns the value of the "related_transaction_id" field in the mutation.
func (m *NotificationMutation) RelatedTransactionID() (r string, exists bool) {
	v := m.related_transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedTransactionID returns the old "related_transaction_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRelatedTransactionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedTransactionID: %w", err)
	}
	return oldValue.RelatedTransactionID, nil
}

// ClearRelatedTransactionID clears the value of the "related_transaction_id" field.
func (m *NotificationMutation) ClearRelatedTransactionID() {
	m.related_transaction_id = nil
	m.clearedFields[notification.FieldRelatedTransactionID] = struct{}{}
}

// RelatedTransactionIDCleared returns if the "related_transaction_id" field was cleared in this mutation.
func (m *NotificationMutation) RelatedTransactionIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldRelatedTransactionID]
	return ok
}

// ResetRelatedTransactionID resets all changes to the "related_transaction_id" field.
func (m *NotificationMutation) ResetRelatedTransactionID() {
	m.related_transaction_id = nil
	delete(m.clearedFields, notification.FieldRelatedTransactionID)
}

// SetPayload sets the "payload" field.
func (m *NotificationMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *NotificationMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *NotificationMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[notification.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *NotificationMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[notification.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *NotificationMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, notification.FieldPayload)
}

// SetSentAt sets the "sent_at" field.
func (m *NotificationMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *NotificationMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *NotificationMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[notification.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *NotificationMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *NotificationMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, notification.FieldSentAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant_id != nil {
		fields = append(fields, notification.FieldTenantID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.idempotency_key != nil {
		fields = append(fields, notification.FieldIdempotencyKey)
	}
	if m.status != nil {
		fields = append(fields, notification.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, notification.FieldErrorMessage)
	}
	if m.recipient != nil {
		fields = append(fields, notification.FieldRecipient)
	}
	if m.subject != nil {
		fields = append(fields, notification.FieldSubject)
	}
	if m.related_campaign_id != nil {
		fields = append(fields, notification.FieldRelatedCampaignID)
	}
	if m.related_transaction_id != nil {
		fields = append(fields, notification.FieldRelatedTransactionID)
	}
	if m.payload != nil {
		fields = append(fields, notification.FieldPayload)
	}
	if m.sent_at != nil {
		fields = append(fields, notification.FieldSentAt)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldTenantID:
		return m.TenantID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case notification.FieldStatus:
		return m.Status()
	case notification.FieldErrorMessage:
		return m.ErrorMessage()
	case notification.FieldRecipient:
		return m.Recipient()
	case notification.FieldSubject:
		return m.Subject()
	case notification.FieldRelatedCampaignID:
		return m.RelatedCampaignID()
	case notification.FieldRelatedTransactionID:
		return m.RelatedTransactionID()
	case notification.FieldPayload:
		return m.Payload()
	case notification.FieldSentAt:
		return m.SentAt()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldTenantID:
		return m.OldTenantID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case notification.FieldStatus:
		return m.OldStatus(ctx)
	case notification.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case notification.FieldRecipient:
		return m.OldRecipient(ctx)
	case notification.FieldSubject:
		return m.OldSubject(ctx)
	case notification.FieldRelatedCampaignID:
		return m.OldRelatedCampaignID(ctx)
	case notification.FieldRelatedTransactionID:
		return m.OldRelatedTransactionID(ctx)
	case notification.FieldPayload:
		return m.OldPayload(ctx)
	case notification.FieldSentAt:
		return m.OldSentAt(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case notification.FieldStatus:
		v, ok := value.(notification.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case notification.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case notification.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case notification.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case notification.FieldRelatedCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedCampaignID(v)
		return nil
	case notification.FieldRelatedTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedTransactionID(v)
		return nil
	case notification.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case notification.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldErrorMessage) {
		fields = append(fields, notification.FieldErrorMessage)
	}
	if m.FieldCleared(notification.FieldSubject) {
		fields = append(fields, notification.FieldSubject)
	}
	if m.FieldCleared(notification.FieldRelatedCampaignID) {
		fields = append(fields, notification.FieldRelatedCampaignID)
	}
	if m.FieldCleared(notification.FieldRelatedTransactionID) {
		fields = append(fields, notification.FieldRelatedTransactionID)
	}
	if m.FieldCleared(notification.FieldPayload) {
		fields = append(fields, notification.FieldPayload)
	}
	if m.FieldCleared(notification.FieldSentAt) {
		fields = append(fields, notification.FieldSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case notification.FieldSubject:
		m.ClearSubject()
		return nil
	case notification.FieldRelatedCampaignID:
		m.ClearRelatedCampaignID()
		return nil
	case notification.FieldRelatedTransactionID:
		m.ClearRelatedTransactionID()
		return nil
	case notification.FieldPayload:
		m.ClearPayload()
		return nil
	case notification.FieldSentAt:
		m.ClearSentAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldTenantID:
		m.ResetTenantID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case notification.FieldStatus:
		m.ResetStatus()
		return nil
	case notification.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case notification.FieldRecipient:
		m.ResetRecipient()
		return nil
	case notification.FieldSubject:
		m.ResetSubject()
		return nil
	case notification.FieldRelatedCampaignID:
		m.ResetRelatedCampaignID()
		return nil
	case notification.FieldRelatedTransactionID:
		m.ResetRelatedTransactionID()
		return nil
	case notification.FieldPayload:
		m.ResetPayload()
		return nil
	case notification.FieldSentAt:
		m.ResetSentAt()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// NotificationPreferenceMutation represents an operation that mutates the NotificationPreference nodes in the graph.
type NotificationPreferenceMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	tenant_id                    *string
	low_credit_alerts            *bool
	credits_added_emails         *bool
	campaign_summary_emails      *bool
	email_verification_reminders *bool
	marketing_emails             *bool
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*NotificationPreference, error)
	predicates                   []predicate.NotificationPreference
}

var _ ent.Mutation = (*NotificationPreferenceMutation)(nil)

// notificationpreferenceOption allows management of the mutation configuration using functional options.
type notificationpreferenceOption func(*NotificationPreferenceMutation)

// newNotificationPreferenceMutation creates new mutation for the NotificationPreference entity.
func newNotificationPreferenceMutation(c config, op Op, opts ...notificationpreferenceOption) *NotificationPreferenceMutation {
	m := &NotificationPreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationPreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationPreferenceID sets the ID field of the mutation.
func withNotificationPreferenceID(id string) notificationpreferenceOption {
	return func(m *NotificationPreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationPreference
		)
		m.oldValue = func(ctx context.Context) (*NotificationPreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationPreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationPreference sets the old NotificationPreference of the mutation.
func withNotificationPreference(node *NotificationPreference) notificationpreferenceOption {
	return func(m *NotificationPreferenceMutation) {
		m.oldValue = func(context.Context) (*NotificationPreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationPreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationPreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationPreference entities.
func (m *NotificationPreferenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationPreferenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationPreferenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationPreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *NotificationPreferenceMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *NotificationPreferenceMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *NotificationPreferenceMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetLowCreditAlerts sets the "low_credit_alerts" field.
func (m *NotificationPreferenceMutation) SetLowCreditAlerts(b bool) {
	m.low_credit_alerts = &b
}

// LowCreditAlerts returns the value of the "low_credit_alerts" field in the mutation.
func (m *NotificationPreferenceMutation) LowCreditAlerts() (r bool, exists bool) {
	v := m.low_credit_alerts
	if v == nil {
		return
	}
	return *v, true
}

// OldLowCreditAlerts returns the old "low_credit_alerts" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldLowCreditAlerts(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowCreditAlerts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowCreditAlerts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowCreditAlerts: %w", err)
	}
	return oldValue.LowCreditAlerts, nil
}

// ResetLowCreditAlerts resets all changes to the "low_credit_alerts" field.
func (m *NotificationPreferenceMutation) ResetLowCreditAlerts() {
	m.low_credit_alerts = nil
}

// SetCreditsAddedEmails sets the "credits_added_emails" field.
func (m *NotificationPreferenceMutation) SetCreditsAddedEmails(b bool) {
	m.credits_added_emails = &b
}

// CreditsAddedEmails returns the value of the "credits_added_emails" field in the mutation.
func (m *NotificationPreferenceMutation) CreditsAddedEmails() (r bool, exists bool) {
	v := m.credits_added_emails
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditsAddedEmails returns the old "credits_added_emails" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldCreditsAddedEmails(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditsAddedEmails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditsAddedEmails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditsAddedEmails: %w", err)
	}
	return oldValue.CreditsAddedEmails, nil
}

// ResetCreditsAddedEmails resets all changes to the "credits_added_emails" field.
func (m *NotificationPreferenceMutation) ResetCreditsAddedEmails() {
	m.credits_added_emails = nil
}

// SetCampaignSummaryEmails sets the "campaign_summary_emails" field.
func (m *NotificationPreferenceMutation) SetCampaignSummaryEmails(b bool) {
	m.campaign_summary_emails = &b
}

// CampaignSummaryEmails returns the value of the "campaign_summary_emails" field in the mutation.
func (m *NotificationPreferenceMutation) CampaignSummaryEmails() (r bool, exists bool) {
	v := m.campaign_summary_emails
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignSummaryEmails returns the old "campaign_summary_emails" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldCampaignSummaryEmails(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignSummaryEmails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignSummaryEmails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignSummaryEmails: %w", err)
	}
	return oldValue.CampaignSummaryEmails, nil
}

// ResetCampaignSummaryEmails resets all changes to the "campaign_summary_emails" field.
func (m *NotificationPreferenceMutation) ResetCampaignSummaryEmails() {
	m.campaign_summary_emails = nil
}

// SetEmailVerificationReminders sets the "email_verification_reminders" field.
func (m *NotificationPreferenceMutation) SetEmailVerificationReminders(b bool) {
	m.email_verification_reminders = &b
}

// EmailVerificationReminders returns the value of the "email_verification_reminders" field in the mutation.
func (m *NotificationPreferenceMutation) EmailVerificationReminders() (r bool, exists bool) {
	v := m.email_verification_reminders
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerificationReminders returns the old "email_verification_reminders" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailVerificationReminders(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerificationReminders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerificationReminders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerificationReminders: %w", err)
	}
	return oldValue.EmailVerificationReminders, nil
}

// ResetEmailVerificationReminders resets all changes to the "email_verification_reminders" field.
func (m *NotificationPreferenceMutation) ResetEmailVerificationReminders() {
	m.email_verification_reminders = nil
}

// SetMarketingEmails sets the "marketing_emails" field.
func (m *NotificationPreferenceMutation) SetMarketingEmails(b bool) {
	m.marketing_emails = &b
}

// MarketingEmails returns the value of the "marketing_emails" field in the mutation.
func (m *NotificationPreferenceMutation) MarketingEmails() (r bool, exists bool) {
	v := m.marketing_emails
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketingEmails returns the old "marketing_emails" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldMarketingEmails(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketingEmails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketingEmails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketingEmails: %w", err)
	}
	return oldValue.MarketingEmails, nil
}

// ResetMarketingEmails resets all changes to the "marketing_emails" field.
func (m *NotificationPreferenceMutation) ResetMarketingEmails() {
	m.marketing_emails = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationPreferenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationPreferenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationPreferenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationPreferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationPreferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationPreferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the NotificationPreferenceMutation builder.
func (m *NotificationPreferenceMutation) Where(ps ...predicate.NotificationPreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationPreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationPreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationPreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationPreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationPreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationPreference).
func (m *NotificationPreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationPreferenceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, notificationpreference.FieldTenantID)
	}
	if m.low_credit_alerts != nil {
		fields = append(fields, notificationpreference.FieldLowCreditAlerts)
	}
	if m.credits_added_emails != nil {
		fields = append(fields, notificationpreference.FieldCreditsAddedEmails)
	}
	if m.campaign_summary_emails != nil {
		fields = append(fields, notificationpreference.FieldCampaignSummaryEmails)
	}
	if m.email_verification_reminders != nil {
		fields = append(fields, notificationpreference.FieldEmailVerificationReminders)
	}
	if m.marketing_emails != nil {
		fields = append(fields, notificationpreference.FieldMarketingEmails)
	}
	if m.created_at != nil {
		fields = append(fields, notificationpreference.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notificationpreference.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationPreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationpreference.FieldTenantID:
		return m.TenantID()
	case notificationpreference.FieldLowCreditAlerts:
		return m.LowCreditAlerts()
	case notificationpreference.FieldCreditsAddedEmails:
		return m.CreditsAddedEmails()
	case notificationpreference.FieldCampaignSummaryEmails:
		return m.CampaignSummaryEmails()
	case notificationpreference.FieldEmailVerificationReminders:
		return m.EmailVerificationReminders()
	case notificationpreference.FieldMarketingEmails:
		return m.MarketingEmails()
	case notificationpreference.FieldCreatedAt:
		return m.CreatedAt()
	case notificationpreference.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationPreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationpreference.FieldTenantID:
		return m.OldTenantID(ctx)
	case notificationpreference.FieldLowCreditAlerts:
		return m.OldLowCreditAlerts(ctx)
	case notificationpreference.FieldCreditsAddedEmails:
		return m.OldCreditsAddedEmails(ctx)
	case notificationpreference.FieldCampaignSummaryEmails:
		return m.OldCampaignSummaryEmails(ctx)
	case notificationpreference.FieldEmailVerificationReminders:
		return m.OldEmailVerificationReminders(ctx)
	case notificationpreference.FieldMarketingEmails:
		return m.OldMarketingEmails(ctx)
	case notificationpreference.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notificationpreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationPreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationpreference.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case notificationpreference.FieldLowCreditAlerts:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowCreditAlerts(v)
		return nil
	case notificationpreference.FieldCreditsAddedEmails:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditsAddedEmails(v)
		return nil
	case notificationpreference.FieldCampaignSummaryEmails:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignSummaryEmails(v)
		return nil
	case notificationpreference.FieldEmailVerificationReminders:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerificationReminders(v)
		return nil
	case notificationpreference.FieldMarketingEmails:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketingEmails(v)
		return nil
	case notificationpreference.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notificationpreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationPreferenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationPreferenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NotificationPreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationPreferenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationPreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationPreferenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NotificationPreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationPreferenceMutation) ResetField(name string) error {
	switch name {
	case notificationpreference.FieldTenantID:
		m.ResetTenantID()
		return nil
	case notificationpreference.FieldLowCreditAlerts:
		m.ResetLowCreditAlerts()
		return nil
	case notificationpreference.FieldCreditsAddedEmails:
		m.ResetCreditsAddedEmails()
		return nil
	case notificationpreference.FieldCampaignSummaryEmails:
		m.ResetCampaignSummaryEmails()
		return nil
	case notificationpreference.FieldEmailVerificationReminders:
		m.ResetEmailVerificationReminders()
		return nil
	case notificationpreference.FieldMarketingEmails:
		m.ResetMarketingEmails()
		return nil
	case notificationpreference.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notificationpreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationPreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationPreferenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationPreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationPreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationPreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationPreferenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationPreferenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationPreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationPreferenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationPreference edge %s", name)
}

// PhoneNumberMutation represents an operation that mutates the PhoneNumber nodes in the graph.
type PhoneNumberMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	phone             *string
	assigned_agent_id *string
	is_active         *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PhoneNumber, error)
	predicates        []predicate.PhoneNumber
}

var _ ent.Mutation = (*PhoneNumberMutation)(nil)

// phonenumberOption allows management of the mutation configuration using functional options.
type phonenumberOption func(*PhoneNumberMutation)

// newPhoneNumberMutation creates new mutation for the PhoneNumber entity.
func newPhoneNumberMutation(c config, op Op, opts ...phonenumberOption) *PhoneNumberMutation {
	m := &PhoneNumberMutation{
		config:        c,
		op:            op,
		typ:           TypePhoneNumber,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhoneNumberID sets the ID field of the mutation.
func withPhoneNumberID(id string) phonenumberOption {
	return func(m *PhoneNumberMutation) {
		var (
			err   error
			once  sync.Once
			value *PhoneNumber
		)
		m.oldValue = func(ctx context.Context) (*PhoneNumber, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhoneNumber.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhoneNumber sets the old PhoneNumber of the mutation.
func withPhoneNumber(node *PhoneNumber) phonenumberOption {
	return func(m *PhoneNumberMutation) {
		m.oldValue = func(context.Context) (*PhoneNumber, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhoneNumberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhoneNumberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PhoneNumber entities.
func (m *PhoneNumberMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhoneNumberMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhoneNumberMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhoneNumber.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PhoneNumberMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PhoneNumberMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PhoneNumberMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPhone sets the "phone" field.
func (m *PhoneNumberMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PhoneNumberMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *PhoneNumberMutation) ResetPhone() {
	m.phone = nil
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *PhoneNumberMutation) SetAssignedAgentID(s string) {
	m.assigned_agent_id = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *PhoneNumberMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *PhoneNumberMutation) ClearAssignedAgentID() {
	m.assigned_agent_id = nil
	m.clearedFields[phonenumber.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *PhoneNumberMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[phonenumber.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *PhoneNumberMutation) ResetAssignedAgentID() {
	m.assigned_agent_id = nil
	delete(m.clearedFields, phonenumber.FieldAssignedAgentID)
}

// SetIsActive sets the "is_active" field.
func (m *PhoneNumberMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PhoneNumberMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PhoneNumberMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PhoneNumberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhoneNumberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PhoneNumber entity.
// If the PhoneNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhoneNumberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhoneNumberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PhoneNumberMutation builder.
func (m *PhoneNumberMutation) Where(ps ...predicate.PhoneNumber) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhoneNumberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhoneNumberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhoneNumber, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhoneNumberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhoneNumberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhoneNumber).
func (m *PhoneNumberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhoneNumberMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, phonenumber.FieldTenantID)
	}
	if m.phone != nil {
		fields = append(fields, phonenumber.FieldPhone)
	}
	if m.assigned_agent_id != nil {
		fields = append(fields, phonenumber.FieldAssignedAgentID)
	}
	if m.is_active != nil {
		fields = append(fields, phonenumber.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, phonenumber.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhoneNumberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case phonenumber.FieldTenantID:
		return m.TenantID()
	case phonenumber.FieldPhone:
		return m.Phone()
	case phonenumber.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case phonenumber.FieldIsActive:
		return m.IsActive()
	case phonenumber.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhoneNumberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case phonenumber.FieldTenantID:
		return m.OldTenantID(ctx)
	case phonenumber.FieldPhone:
		return m.OldPhone(ctx)
	case phonenumber.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case phonenumber.FieldIsActive:
		return m.OldIsActive(ctx)
	case phonenumber.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PhoneNumber field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhoneNumberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case phonenumber.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case phonenumber.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case phonenumber.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case phonenumber.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case phonenumber.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PhoneNumber field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhoneNumberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhoneNumberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhoneNumberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PhoneNumber numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhoneNumberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(phonenumber.FieldAssignedAgentID) {
		fields = append(fields, phonenumber.FieldAssignedAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhoneNumberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhoneNumberMutation) ClearField(name string) error {
	switch name {
	case phonenumber.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	}
	return fmt.Errorf("unknown PhoneNumber nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhoneNumberMutation) ResetField(name string) error {
	switch name {
	case phonenumber.FieldTenantID:
		m.ResetTenantID()
		return nil
	case phonenumber.FieldPhone:
		m.ResetPhone()
		return nil
	case phonenumber.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case phonenumber.FieldIsActive:
		m.ResetIsActive()
		return nil
	case phonenumber.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PhoneNumber field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhoneNumberMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhoneNumberMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhoneNumberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhoneNumberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhoneNumberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhoneNumberMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhoneNumberMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PhoneNumber unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhoneNumberMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PhoneNumber edge %s", name)
}

// QueueItemMutation represents an operation that mutates the QueueItem nodes in the graph.
type QueueItemMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	kind           *queueitem.Kind
	status         *queueitem.Status
	priority       *int
	addpriority    *int
	position       *int
	addposition    *int
	agent_id       *string
	contact_phone  *string
	contact_name   *string
	contact_id     *string
	campaign_id    *string
	call_id        *string
	scheduled_for  *time.Time
	attempts       *int
	addattempts    *int
	failure_reason *string
	variables      *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*QueueItem, error)
	predicates     []predicate.QueueItem
}

var _ ent.Mutation = (*QueueItemMutation)(nil)

// queueitemOption allows management of the mutation configuration using functional options.
type queueitemOption func(*QueueItemMutation)

// newQueueItemMutation creates new mutation for the QueueItem entity.
func newQueueItemMutation(c config, op Op, opts ...queueitemOption) *QueueItemMutation {
	m := &QueueItemMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueItemID sets the ID field of the mutation.
func withQueueItemID(id string) queueitemOption {
	return func(m *QueueItemMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueItem
		)
		m.oldValue = func(ctx context.Context) (*QueueItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueItem sets the old QueueItem of the mutation.
func withQueueItem(node *QueueItem) queueitemOption {
	return func(m *QueueItemMutation) {
		m.oldValue = func(context.Context) (*QueueItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueItem entities.
func (m *QueueItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *QueueItemMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *QueueItemMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *QueueItemMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetKind sets the "kind" field.
func (m *QueueItemMutation) SetKind(q queueitem.Kind) {
	m.kind = &q
}

// Kind returns the value of the "kind" field in the mutation.
func (m *QueueItemMutation) Kind() (r queueitem.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldKind(ctx context.Context) (v queueitem.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *QueueItemMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *QueueItemMutation) SetStatus(q queueitem.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QueueItemMutation) Status() (r queueitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldStatus(ctx context.Context) (v queueitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QueueItemMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *QueueItemMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *QueueItemMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *QueueItemMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *QueueItemMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *QueueItemMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetPosition sets the "position" field.
func (m *QueueItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *QueueItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *QueueItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *QueueItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *QueueItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetAgentID sets the "agent_id" field.
func (m *QueueItemMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *QueueItemMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *QueueItemMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetContactPhone sets the "contact_phone" field.
func (m *QueueItemMutation) SetContactPhone(s string) {
	m.contact_phone = &s
}

// ContactPhone returns the value of the "contact_phone" field in the mutation.
func (m *QueueItemMutation) ContactPhone() (r string, exists bool) {
	v := m.contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldContactPhone returns the old "contact_phone" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldContactPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactPhone: %w", err)
	}
	return oldValue.ContactPhone, nil
}

// ResetContactPhone resets all changes to the "contact_phone" field.
func (m *QueueItemMutation) ResetContactPhone() {
	m.contact_phone = nil
}

// SetContactName sets the "contact_name" field.
func (m *QueueItemMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *QueueItemMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldContactName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ClearContactName clears the value of the "contact_name" field.
func (m *QueueItemMutation) ClearContactName() {
	m.contact_name = nil
	m.clearedFields[queueitem.FieldContactName] = struct{}{}
}

// ContactNameCleared returns if the "contact_name" field was cleared in this mutation.
func (m *QueueItemMutation) ContactNameCleared() bool {
	_, ok := m.clearedFields[queueitem.FieldContactName]
	return ok
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *QueueItemMutation) ResetContactName() {
	m.contact_name = nil
	delete(m.clearedFields, queueitem.FieldContactName)
}

// SetContactID sets the "contact_id" field.
func (m *QueueItemMutation) SetContactID(s string) {
	m.contact_id = &s
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *QueueItemMutation) ContactID() (r string, exists bool) {
	v := m.contact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldContactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ClearContactID clears the value of the "contact_id" field.
func (m *QueueItemMutation) ClearContactID() {
	m.contact_id = nil
	m.clearedFields[queueitem.FieldContactID] = struct{}{}
}

// ContactIDCleared returns if the "contact_id" field was cleared in this mutation.
func (m *QueueItemMutation) ContactIDCleared() bool {
	_, ok := m.clearedFields[queueitem.FieldContactID]
	return ok
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *QueueItemMutation) ResetContactID() {
	m.contact_id = nil
	delete(m.clearedFields, queueitem.FieldContactID)
}

// SetCampaignID sets the "campaign_id" field.
func (m *QueueItemMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *QueueItemMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldCampaignID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (m *QueueItemMutation) ClearCampaignID() {
	m.campaign_id = nil
	m.clearedFields[queueitem.FieldCampaignID] = struct{}{}
}

// CampaignIDCleared returns if the "campaign_id" field was cleared in this mutation.
func (m *QueueItemMutation) CampaignIDCleared() bool {
	_, ok := m.clearedFields[queueitem.FieldCampaignID]
	return ok
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *QueueItemMutation) ResetCampaignID() {
	m.campaign_id = nil
	delete(m.clearedFields, queueitem.FieldCampaignID)
}

// SetCallID sets the "call_id" field.
func (m *QueueItemMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *QueueItemMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ClearCallID clears the value of the "call_id" field.
func (m *QueueItemMutation) ClearCallID() {
	m.call_id = nil
	m.clearedFields[queueitem.FieldCallID] = struct{}{}
}

// CallIDCleared returns if the "call_id" field was cleared in this mutation.
func (m *QueueItemMutation) CallIDCleared() bool {
	_, ok := m.clearedFields[queueitem.FieldCallID]
	return ok
}

// ResetCallID resets all changes to the "call_id" field.
func (m *QueueItemMutation) ResetCallID() {
	m.call_id = nil
	delete(m.clearedFields, queueitem.FieldCallID)
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *QueueItemMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *QueueItemMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldScheduledFor(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (m *QueueItemMutation) ClearScheduledFor() {
	m.scheduled_for = nil
	m.clearedFields[queueitem.FieldScheduledFor] = struct{}{}
}

// ScheduledForCleared returns if the "scheduled_for" field was cleared in this mutation.
func (m *QueueItemMutation) ScheduledForCleared() bool {
	_, ok := m.clearedFields[queueitem.FieldScheduledFor]
	return ok
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *QueueItemMutation) ResetScheduledFor() {
	m.scheduled_for = nil
	delete(m.clearedFields, queueitem.FieldScheduledFor)
}

// SetAttempts sets the "attempts" field.
func (m *QueueItemMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *QueueItemMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *QueueItemMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *QueueItemMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *QueueItemMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *QueueItemMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *QueueItemMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *QueueItemMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[queueitem.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *QueueItemMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[queueitem.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *QueueItemMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, queueitem.FieldFailureReason)
}

// SetVariables sets the "variables" field.
func (m *QueueItemMutation) SetVariables(value map[string]interface{}) {
	m.variables = &value
}

// Variables returns the value of the "variables" field in the mutation.
func (m *QueueItemMutation) Variables() (r map[string]interface{}, exists bool) {
	v := m.variables
	if v == nil {
		return
	}
	return *v, true
}

// OldVariables returns the old "variables" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldVariables(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariables: %w", err)
	}
	return oldValue.Variables, nil
}

// ClearVariables clears the value of the "variables" field.
func (m *QueueItemMutation) ClearVariables() {
	m.variables = nil
	m.clearedFields[queueitem.FieldVariables] = struct{}{}
}

// VariablesCleared returns if the "variables" field was cleared in this mutation.
func (m *QueueItemMutation) VariablesCleared() bool {
	_, ok := m.clearedFields[queueitem.FieldVariables]
	return ok
}

// ResetVariables resets all changes to the "variables" field.
func (m *QueueItemMutation) ResetVariables() {
	m.variables = nil
	delete(m.clearedFields, queueitem.FieldVariables)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueueItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QueueItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QueueItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QueueItem entity.
// If the QueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QueueItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QueueItemMutation builder.
func (m *QueueItemMutation) Where(ps ...predicate.QueueItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueItem).
func (m *QueueItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueItemMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.tenant_id != nil {
		fields = append(fields, queueitem.FieldTenantID)
	}
	if m.kind != nil {
		fields = append(fields, queueitem.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, queueitem.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, queueitem.FieldPriority)
	}
	if m.position != nil {
		fields = append(fields, queueitem.FieldPosition)
	}
	if m.agent_id != nil {
		fields = append(fields, queueitem.FieldAgentID)
	}
	if m.contact_phone != nil {
		fields = append(fields, queueitem.FieldContactPhone)
	}
	if m.contact_name != nil {
		fields = append(fields, queueitem.FieldContactName)
	}
	if m.contact_id != nil {
		fields = append(fields, queueitem.FieldContactID)
	}
	if m.campaign_id != nil {
		fields = append(fields, queueitem.FieldCampaignID)
	}
	if m.call_id != nil {
		fields = append(fields, queueitem.FieldCallID)
	}
	if m.scheduled_for != nil {
		fields = append(fields, queueitem.FieldScheduledFor)
	}
	if m.attempts != nil {
		fields = append(fields, queueitem.FieldAttempts)
	}
	if m.failure_reason != nil {
		fields = append(fields, queueitem.FieldFailureReason)
	}
	if m.variables != nil {
		fields = append(fields, queueitem.FieldVariables)
	}
	if m.created_at != nil {
		fields = append(fields, queueitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, queueitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queueitem.FieldTenantID:
		return m.TenantID()
	case queueitem.FieldKind:
		return m.Kind()
	case queueitem.FieldStatus:
		return m.Status()
	case queueitem.FieldPriority:
		return m.Priority()
	case queueitem.FieldPosition:
		return m.Position()
	case queueitem.FieldAgentID:
		return m.AgentID()
	case queueitem.FieldContactPhone:
		return m.ContactPhone()
	case queueitem.FieldContactName:
		return m.ContactName()
	case queueitem.FieldContactID:
		return m.ContactID()
	case queueitem.FieldCampaignID:
		return m.CampaignID()
	case queueitem.FieldCallID:
		return m.CallID()
	case queueitem.FieldScheduledFor:
		return m.ScheduledFor()
	case queueitem.FieldAttempts:
		return m.Attempts()
	case queueitem.FieldFailureReason:
		return m.FailureReason()
	case queueitem.FieldVariables:
		return m.Variables()
	case queueitem.FieldCreatedAt:
		return m.CreatedAt()
	case queueitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queueitem.FieldTenantID:
		return m.OldTenantID(ctx)
	case queueitem.FieldKind:
		return m.OldKind(ctx)
	case queueitem.FieldStatus:
		return m.OldStatus(ctx)
	case queueitem.FieldPriority:
		return m.OldPriority(ctx)
	case queueitem.FieldPosition:
		return m.OldPosition(ctx)
	case queueitem.FieldAgentID:
		return m.OldAgentID(ctx)
	case queueitem.FieldContactPhone:
		return m.OldContactPhone(ctx)
	case queueitem.FieldContactName:
		return m.OldContactName(ctx)
	case queueitem.FieldContactID:
		return m.OldContactID(ctx)
	case queueitem.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case queueitem.FieldCallID:
		return m.OldCallID(ctx)
	case queueitem.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case queueitem.FieldAttempts:
		return m.OldAttempts(ctx)
	case queueitem.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case queueitem.FieldVariables:
		return m.OldVariables(ctx)
	case queueitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case queueitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queueitem.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case queueitem.FieldKind:
		v, ok := value.(queueitem.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case queueitem.FieldStatus:
		v, ok := value.(queueitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case queueitem.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case queueitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case queueitem.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case queueitem.FieldContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactPhone(v)
		return nil
	case queueitem.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case queueitem.FieldContactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case queueitem.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case queueitem.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case queueitem.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case queueitem.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case queueitem.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case queueitem.FieldVariables:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariables(v)
		return nil
	case queueitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case queueitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueItemMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, queueitem.FieldPriority)
	}
	if m.addposition != nil {
		fields = append(fields, queueitem.FieldPosition)
	}
	if m.addattempts != nil {
		fields = append(fields, queueitem.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queueitem.FieldPriority:
		return m.AddedPriority()
	case queueitem.FieldPosition:
		return m.AddedPosition()
	case queueitem.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queueitem.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case queueitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case queueitem.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown QueueItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queueitem.FieldContactName) {
		fields = append(fields, queueitem.FieldContactName)
	}
	if m.FieldCleared(queueitem.FieldContactID) {
		fields = append(fields, queueitem.FieldContactID)
	}
	if m.FieldCleared(queueitem.FieldCampaignID) {
		fields = append(fields, queueitem.FieldCampaignID)
	}
	if m.FieldCleared(queueitem.FieldCallID) {
		fields = append(fields, queueitem.FieldCallID)
	}
	if m.FieldCleared(queueitem.FieldScheduledFor) {
		fields = append(fields, queueitem.FieldScheduledFor)
	}
	if m.FieldCleared(queueitem.FieldFailureReason) {
		fields = append(fields, queueitem.FieldFailureReason)
	}
	if m.FieldCleared(queueitem.FieldVariables) {
		fields = append(fields, queueitem.FieldVariables)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueItemMutation) ClearField(name string) error {
	switch name {
	case queueitem.FieldContactName:
		m.ClearContactName()
		return nil
	case queueitem.FieldContactID:
		m.ClearContactID()
		return nil
	case queueitem.FieldCampaignID:
		m.ClearCampaignID()
		return nil
	case queueitem.FieldCallID:
		m.ClearCallID()
		return nil
	case queueitem.FieldScheduledFor:
		m.ClearScheduledFor()
		return nil
	case queueitem.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case queueitem.FieldVariables:
		m.ClearVariables()
		return nil
	}
	return fmt.Errorf("unknown QueueItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueItemMutation) ResetField(name string) error {
	switch name {
	case queueitem.FieldTenantID:
		m.ResetTenantID()
		return nil
	case queueitem.FieldKind:
		m.ResetKind()
		return nil
	case queueitem.FieldStatus:
		m.ResetStatus()
		return nil
	case queueitem.FieldPriority:
		m.ResetPriority()
		return nil
	case queueitem.FieldPosition:
		m.ResetPosition()
		return nil
	case queueitem.FieldAgentID:
		m.ResetAgentID()
		return nil
	case queueitem.FieldContactPhone:
		m.ResetContactPhone()
		return nil
	case queueitem.FieldContactName:
		m.ResetContactName()
		return nil
	case queueitem.FieldContactID:
		m.ResetContactID()
		return nil
	case queueitem.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case queueitem.FieldCallID:
		m.ResetCallID()
		return nil
	case queueitem.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case queueitem.FieldAttempts:
		m.ResetAttempts()
		return nil
	case queueitem.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case queueitem.FieldVariables:
		m.ResetVariables()
		return nil
	case queueitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case queueitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueItem edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	name                      *string
	email                     *string
	email_verified            *bool
	credits                   *int
	addcredits                *int
	concurrent_calls_limit    *int
	addconcurrent_calls_limit *int
	individual_prompt_id      *string
	complete_prompt_id        *string
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Tenant, error)
	predicates                []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *TenantMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *TenantMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *TenantMutation) ResetEmail() {
	m.email = nil
}

// SetEmailVerified sets the "email_verified" field.
func (m *TenantMutation) SetEmailVerified(b bool) {
	m.email_verified = &b
}

// EmailVerified returns the value of the "email_verified" field in the mutation.
func (m *TenantMutation) EmailVerified() (r bool, exists bool) {
	v := m.email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerified returns the old "email_verified" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerified: %w", err)
	}
	return oldValue.EmailVerified, nil
}

// ResetEmailVerified resets all changes to the "email_verified" field.
func (m *TenantMutation) ResetEmailVerified() {
	m.email_verified = nil
}

// SetCredits sets the "credits" field.
func (m *TenantMutation) SetCredits(i int) {
	m.credits = &i
	m.addcredits = nil
}

// Credits returns the value of the "credits" field in the mutation.
func (m *TenantMutation) Credits() (r int, exists bool) {
	v := m.credits
	if v == nil {
		return
	}
	return *v, true
}

// OldCredits returns the old "credits" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCredits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredits: %w", err)
	}
	return oldValue.Credits, nil
}

// AddCredits adds i to the "credits" field.
func (m *TenantMutation) AddCredits(i int) {
	if m.addcredits != nil {
		*m.addcredits += i
	} else {
		m.addcredits = &i
	}
}

// AddedCredits returns the value that was added to the "credits" field in this mutation.
func (m *TenantMutation) AddedCredits() (r int, exists bool) {
	v := m.addcredits
	if v == nil {
		return
	}
	return *v, true
}

// ResetCredits resets all changes to the "credits" field.
func (m *TenantMutation) ResetCredits() {
	m.credits = nil
	m.addcredits = nil
}

// SetConcurrentCallsLimit sets the "concurrent_calls_limit" field.
func (m *TenantMutation) SetConcurrentCallsLimit(i int) {
	m.concurrent_calls_limit = &i
	m.addconcurrent_calls_limit = nil
}

// ConcurrentCallsLimit returns the value of the "concurrent_calls_limit" field in the mutation.
func (m *TenantMutation) ConcurrentCallsLimit() (r int, exists bool) {
	v := m.concurrent_calls_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldConcurrentCallsLimit returns the old "concurrent_calls_limit" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldConcurrentCallsLimit(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcurrentCallsLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcurrentCallsLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcurrentCallsLimit: %w", err)
	}
	return oldValue.ConcurrentCallsLimit, nil
}

// AddConcurrentCallsLimit adds i to the "concurrent_calls_limit" field.
func (m *TenantMutation) AddConcurrentCallsLimit(i int) {
	if m.addconcurrent_calls_limit != nil {
		*m.addconcurrent_calls_limit += i
	} else {
		m.addconcurrent_calls_limit = &i
	}
}

// AddedConcurrentCallsLimit returns the value that was added to the "concurrent_calls_limit" field in this mutation.
func (m *TenantMutation) AddedConcurrentCallsLimit() (r int, exists bool) {
	v := m.addconcurrent_calls_limit
	if v == nil {
		return
	}
	return *v, true
}

// ClearConcurrentCallsLimit clears the value of the "concurrent_calls_limit" field.
func (m *TenantMutation) ClearConcurrentCallsLimit() {
	m.concurrent_calls_limit = nil
	m.addconcurrent_calls_limit = nil
	m.clearedFields[tenant.FieldConcurrentCallsLimit] = struct{}{}
}

// ConcurrentCallsLimitCleared returns if the "concurrent_calls_limit" field was cleared in this mutation.
func (m *TenantMutation) ConcurrentCallsLimitCleared() bool {
	_, ok := m.clearedFields[tenant.FieldConcurrentCallsLimit]
	return ok
}

// ResetConcurrentCallsLimit resets all changes to the "concurrent_calls_limit" field.
func (m *TenantMutation) ResetConcurrentCallsLimit() {
	m.concurrent_calls_limit = nil
	m.addconcurrent_calls_limit = nil
	delete(m.clearedFields, tenant.FieldConcurrentCallsLimit)
}

// SetIndividualPromptID sets the "individual_prompt_id" field.
func (m *TenantMutation) SetIndividualPromptID(s string) {
	m.individual_prompt_id = &s
}

// IndividualPromptID returns the value of the "individual_prompt_id" field in the mutation.
func (m *TenantMutation) IndividualPromptID() (r string, exists bool) {
	v := m.individual_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIndividualPromptID returns the old "individual_prompt_id" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldIndividualPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndividualPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndividualPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndividualPromptID: %w", err)
	}
	return oldValue.IndividualPromptID, nil
}

// ClearIndividualPromptID clears the value of the "individual_prompt_id" field.
func (m *TenantMutation) ClearIndividualPromptID() {
	m.individual_prompt_id = nil
	m.clearedFields[tenant.FieldIndividualPromptID] = struct{}{}
}

// IndividualPromptIDCleared returns if the "individual_prompt_id" field was cleared in this mutation.
func (m *TenantMutation) IndividualPromptIDCleared() bool {
	_, ok := m.clearedFields[tenant.FieldIndividualPromptID]
	return ok
}

// ResetIndividualPromptID resets all changes to the "individual_prompt_id" field.
func (m *TenantMutation) ResetIndividualPromptID() {
	m.individual_prompt_id = nil
	delete(m.clearedFields, tenant.FieldIndividualPromptID)
}

// SetCompletePromptID sets the "complete_prompt_id" field.
func (m *TenantMutation) SetCompletePromptID(s string) {
	m.complete_prompt_id = &s
}

// CompletePromptID returns the value of the "complete_prompt_id" field in the mutation.
func (m *TenantMutation) CompletePromptID() (r string, exists bool) {
	v := m.complete_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletePromptID returns the old "complete_prompt_id" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCompletePromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletePromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletePromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletePromptID: %w", err)
	}
	return oldValue.CompletePromptID, nil
}

// ClearCompletePromptID clears the value of the "complete_prompt_id" field.
func (m *TenantMutation) ClearCompletePromptID() {
	m.complete_prompt_id = nil
	m.clearedFields[tenant.FieldCompletePromptID] = struct{}{}
}

// CompletePromptIDCleared returns if the "complete_prompt_id" field was cleared in this mutation.
func (m *TenantMutation) CompletePromptIDCleared() bool {
	_, ok := m.clearedFields[tenant.FieldCompletePromptID]
	return ok
}

// ResetCompletePromptID resets all changes to the "complete_prompt_id" field.
func (m *TenantMutation) ResetCompletePromptID() {
	m.complete_prompt_id = nil
	delete(m.clearedFields, tenant.FieldCompletePromptID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.email != nil {
		fields = append(fields, tenant.FieldEmail)
	}
	if m.email_verified != nil {
		fields = append(fields, tenant.FieldEmailVerified)
	}
	if m.credits != nil {
		fields = append(fields, tenant.FieldCredits)
	}
	if m.concurrent_calls_limit != nil {
		fields = append(fields, tenant.FieldConcurrentCallsLimit)
	}
	if m.individual_prompt_id != nil {
		fields = append(fields, tenant.FieldIndividualPromptID)
	}
	if m.complete_prompt_id != nil {
		fields = append(fields, tenant.FieldCompletePromptID)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldEmail:
		return m.Email()
	case tenant.FieldEmailVerified:
		return m.EmailVerified()
	case tenant.FieldCredits:
		return m.Credits()
	case tenant.FieldConcurrentCallsLimit:
		return m.ConcurrentCallsLimit()
	case tenant.FieldIndividualPromptID:
		return m.IndividualPromptID()
	case tenant.FieldCompletePromptID:
		return m.CompletePromptID()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	case tenant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldEmail:
		return m.OldEmail(ctx)
	case tenant.FieldEmailVerified:
		return m.OldEmailVerified(ctx)
	case tenant.FieldCredits:
		return m.OldCredits(ctx)
	case tenant.FieldConcurrentCallsLimit:
		return m.OldConcurrentCallsLimit(ctx)
	case tenant.FieldIndividualPromptID:
		return m.OldIndividualPromptID(ctx)
	case tenant.FieldCompletePromptID:
		return m.OldCompletePromptID(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case tenant.FieldEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerified(v)
		return nil
	case tenant.FieldCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredits(v)
		return nil
	case tenant.FieldConcurrentCallsLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcurrentCallsLimit(v)
		return nil
	case tenant.FieldIndividualPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndividualPromptID(v)
		return nil
	case tenant.FieldCompletePromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletePromptID(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	var fields []string
	if m.addcredits != nil {
		fields = append(fields, tenant.FieldCredits)
	}
	if m.addconcurrent_calls_limit != nil {
		fields = append(fields, tenant.FieldConcurrentCallsLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldCredits:
		return m.AddedCredits()
	case tenant.FieldConcurrentCallsLimit:
		return m.AddedConcurrentCallsLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCredits(v)
		return nil
	case tenant.FieldConcurrentCallsLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConcurrentCallsLimit(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenant.FieldConcurrentCallsLimit) {
		fields = append(fields, tenant.FieldConcurrentCallsLimit)
	}
	if m.FieldCleared(tenant.FieldIndividualPromptID) {
		fields = append(fields, tenant.FieldIndividualPromptID)
	}
	if m.FieldCleared(tenant.FieldCompletePromptID) {
		fields = append(fields, tenant.FieldCompletePromptID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	switch name {
	case tenant.FieldConcurrentCallsLimit:
		m.ClearConcurrentCallsLimit()
		return nil
	case tenant.FieldIndividualPromptID:
		m.ClearIndividualPromptID()
		return nil
	case tenant.FieldCompletePromptID:
		m.ClearCompletePromptID()
		return nil
	}
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldEmail:
		m.ResetEmail()
		return nil
	case tenant.FieldEmailVerified:
		m.ResetEmailVerified()
		return nil
	case tenant.FieldCredits:
		m.ResetCredits()
		return nil
	case tenant.FieldConcurrentCallsLimit:
		m.ResetConcurrentCallsLimit()
		return nil
	case tenant.FieldIndividualPromptID:
		m.ResetIndividualPromptID()
		return nil
	case tenant.FieldCompletePromptID:
		m.ResetCompletePromptID()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// TranscriptMutation represents an operation that mutates the Transcript nodes in the graph.
type TranscriptMutation struct {
	config
	op             Op
	typ            string
	id             *string
	call_id        *string
	tenant_id      *string
	content        *string
	segments       *[]map[string]interface{}
	appendsegments []map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Transcript, error)
	predicates     []predicate.Transcript
}

var _ ent.Mutation = (*TranscriptMutation)(nil)

// transcriptOption allows management of the mutation configuration using functional options.
type transcriptOption func(*TranscriptMutation)

// newTranscriptMutation creates new mutation for the Transcript entity.
func newTranscriptMutation(c config, op Op, opts ...transcriptOption) *TranscriptMutation {
	m := &TranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptID sets the ID field of the mutation.
func withTranscriptID(id string) transcriptOption {
	return func(m *TranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcript
		)
		m.oldValue = func(ctx context.Context) (*Transcript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscript sets the old Transcript of the mutation.
func withTranscript(node *Transcript) transcriptOption {
	return func(m *TranscriptMutation) {
		m.oldValue = func(context.Context) (*Transcript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transcript entities.
func (m *TranscriptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCallID sets the "call_id" field.
func (m *TranscriptMutation) SetCallID(s string) {
	m.call_id = &s
}

// CallID returns the value of the "call_id" field in the mutation.
func (m *TranscriptMutation) CallID() (r string, exists bool) {
	v := m.call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCallID returns the old "call_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCallID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallID: %w", err)
	}
	return oldValue.CallID, nil
}

// ResetCallID resets all changes to the "call_id" field.
func (m *TranscriptMutation) ResetCallID() {
	m.call_id = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *TranscriptMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TranscriptMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TranscriptMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetContent sets the "content" field.
func (m *TranscriptMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TranscriptMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *TranscriptMutation) ResetContent() {
	m.content = nil
}

// SetSegments sets the "segments" field.
func (m *TranscriptMutation) SetSegments(value []map[string]interface{}) {
	m.segments = &value
	m.appendsegments = nil
}

// Segments returns the value of the "segments" field in the mutation.
func (m *TranscriptMutation) Segments() (r []map[string]interface{}, exists bool) {
	v := m.segments
	if v == nil {
		return
	}
	return *v, true
}

// OldSegments returns the old "segments" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldSegments(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegments: %w", err)
	}
	return oldValue.Segments, nil
}

// AppendSegments adds value to the "segments" field.
func (m *TranscriptMutation) AppendSegments(value []map[string]interface{}) {
	m.appendsegments = append(m.appendsegments, value...)
}

// AppendedSegments returns the list of values that were appended to the "segments" field in this mutation.
func (m *TranscriptMutation) AppendedSegments() ([]map[string]interface{}, bool) {
	if len(m.appendsegments) == 0 {
		return nil, false
	}
	return m.appendsegments, true
}

// ClearSegments clears the value of the "segments" field.
func (m *TranscriptMutation) ClearSegments() {
	m.segments = nil
	m.appendsegments = nil
	m.clearedFields[transcript.FieldSegments] = struct{}{}
}

// SegmentsCleared returns if the "segments" field was cleared in this mutation.
func (m *TranscriptMutation) SegmentsCleared() bool {
	_, ok := m.clearedFields[transcript.FieldSegments]
	return ok
}

// ResetSegments resets all changes to the "segments" field.
func (m *TranscriptMutation) ResetSegments() {
	m.segments = nil
	m.appendsegments = nil
	delete(m.clearedFields, transcript.FieldSegments)
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TranscriptMutation builder.
func (m *TranscriptMutation) Where(ps ...predicate.Transcript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcript).
func (m *TranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.call_id != nil {
		fields = append(fields, transcript.FieldCallID)
	}
	if m.tenant_id != nil {
		fields = append(fields, transcript.FieldTenantID)
	}
	if m.content != nil {
		fields = append(fields, transcript.FieldContent)
	}
	if m.segments != nil {
		fields = append(fields, transcript.FieldSegments)
	}
	if m.created_at != nil {
		fields = append(fields, transcript.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldCallID:
		return m.CallID()
	case transcript.FieldTenantID:
		return m.TenantID()
	case transcript.FieldContent:
		return m.Content()
	case transcript.FieldSegments:
		return m.Segments()
	case transcript.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcript.FieldCallID:
		return m.OldCallID(ctx)
	case transcript.FieldTenantID:
		return m.OldTenantID(ctx)
	case transcript.FieldContent:
		return m.OldContent(ctx)
	case transcript.FieldSegments:
		return m.OldSegments(ctx)
	case transcript.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallID(v)
		return nil
	case transcript.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case transcript.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case transcript.FieldSegments:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegments(v)
		return nil
	case transcript.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Transcript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcript.FieldSegments) {
		fields = append(fields, transcript.FieldSegments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptMutation) ClearField(name string) error {
	switch name {
	case transcript.FieldSegments:
		m.ClearSegments()
		return nil
	}
	return fmt.Errorf("unknown Transcript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptMutation) ResetField(name string) error {
	switch name {
	case transcript.FieldCallID:
		m.ResetCallID()
		return nil
	case transcript.FieldTenantID:
		m.ResetTenantID()
		return nil
	case transcript.FieldContent:
		m.ResetContent()
		return nil
	case transcript.FieldSegments:
		m.ResetSegments()
		return nil
	case transcript.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Transcript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Transcript edge %s", name)
}
