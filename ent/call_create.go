// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ringstack/ringstack/ent/call"
)

// CallCreate is the builder for creating a Call entity.
type CallCreate struct {
	config
	mutation *CallMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CallCreate) SetTenantID(v string) *CallCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *CallCreate) SetAgentID(v string) *CallCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *CallCreate) SetNillableAgentID(v *string) *CallCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetCampaignID sets the "campaign_id" field.
func (_c *CallCreate) SetCampaignID(v string) *CallCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_c *CallCreate) SetNillableCampaignID(v *string) *CallCreate {
	if v != nil {
		_c.SetCampaignID(*v)
	}
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *CallCreate) SetContactID(v string) *CallCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *CallCreate) SetNillableContactID(v *string) *CallCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetQueueItemID sets the "queue_item_id" field.
func (_c *CallCreate) SetQueueItemID(v string) *CallCreate {
	_c.mutation.SetQueueItemID(v)
	return _c
}

// SetNillableQueueItemID sets the "queue_item_id" field if the given value is not nil.
func (_c *CallCreate) SetNillableQueueItemID(v *string) *CallCreate {
	if v != nil {
		_c.SetQueueItemID(*v)
	}
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *CallCreate) SetExecutionID(v string) *CallCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *CallCreate) SetNillableExecutionID(v *string) *CallCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetFromPhone sets the "from_phone" field.
func (_c *CallCreate) SetFromPhone(v string) *CallCreate {
	_c.mutation.SetFromPhone(v)
	return _c
}

// SetNillableFromPhone sets the "from_phone" field if the given value is not nil.
func (_c *CallCreate) SetNillableFromPhone(v *string) *CallCreate {
	if v != nil {
		_c.SetFromPhone(*v)
	}
	return _c
}

// SetToPhone sets the "to_phone" field.
func (_c *CallCreate) SetToPhone(v string) *CallCreate {
	_c.mutation.SetToPhone(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *CallCreate) SetDirection(v call.Direction) *CallCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_c *CallCreate) SetNillableDirection(v *call.Direction) *CallCreate {
	if v != nil {
		_c.SetDirection(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CallCreate) SetStatus(v call.Status) *CallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CallCreate) SetNillableStatus(v *call.Status) *CallCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLifecycleStatus sets the "lifecycle_status" field.
func (_c *CallCreate) SetLifecycleStatus(v call.LifecycleStatus) *CallCreate {
	_c.mutation.SetLifecycleStatus(v)
	return _c
}

// SetNillableLifecycleStatus sets the "lifecycle_status" field if the given value is not nil.
func (_c *CallCreate) SetNillableLifecycleStatus(v *call.LifecycleStatus) *CallCreate {
	if v != nil {
		_c.SetLifecycleStatus(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *CallCreate) SetDurationSeconds(v int) *CallCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *CallCreate) SetNillableDurationSeconds(v *int) *CallCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetBilledMinutes sets the "billed_minutes" field.
func (_c *CallCreate) SetBilledMinutes(v int) *CallCreate {
	_c.mutation.SetBilledMinutes(v)
	return _c
}

// SetNillableBilledMinutes sets the "billed_minutes" field if the given value is not nil.
func (_c *CallCreate) SetNillableBilledMinutes(v *int) *CallCreate {
	if v != nil {
		_c.SetBilledMinutes(*v)
	}
	return _c
}

// SetCreditsUsed sets the "credits_used" field.
func (_c *CallCreate) SetCreditsUsed(v int) *CallCreate {
	_c.mutation.SetCreditsUsed(v)
	return _c
}

// SetNillableCreditsUsed sets the "credits_used" field if the given value is not nil.
func (_c *CallCreate) SetNillableCreditsUsed(v *int) *CallCreate {
	if v != nil {
		_c.SetCreditsUsed(*v)
	}
	return _c
}

// SetHangupBy sets the "hangup_by" field.
func (_c *CallCreate) SetHangupBy(v string) *CallCreate {
	_c.mutation.SetHangupBy(v)
	return _c
}

// SetNillableHangupBy sets the "hangup_by" field if the given value is not nil.
func (_c *CallCreate) SetNillableHangupBy(v *string) *CallCreate {
	if v != nil {
		_c.SetHangupBy(*v)
	}
	return _c
}

// SetHangupReason sets the "hangup_reason" field.
func (_c *CallCreate) SetHangupReason(v string) *CallCreate {
	_c.mutation.SetHangupReason(v)
	return _c
}

// SetNillableHangupReason sets the "hangup_reason" field if the given value is not nil.
func (_c *CallCreate) SetNillableHangupReason(v *string) *CallCreate {
	if v != nil {
		_c.SetHangupReason(*v)
	}
	return _c
}

// SetHangupProviderCode sets the "hangup_provider_code" field.
func (_c *CallCreate) SetHangupProviderCode(v string) *CallCreate {
	_c.mutation.SetHangupProviderCode(v)
	return _c
}

// SetNillableHangupProviderCode sets the "hangup_provider_code" field if the given value is not nil.
func (_c *CallCreate) SetNillableHangupProviderCode(v *string) *CallCreate {
	if v != nil {
		_c.SetHangupProviderCode(*v)
	}
	return _c
}

// SetRecordingURL sets the "recording_url" field.
func (_c *CallCreate) SetRecordingURL(v string) *CallCreate {
	_c.mutation.SetRecordingURL(v)
	return _c
}

// SetNillableRecordingURL sets the "recording_url" field if the given value is not nil.
func (_c *CallCreate) SetNillableRecordingURL(v *string) *CallCreate {
	if v != nil {
		_c.SetRecordingURL(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CallCreate) SetSummary(v string) *CallCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *CallCreate) SetNillableSummary(v *string) *CallCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *CallCreate) SetFailureReason(v string) *CallCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *CallCreate) SetNillableFailureReason(v *string) *CallCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetPlaceholder sets the "placeholder" field.
func (_c *CallCreate) SetPlaceholder(v bool) *CallCreate {
	_c.mutation.SetPlaceholder(v)
	return _c
}

// SetNillablePlaceholder sets the "placeholder" field if the given value is not nil.
func (_c *CallCreate) SetNillablePlaceholder(v *bool) *CallCreate {
	if v != nil {
		_c.SetPlaceholder(*v)
	}
	return _c
}

// SetProviderPayload sets the "provider_payload" field.
func (_c *CallCreate) SetProviderPayload(v map[string]interface{}) *CallCreate {
	_c.mutation.SetProviderPayload(v)
	return _c
}

// SetRingingStartedAt sets the "ringing_started_at" field.
func (_c *CallCreate) SetRingingStartedAt(v time.Time) *CallCreate {
	_c.mutation.SetRingingStartedAt(v)
	return _c
}

// SetNillableRingingStartedAt sets the "ringing_started_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableRingingStartedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetRingingStartedAt(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *CallCreate) SetAnsweredAt(v time.Time) *CallCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableAnsweredAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetDisconnectedAt sets the "disconnected_at" field.
func (_c *CallCreate) SetDisconnectedAt(v time.Time) *CallCreate {
	_c.mutation.SetDisconnectedAt(v)
	return _c
}

// SetNillableDisconnectedAt sets the "disconnected_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableDisconnectedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetDisconnectedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CallCreate) SetStartedAt(v time.Time) *CallCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableStartedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *CallCreate) SetEndedAt(v time.Time) *CallCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableEndedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CallCreate) SetCreatedAt(v time.Time) *CallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableCreatedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CallCreate) SetUpdatedAt(v time.Time) *CallCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CallCreate) SetNillableUpdatedAt(v *time.Time) *CallCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CallCreate) SetID(v string) *CallCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CallMutation object of the builder.
func (_c *CallCreate) Mutation() *CallMutation {
	return _c.mutation
}

// Save creates the Call in the database.
func (_c *CallCreate) Save(ctx context.Context) (*Call, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CallCreate) SaveX(ctx context.Context) *Call {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CallCreate) defaults() {
	if _, ok := _c.mutation.Direction(); !ok {
		v := call.DefaultDirection
		_c.mutation.SetDirection(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := call.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LifecycleStatus(); !ok {
		v := call.DefaultLifecycleStatus
		_c.mutation.SetLifecycleStatus(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := call.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.BilledMinutes(); !ok {
		v := call.DefaultBilledMinutes
		_c.mutation.SetBilledMinutes(v)
	}
	if _, ok := _c.mutation.CreditsUsed(); !ok {
		v := call.DefaultCreditsUsed
		_c.mutation.SetCreditsUsed(v)
	}
	if _, ok := _c.mutation.Placeholder(); !ok {
		v := call.DefaultPlaceholder
		_c.mutation.SetPlaceholder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := call.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := call.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CallCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Call.tenant_id"`)}
	}
	if _, ok := _c.mutation.ToPhone(); !ok {
		return &ValidationError{Name: "to_phone", err: errors.New(`ent: missing required field "Call.to_phone"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "Call.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := call.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "Call.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Call.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := call.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Call.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LifecycleStatus(); !ok {
		return &ValidationError{Name: "lifecycle_status", err: errors.New(`ent: missing required field "Call.lifecycle_status"`)}
	}
	if v, ok := _c.mutation.LifecycleStatus(); ok {
		if err := call.LifecycleStatusValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_status", err: fmt.Errorf(`ent: validator failed for field "Call.lifecycle_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "Call.duration_seconds"`)}
	}
	if _, ok := _c.mutation.BilledMinutes(); !ok {
		return &ValidationError{Name: "billed_minutes", err: errors.New(`ent: missing required field "Call.billed_minutes"`)}
	}
	if _, ok := _c.mutation.CreditsUsed(); !ok {
		return &ValidationError{Name: "credits_used", err: errors.New(`ent: missing required field "Call.credits_used"`)}
	}
	if _, ok := _c.mutation.Placeholder(); !ok {
		return &ValidationError{Name: "placeholder", err: errors.New(`ent: missing required field "Call.placeholder"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Call.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Call.updated_at"`)}
	}
	return nil
}

func (_c *CallCreate) sqlSave(ctx context.Context) (*Call, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Call.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CallCreate) createSpec() (*Call, *sqlgraph.CreateSpec) {
	var (
		_node = &Call{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(call.Table, sqlgraph.NewFieldSpec(call.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(call.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(call.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.CampaignID(); ok {
		_spec.SetField(call.FieldCampaignID, field.TypeString, value)
		_node.CampaignID = &value
	}
	if value, ok := _c.mutation.ContactID(); ok {
		_spec.SetField(call.FieldContactID, field.TypeString, value)
		_node.ContactID = &value
	}
	if value, ok := _c.mutation.QueueItemID(); ok {
		_spec.SetField(call.FieldQueueItemID, field.TypeString, value)
		_node.QueueItemID = &value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(call.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = &value
	}
	if value, ok := _c.mutation.FromPhone(); ok {
		_spec.SetField(call.FieldFromPhone, field.TypeString, value)
		_node.FromPhone = value
	}
	if value, ok := _c.mutation.ToPhone(); ok {
		_spec.SetField(call.FieldToPhone, field.TypeString, value)
		_node.ToPhone = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(call.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(call.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LifecycleStatus(); ok {
		_spec.SetField(call.FieldLifecycleStatus, field.TypeEnum, value)
		_node.LifecycleStatus = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(call.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.BilledMinutes(); ok {
		_spec.SetField(call.FieldBilledMinutes, field.TypeInt, value)
		_node.BilledMinutes = value
	}
	if value, ok := _c.mutation.CreditsUsed(); ok {
		_spec.SetField(call.FieldCreditsUsed, field.TypeInt, value)
		_node.CreditsUsed = value
	}
	if value, ok := _c.mutation.HangupBy(); ok {
		_spec.SetField(call.FieldHangupBy, field.TypeString, value)
		_node.HangupBy = &value
	}
	if value, ok := _c.mutation.HangupReason(); ok {
		_spec.SetField(call.FieldHangupReason, field.TypeString, value)
		_node.HangupReason = &value
	}
	if value, ok := _c.mutation.HangupProviderCode(); ok {
		_spec.SetField(call.FieldHangupProviderCode, field.TypeString, value)
		_node.HangupProviderCode = &value
	}
	if value, ok := _c.mutation.RecordingURL(); ok {
		_spec.SetField(call.FieldRecordingURL, field.TypeString, value)
		_node.RecordingURL = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(call.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(call.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.Placeholder(); ok {
		_spec.SetField(call.FieldPlaceholder, field.TypeBool, value)
		_node.Placeholder = value
	}
	if value, ok := _c.mutation.ProviderPayload(); ok {
		_spec.SetField(call.FieldProviderPayload, field.TypeJSON, value)
		_node.ProviderPayload = value
	}
	if value, ok := _c.mutation.RingingStartedAt(); ok {
		_spec.SetField(call.FieldRingingStartedAt, field.TypeTime, value)
		_node.RingingStartedAt = &value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(call.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	if value, ok := _c.mutation.DisconnectedAt(); ok {
		_spec.SetField(call.FieldDisconnectedAt, field.TypeTime, value)
		_node.DisconnectedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(call.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(call.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(call.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(call.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CallCreateBulk is the builder for creating many Call entities in bulk.
type CallCreateBulk struct {
	config
	err      error
	builders []*CallCreate
}

// Save creates the Call entities in the database.
func (_c *CallCreateBulk) Save(ctx context.Context) ([]*Call, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Call, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CallMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CallCreateBulk) SaveX(ctx context.Context) []*Call {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
