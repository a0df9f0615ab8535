// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elitizon/invoicepipe/gen/ent/invoice"
	"github.com/elitizon/invoicepipe/gen/ent/lineitem"
	"github.com/google/uuid"
)

// LineItemCreate is the builder for creating a LineItem entity.
type LineItemCreate struct {
	config
	mutation *LineItemMutation
	hooks    []Hook
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *LineItemCreate) SetInvoiceID(v uuid.UUID) *LineItemCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *LineItemCreate) SetPosition(v int) *LineItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *LineItemCreate) SetDescription(v string) *LineItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *LineItemCreate) SetQuantity(v float64) *LineItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *LineItemCreate) SetNillableQuantity(v *float64) *LineItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *LineItemCreate) SetUnitPrice(v float64) *LineItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *LineItemCreate) SetNillableUnitPrice(v *float64) *LineItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *LineItemCreate) SetTotal(v float64) *LineItemCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *LineItemCreate) SetNillableTotal(v *float64) *LineItemCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetTaxRate sets the "tax_rate" field.
func (_c *LineItemCreate) SetTaxRate(v float64) *LineItemCreate {
	_c.mutation.SetTaxRate(v)
	return _c
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_c *LineItemCreate) SetNillableTaxRate(v *float64) *LineItemCreate {
	if v != nil {
		_c.SetTaxRate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LineItemCreate) SetID(v uuid.UUID) *LineItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LineItemCreate) SetNillableID(v *uuid.UUID) *LineItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *LineItemCreate) SetInvoice(v *Invoice) *LineItemCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the LineItemMutation object of the builder.
func (_c *LineItemCreate) Mutation() *LineItemMutation {
	return _c.mutation
}

// Save creates the LineItem in the database.
func (_c *LineItemCreate) Save(ctx context.Context) (*LineItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LineItemCreate) SaveX(ctx context.Context) *LineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LineItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LineItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LineItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := lineitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LineItemCreate) check() error {
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`ent: missing required field "LineItem.invoice_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "LineItem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := lineitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "LineItem.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "LineItem.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := lineitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LineItem.description": %w`, err)}
		}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`ent: missing required edge "LineItem.invoice"`)}
	}
	return nil
}

func (_c *LineItemCreate) sqlSave(ctx context.Context) (*LineItem, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LineItemCreate) createSpec() (*LineItem, *sqlgraph.CreateSpec) {
	var (
		_node = &LineItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lineitem.Table, sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(lineitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(lineitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(lineitem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = &value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = &value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(lineitem.FieldTotal, field.TypeFloat64, value)
		_node.Total = &value
	}
	if value, ok := _c.mutation.TaxRate(); ok {
		_spec.SetField(lineitem.FieldTaxRate, field.TypeFloat64, value)
		_node.TaxRate = &value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.InvoiceTable,
			Columns: []string{lineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InvoiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LineItemCreateBulk is the builder for creating many LineItem entities in bulk.
type LineItemCreateBulk struct {
	config
	err      error
	builders []*LineItemCreate
}

// Save creates the LineItem entities in the database.
func (_c *LineItemCreateBulk) Save(ctx context.Context) ([]*LineItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LineItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LineItemMutation)
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
func (_c *LineItemCreateBulk) SaveX(ctx context.Context) []*LineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LineItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LineItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
