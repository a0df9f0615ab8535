// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elitizon/invoicepipe/gen/ent/invoice"
	"github.com/elitizon/invoicepipe/gen/ent/lineitem"
	"github.com/elitizon/invoicepipe/gen/ent/predicate"
	"github.com/google/uuid"
)

// LineItemUpdate is the builder for updating LineItem entities.
type LineItemUpdate struct {
	config
	hooks    []Hook
	mutation *LineItemMutation
}

// Where appends a list predicates to the LineItemUpdate builder.
func (_u *LineItemUpdate) Where(ps ...predicate.LineItem) *LineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *LineItemUpdate) SetInvoiceID(v uuid.UUID) *LineItemUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableInvoiceID(v *uuid.UUID) *LineItemUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LineItemUpdate) SetPosition(v int) *LineItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillablePosition(v *int) *LineItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LineItemUpdate) AddPosition(v int) *LineItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *LineItemUpdate) SetDescription(v string) *LineItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableDescription(v *string) *LineItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *LineItemUpdate) SetQuantity(v float64) *LineItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableQuantity(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *LineItemUpdate) AddQuantity(v float64) *LineItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *LineItemUpdate) ClearQuantity() *LineItemUpdate {
	_u.mutation.ClearQuantity()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *LineItemUpdate) SetUnitPrice(v float64) *LineItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableUnitPrice(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *LineItemUpdate) AddUnitPrice(v float64) *LineItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *LineItemUpdate) ClearUnitPrice() *LineItemUpdate {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetTotal sets the "total" field.
func (_u *LineItemUpdate) SetTotal(v float64) *LineItemUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableTotal(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *LineItemUpdate) AddTotal(v float64) *LineItemUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *LineItemUpdate) ClearTotal() *LineItemUpdate {
	_u.mutation.ClearTotal()
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *LineItemUpdate) SetTaxRate(v float64) *LineItemUpdate {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableTaxRate(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *LineItemUpdate) AddTaxRate(v float64) *LineItemUpdate {
	_u.mutation.AddTaxRate(v)
	return _u
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (_u *LineItemUpdate) ClearTaxRate() *LineItemUpdate {
	_u.mutation.ClearTaxRate()
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *LineItemUpdate) SetInvoice(v *Invoice) *LineItemUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the LineItemMutation object of the builder.
func (_u *LineItemUpdate) Mutation() *LineItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *LineItemUpdate) ClearInvoice() *LineItemUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LineItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LineItemUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := lineitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "LineItem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := lineitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LineItem.description": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LineItem.invoice"`)
	}
	return nil
}

func (_u *LineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineitem.Table, lineitem.Columns, sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lineitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lineitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lineitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(lineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(lineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(lineitem.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(lineitem.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(lineitem.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(lineitem.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(lineitem.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(lineitem.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(lineitem.FieldTaxRate, field.TypeFloat64, value)
	}
	if _u.mutation.TaxRateCleared() {
		_spec.ClearField(lineitem.FieldTaxRate, field.TypeFloat64)
	}
	if _u.mutation.InvoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LineItemUpdateOne is the builder for updating a single LineItem entity.
type LineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LineItemMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *LineItemUpdateOne) SetInvoiceID(v uuid.UUID) *LineItemUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *LineItemUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LineItemUpdateOne) SetPosition(v int) *LineItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillablePosition(v *int) *LineItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LineItemUpdateOne) AddPosition(v int) *LineItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *LineItemUpdateOne) SetDescription(v string) *LineItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableDescription(v *string) *LineItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *LineItemUpdateOne) SetQuantity(v float64) *LineItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableQuantity(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *LineItemUpdateOne) AddQuantity(v float64) *LineItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *LineItemUpdateOne) ClearQuantity() *LineItemUpdateOne {
	_u.mutation.ClearQuantity()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *LineItemUpdateOne) SetUnitPrice(v float64) *LineItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableUnitPrice(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *LineItemUpdateOne) AddUnitPrice(v float64) *LineItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *LineItemUpdateOne) ClearUnitPrice() *LineItemUpdateOne {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetTotal sets the "total" field.
func (_u *LineItemUpdateOne) SetTotal(v float64) *LineItemUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableTotal(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *LineItemUpdateOne) AddTotal(v float64) *LineItemUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *LineItemUpdateOne) ClearTotal() *LineItemUpdateOne {
	_u.mutation.ClearTotal()
	return _u
}

// SetTaxRate sets the "tax_rate" field.
func (_u *LineItemUpdateOne) SetTaxRate(v float64) *LineItemUpdateOne {
	_u.mutation.ResetTaxRate()
	_u.mutation.SetTaxRate(v)
	return _u
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableTaxRate(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetTaxRate(*v)
	}
	return _u
}

// AddTaxRate adds value to the "tax_rate" field.
func (_u *LineItemUpdateOne) AddTaxRate(v float64) *LineItemUpdateOne {
	_u.mutation.AddTaxRate(v)
	return _u
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (_u *LineItemUpdateOne) ClearTaxRate() *LineItemUpdateOne {
	_u.mutation.ClearTaxRate()
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *LineItemUpdateOne) SetInvoice(v *Invoice) *LineItemUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the LineItemMutation object of the builder.
func (_u *LineItemUpdateOne) Mutation() *LineItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *LineItemUpdateOne) ClearInvoice() *LineItemUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the LineItemUpdate builder.
func (_u *LineItemUpdateOne) Where(ps ...predicate.LineItem) *LineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LineItemUpdateOne) Select(field string, fields ...string) *LineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LineItem entity.
func (_u *LineItemUpdateOne) Save(ctx context.Context) (*LineItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LineItemUpdateOne) SaveX(ctx context.Context) *LineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LineItemUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := lineitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "LineItem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := lineitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LineItem.description": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LineItem.invoice"`)
	}
	return nil
}

func (_u *LineItemUpdateOne) sqlSave(ctx context.Context) (_node *LineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineitem.Table, lineitem.Columns, sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lineitem.FieldID)
		for _, f := range fields {
			if !lineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lineitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lineitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lineitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lineitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(lineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(lineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(lineitem.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(lineitem.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(lineitem.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(lineitem.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(lineitem.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxRate(); ok {
		_spec.SetField(lineitem.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxRate(); ok {
		_spec.AddField(lineitem.FieldTaxRate, field.TypeFloat64, value)
	}
	if _u.mutation.TaxRateCleared() {
		_spec.ClearField(lineitem.FieldTaxRate, field.TypeFloat64)
	}
	if _u.mutation.InvoiceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
