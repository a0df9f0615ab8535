// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/elitizon/invoicepipe/gen/ent/extractjob"
	"github.com/elitizon/invoicepipe/gen/ent/invoice"
	"github.com/elitizon/invoicepipe/gen/ent/lineitem"
	"github.com/elitizon/invoicepipe/gen/ent/predicate"
	"github.com/elitizon/invoicepipe/gen/ent/profile"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceUpdate) SetProfileID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProfileID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *InvoiceUpdate) SetFileID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// ClearFileID clears the value of the "file_id" field.
func (_u *InvoiceUpdate) ClearFileID() *InvoiceUpdate {
	_u.mutation.ClearFileID()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdate) SetVendorName(v string) *InvoiceUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetVendorTaxID sets the "vendor_tax_id" field.
func (_u *InvoiceUpdate) SetVendorTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetVendorTaxID(v)
	return _u
}

// SetNillableVendorTaxID sets the "vendor_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorTaxID(*v)
	}
	return _u
}

// ClearVendorTaxID clears the value of the "vendor_tax_id" field.
func (_u *InvoiceUpdate) ClearVendorTaxID() *InvoiceUpdate {
	_u.mutation.ClearVendorTaxID()
	return _u
}

// SetVendorAddress sets the "vendor_address" field.
func (_u *InvoiceUpdate) SetVendorAddress(v string) *InvoiceUpdate {
	_u.mutation.SetVendorAddress(v)
	return _u
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorAddress(*v)
	}
	return _u
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (_u *InvoiceUpdate) ClearVendorAddress() *InvoiceUpdate {
	_u.mutation.ClearVendorAddress()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *InvoiceUpdate) SetCustomerName(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *InvoiceUpdate) ClearCustomerName() *InvoiceUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdate) ClearSubtotal() *InvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *InvoiceUpdate) SetTax(v float64) *InvoiceUpdate {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTax(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *InvoiceUpdate) AddTax(v float64) *InvoiceUpdate {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *InvoiceUpdate) ClearTax() *InvoiceUpdate {
	_u.mutation.ClearTax()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdate) SetTotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceUpdate) AddTotal(v float64) *InvoiceUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdate) SetCurrencyCode(v string) *InvoiceUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrencyCode(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdate) SetPaymentTerms(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentTerms(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdate) ClearPaymentTerms() *InvoiceUpdate {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdate) SetNotes(v string) *InvoiceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNotes(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdate) ClearNotes() *InvoiceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *InvoiceUpdate) SetProfile(v *Profile) *InvoiceUpdate {
	return _u.SetProfileID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the LineItem entity by IDs.
func (_u *InvoiceUpdate) AddLineItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the LineItem entity.
func (_u *InvoiceUpdate) AddLineItems(v ...*LineItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceUpdate) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdate) AddJobs(v ...*ExtractJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *InvoiceUpdate) ClearProfile() *InvoiceUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearLineItems clears all "line_items" edges to the LineItem entity.
func (_u *InvoiceUpdate) ClearLineItems() *InvoiceUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to LineItem entities by IDs.
func (_u *InvoiceUpdate) RemoveLineItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to LineItem entities.
func (_u *InvoiceUpdate) RemoveLineItems(v ...*LineItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdate) ClearJobs() *InvoiceUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceUpdate) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceUpdate) RemoveJobs(v ...*ExtractJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorName(); ok {
		if err := invoice.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.profile"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileID(); ok {
		_spec.SetField(invoice.FieldFileID, field.TypeUUID, value)
	}
	if _u.mutation.FileIDCleared() {
		_spec.ClearField(invoice.FieldFileID, field.TypeUUID)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorTaxID(); ok {
		_spec.SetField(invoice.FieldVendorTaxID, field.TypeString, value)
	}
	if _u.mutation.VendorTaxIDCleared() {
		_spec.ClearField(invoice.FieldVendorTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.VendorAddress(); ok {
		_spec.SetField(invoice.FieldVendorAddress, field.TypeString, value)
	}
	if _u.mutation.VendorAddressCleared() {
		_spec.ClearField(invoice.FieldVendorAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(invoice.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(invoice.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(invoice.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(invoice.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceUpdateOne) SetProfileID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProfileID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *InvoiceUpdateOne) SetFileID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// ClearFileID clears the value of the "file_id" field.
func (_u *InvoiceUpdateOne) ClearFileID() *InvoiceUpdateOne {
	_u.mutation.ClearFileID()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdateOne) SetVendorName(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetVendorTaxID sets the "vendor_tax_id" field.
func (_u *InvoiceUpdateOne) SetVendorTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorTaxID(v)
	return _u
}

// SetNillableVendorTaxID sets the "vendor_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorTaxID(*v)
	}
	return _u
}

// ClearVendorTaxID clears the value of the "vendor_tax_id" field.
func (_u *InvoiceUpdateOne) ClearVendorTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearVendorTaxID()
	return _u
}

// SetVendorAddress sets the "vendor_address" field.
func (_u *InvoiceUpdateOne) SetVendorAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorAddress(v)
	return _u
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorAddress(*v)
	}
	return _u
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (_u *InvoiceUpdateOne) ClearVendorAddress() *InvoiceUpdateOne {
	_u.mutation.ClearVendorAddress()
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *InvoiceUpdateOne) SetCustomerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *InvoiceUpdateOne) ClearCustomerName() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdateOne) ClearSubtotal() *InvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTax sets the "tax" field.
func (_u *InvoiceUpdateOne) SetTax(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTax()
	_u.mutation.SetTax(v)
	return _u
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTax(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTax(*v)
	}
	return _u
}

// AddTax adds value to the "tax" field.
func (_u *InvoiceUpdateOne) AddTax(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTax(v)
	return _u
}

// ClearTax clears the value of the "tax" field.
func (_u *InvoiceUpdateOne) ClearTax() *InvoiceUpdateOne {
	_u.mutation.ClearTax()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdateOne) SetTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceUpdateOne) AddTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *InvoiceUpdateOne) SetCurrencyCode(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrencyCode(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdateOne) SetPaymentTerms(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentTerms(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdateOne) ClearPaymentTerms() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdateOne) SetNotes(v string) *InvoiceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNotes(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdateOne) ClearNotes() *InvoiceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *InvoiceUpdateOne) SetProfile(v *Profile) *InvoiceUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the LineItem entity by IDs.
func (_u *InvoiceUpdateOne) AddLineItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the LineItem entity.
func (_u *InvoiceUpdateOne) AddLineItems(v ...*LineItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceUpdateOne) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdateOne) AddJobs(v ...*ExtractJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *InvoiceUpdateOne) ClearProfile() *InvoiceUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearLineItems clears all "line_items" edges to the LineItem entity.
func (_u *InvoiceUpdateOne) ClearLineItems() *InvoiceUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to LineItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveLineItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to LineItem entities.
func (_u *InvoiceUpdateOne) RemoveLineItems(v ...*LineItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdateOne) ClearJobs() *InvoiceUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceUpdateOne) RemoveJobs(v ...*ExtractJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorName(); ok {
		if err := invoice.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := invoice.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency_code": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.profile"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.FileID(); ok {
		_spec.SetField(invoice.FieldFileID, field.TypeUUID, value)
	}
	if _u.mutation.FileIDCleared() {
		_spec.ClearField(invoice.FieldFileID, field.TypeUUID)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorTaxID(); ok {
		_spec.SetField(invoice.FieldVendorTaxID, field.TypeString, value)
	}
	if _u.mutation.VendorTaxIDCleared() {
		_spec.ClearField(invoice.FieldVendorTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.VendorAddress(); ok {
		_spec.SetField(invoice.FieldVendorAddress, field.TypeString, value)
	}
	if _u.mutation.VendorAddressCleared() {
		_spec.ClearField(invoice.FieldVendorAddress, field.TypeString)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(invoice.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Tax(); ok {
		_spec.SetField(invoice.FieldTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTax(); ok {
		_spec.AddField(invoice.FieldTax, field.TypeFloat64, value)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(invoice.FieldTax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(invoice.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
