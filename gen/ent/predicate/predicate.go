// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceFile is the predicate function for invoicefile builders.
type InvoiceFile func(*sql.Selector)

// LineItem is the predicate function for lineitem builders.
type LineItem func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
