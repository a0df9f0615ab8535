// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_invoices_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_invoice_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{InvoiceFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_profiles_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[14]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[14], ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13]},
			},
			{
				Name:    "extractjob_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "invoice_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "vendor_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "vendor_address", Type: field.TypeString, Nullable: true},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "payment_terms", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_profiles_invoices",
				Columns:    []*schema.Column{InvoicesColumns[17]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_profile_id_invoice_number_vendor_name",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[17], InvoicesColumns[2], InvoicesColumns[5]},
			},
			{
				Name:    "invoice_profile_id_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[17], InvoicesColumns[3]},
			},
		},
	}
	// InvoiceFilesColumns holds the columns for the "invoice_files" table.
	InvoiceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// InvoiceFilesTable holds the schema information for the "invoice_files" table.
	InvoiceFilesTable = &schema.Table{
		Name:       "invoice_files",
		Columns:    InvoiceFilesColumns,
		PrimaryKey: []*schema.Column{InvoiceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_files_profiles_files",
				Columns:    []*schema.Column{InvoiceFilesColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoicefile_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{InvoiceFilesColumns[7], InvoiceFilesColumns[2]},
			},
			{
				Name:    "invoicefile_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceFilesColumns[7], InvoiceFilesColumns[6]},
			},
		},
	}
	// LineItemsColumns holds the columns for the "line_items" table.
	LineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_rate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// LineItemsTable holds the schema information for the "line_items" table.
	LineItemsTable = &schema.Table{
		Name:       "line_items",
		Columns:    LineItemsColumns,
		PrimaryKey: []*schema.Column{LineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "line_items_invoices_line_items",
				Columns:    []*schema.Column{LineItemsColumns[7]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lineitem_invoice_id_position",
				Unique:  false,
				Columns: []*schema.Column{LineItemsColumns[7], LineItemsColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "default_currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		InvoicesTable,
		InvoiceFilesTable,
		LineItemsTable,
		ProfilesTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = InvoicesTable
	ExtractJobTable.ForeignKeys[1].RefTable = InvoiceFilesTable
	ExtractJobTable.ForeignKeys[2].RefTable = ProfilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	InvoicesTable.ForeignKeys[0].RefTable = ProfilesTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceFilesTable.ForeignKeys[0].RefTable = ProfilesTable
	InvoiceFilesTable.Annotation = &entsql.Annotation{
		Table: "invoice_files",
	}
	LineItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	LineItemsTable.Annotation = &entsql.Annotation{
		Table: "line_items",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
