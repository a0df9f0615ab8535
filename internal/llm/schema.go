package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the providers as an output constraint and also use it locally to validate.
func BuildInvoiceJSONSchema() map[string]any {
	party := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1},
			"address": addressSchema(),
			"tax_id":  map[string]any{"type": "string"},
			"email":   map[string]any{"type": "string"},
			"phone":   map[string]any{"type": "string"},
		},
		"required": []string{"name"},
	}

	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"quantity":    quantityProp(),
			"unit_price":  decimalProp(),
			"total":       decimalProp(),
			"tax_rate":    decimalProp(),
		},
		"required": []string{"description"},
	}

	props := map[string]any{
		"invoice_number": map[string]any{"type": "string", "minLength": 1},
		"invoice_date":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"due_date":       map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"vendor":         party,
		"customer":       party,
		"line_items":     map[string]any{"type": "array", "items": lineItem},
		"subtotal":       decimalProp(),
		"tax":            decimalProp(),
		"total":          decimalProp(),
		"currency_code":  map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"payment_terms":  map[string]any{"type": "string"},
		"notes":          map[string]any{"type": "string"},
		"confidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{"invoice_number", "invoice_date", "vendor", "total", "currency_code"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func addressSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"street":   map[string]any{"type": "string"},
			"city":     map[string]any{"type": "string"},
			"state":    map[string]any{"type": "string"},
			"zip_code": map[string]any{"type": "string"},
			"country":  map[string]any{"type": "string"},
		},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`, // allow negatives for credit notes
	}
}

func quantityProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,3})?$`, // quantities may carry three decimals
	}
}
