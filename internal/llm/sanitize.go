package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"strconv"
	"strings"
)

var reDecimal = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)

// NormalizeAndSanitizeJSON
// - Renames known synonyms (bill_number -> invoice_number, ...)
// - Drops null/empty optionals
// - Coerces numeric -> string for money-ish fields
// - Normalizes parties and line items in place
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our shape
	renamed("bill_number", "invoice_number")
	renamed("invoice_no", "invoice_number")
	renamed("date", "invoice_date")
	renamed("total_amount", "total")
	renamed("tax_amount", "tax")
	renamed("items", "line_items")
	renamed("seller", "vendor")
	renamed("buyer", "customer")

	// 2) coerce money fields to strings; drop null / ""
	for _, k := range []string{"subtotal", "tax", "total"} {
		coerceDecimal(m, k, &dropped)
	}

	// 3) normalize currency casing
	if v, ok := m["currency_code"].(string); ok {
		s := strings.ToUpper(strings.TrimSpace(v))
		if s == "" {
			delete(m, "currency_code")
			dropped = append(dropped, "currency_code(empty)")
		} else {
			m["currency_code"] = s
		}
	}

	// 4) clean parties and line items
	for _, k := range []string{"vendor", "customer"} {
		if p, ok := m[k].(map[string]any); ok {
			sanitizeParty(p, k, &dropped)
			if len(p) == 0 {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			}
		} else if _, present := m[k]; present {
			delete(m, k)
			dropped = append(dropped, k+"(type)")
		}
	}
	if items, ok := m["line_items"].([]any); ok {
		kept := make([]any, 0, len(items))
		for i, it := range items {
			li, ok := it.(map[string]any)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("line_items[%d](type)", i))
				continue
			}
			sanitizeLineItem(li, i, &dropped)
			if _, has := li["description"]; !has {
				dropped = append(dropped, fmt.Sprintf("line_items[%d](no description)", i))
				continue
			}
			kept = append(kept, li)
		}
		if len(kept) == 0 {
			delete(m, "line_items")
		} else {
			m["line_items"] = kept
		}
	}

	// 5) remove unknown keys (everything not in the schema set below)
	allowed := map[string]struct{}{
		"invoice_number": {}, "invoice_date": {}, "due_date": {},
		"vendor": {}, "customer": {}, "line_items": {},
		"subtotal": {}, "tax": {}, "total": {}, "currency_code": {},
		"payment_terms": {}, "notes": {}, "confidence": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	// 6) trim obvious strings
	trimKeys := []string{"invoice_number", "invoice_date", "due_date", "payment_terms", "notes"}
	for _, k := range trimKeys {
		if v, ok := m[k].(string); ok {
			s := strings.TrimSpace(v)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", strings.Join(dropped, ","))
	}
	return out, dropped, nil
}

func sanitizeParty(p map[string]any, prefix string, dropped *[]string) {
	for _, k := range []string{"name", "tax_id", "email", "phone"} {
		if v, ok := p[k]; ok {
			s, isStr := v.(string)
			if !isStr || strings.TrimSpace(s) == "" {
				delete(p, k)
				*dropped = append(*dropped, prefix+"."+k)
				continue
			}
			p[k] = strings.TrimSpace(s)
		}
	}
	for k := range maps.Clone(p) {
		switch k {
		case "name", "tax_id", "email", "phone", "address":
		default:
			delete(p, k)
			*dropped = append(*dropped, prefix+"."+k+"(unknown)")
		}
	}
	if addr, ok := p["address"]; ok {
		switch t := addr.(type) {
		case map[string]any:
			for k, v := range maps.Clone(t) {
				s, isStr := v.(string)
				switch {
				case k != "street" && k != "city" && k != "state" && k != "zip_code" && k != "country":
					delete(t, k)
				case !isStr || strings.TrimSpace(s) == "":
					delete(t, k)
				default:
					t[k] = strings.TrimSpace(s)
				}
			}
			if len(t) == 0 {
				delete(p, "address")
				*dropped = append(*dropped, prefix+".address(empty)")
			}
		case string:
			// models sometimes flatten the address; keep it as the street line
			s := strings.TrimSpace(t)
			if s == "" {
				delete(p, "address")
				*dropped = append(*dropped, prefix+".address(empty)")
			} else {
				p["address"] = map[string]any{"street": s}
			}
		default:
			delete(p, "address")
			*dropped = append(*dropped, prefix+".address(type)")
		}
	}
}

func sanitizeLineItem(li map[string]any, idx int, dropped *[]string) {
	prefix := fmt.Sprintf("line_items[%d]", idx)
	if v, ok := li["description"].(string); ok {
		s := strings.TrimSpace(v)
		if s == "" {
			delete(li, "description")
		} else {
			li["description"] = s
		}
	}
	for _, k := range []string{"quantity", "unit_price", "total", "tax_rate"} {
		coerceDecimalPrefixed(li, k, prefix, dropped)
	}
	for k := range maps.Clone(li) {
		switch k {
		case "description", "quantity", "unit_price", "total", "tax_rate":
		default:
			delete(li, k)
			*dropped = append(*dropped, prefix+"."+k+"(unknown)")
		}
	}
}

func coerceDecimal(m map[string]any, k string, dropped *[]string) {
	coerceDecimalPrefixed(m, k, "", dropped)
}

func coerceDecimalPrefixed(m map[string]any, k, prefix string, dropped *[]string) {
	label := k
	if prefix != "" {
		label = prefix + "." + k
	}
	v, ok := m[k]
	if !ok {
		return
	}
	switch t := v.(type) {
	case float64:
		m[k] = fmt.Sprintf("%.2f", t)
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimLeft(s, "$€£ ")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" || strings.EqualFold(s, "null") {
			delete(m, k)
			*dropped = append(*dropped, label+"(empty)")
			return
		}
		if reDecimal.MatchString(s) {
			m[k] = s
			return
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			m[k] = fmt.Sprintf("%.2f", f)
		} else {
			delete(m, k)
			*dropped = append(*dropped, label+"(format)")
		}
	case nil:
		delete(m, k)
		*dropped = append(*dropped, label+"(null)")
	default:
		// unexpected type -> drop
		delete(m, k)
		*dropped = append(*dropped, label+"(type)")
	}
}
