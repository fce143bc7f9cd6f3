package manager

import (
	"net/url"
	"time"

	"menuboard/internal/catalog"
)

// FieldKind is the input type of one form field. The typing rules for
// extraction depend on the kind, not on the submitted value.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldDate
	FieldCheckbox
	FieldHidden
	FieldSelect
)

// FormField names one input in a form schema.
type FormField struct {
	Name string
	Kind FieldKind
}

// ItemForm is the manager item form. Field names match the catalog
// API's column spelling so the extracted map round-trips as-is.
// Nutrition inputs are number fields but stay strings by contract:
// the upstream store keeps numerics as strings.
var ItemForm = []FormField{
	{Name: "id", Kind: FieldHidden},
	{Name: "ITEM", Kind: FieldText},
	{Name: "CATEGORY", Kind: FieldSelect},
	{Name: "CAL", Kind: FieldNumber},
	{Name: "FAT", Kind: FieldNumber},
	{Name: "SFAT", Kind: FieldNumber},
	{Name: "TFAT", Kind: FieldNumber},
	{Name: "CHOL", Kind: FieldNumber},
	{Name: "SALT", Kind: FieldNumber},
	{Name: "CARB", Kind: FieldNumber},
	{Name: "FBR", Kind: FieldNumber},
	{Name: "SGR", Kind: FieldNumber},
	{Name: "PRO", Kind: FieldNumber},
}

// ExtractFormData turns submitted form values into a typed record
// following per-kind rules: checkboxes become booleans, blank text,
// number, date, and select fields become nil, dates become RFC 3339
// timestamps, and hidden fields pass through untouched. Number fields
// are never parsed; their literal string value is kept.
func ExtractFormData(schema []FormField, values url.Values) map[string]any {
	data := make(map[string]any, len(schema))

	for _, f := range schema {
		raw := values.Get(f.Name)

		switch f.Kind {
		case FieldCheckbox:
			data[f.Name] = raw == "on" || raw == "true"
		case FieldHidden:
			data[f.Name] = raw
		case FieldDate:
			if raw == "" {
				data[f.Name] = nil
				continue
			}
			t, err := time.Parse("2006-01-02", raw)
			if err != nil {
				data[f.Name] = nil
				continue
			}
			data[f.Name] = t.UTC().Format(time.RFC3339)
		default:
			if raw == "" {
				data[f.Name] = nil
			} else {
				data[f.Name] = raw
			}
		}
	}

	return data
}

// itemFromForm maps extracted form data onto a catalog record.
func itemFromForm(data map[string]any) catalog.MenuItem {
	item := catalog.MenuItem{}

	if id, ok := data["id"].(string); ok {
		item.ID = id
	}
	if name, ok := data["ITEM"].(string); ok {
		item.Item = name
	}
	if category, ok := data["CATEGORY"].(string); ok {
		item.Category = category
	}

	for _, f := range ItemForm {
		if f.Kind != FieldNumber {
			continue
		}
		if v, ok := data[f.Name].(string); ok {
			value := v
			item.SetNutrient(f.Name, &value)
		}
	}

	return item
}
