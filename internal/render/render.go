// Package render projects raw record values into display-ready cells
// according to the declared type of their field.
package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"crm-builder-backend/internal/database/models"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind tells the client which widget a cell needs
type Kind string

const (
	KindEmpty   Kind = "empty"
	KindText    Kind = "text"
	KindChoice  Kind = "choice"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindDate    Kind = "date"
	KindLink    Kind = "link"
)

// EmptyPlaceholder is shown for absent or null values
const EmptyPlaceholder = "-"

// DateLayout is the calendar-date format of date cells
const DateLayout = "Jan 2, 2006"

// DefaultCurrency applies to currency fields without options.currency
const DefaultCurrency = "USD"

// Cell is the render-ready form of one record value
type Cell struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Text    string `json:"text"`
	Label   string `json:"label,omitempty"`
	Color   string `json:"color,omitempty"`
	Href    string `json:"href,omitempty"`
	Checked *bool  `json:"checked,omitempty"`
	Raw     any    `json:"raw"`
}

var printer = message.NewPrinter(language.English)

// Value renders a single raw value for field
func Value(field models.Field, raw any) Cell {
	cell := Cell{Field: field.Name, Raw: raw}
	if IsEmpty(raw) {
		cell.Kind = KindEmpty
		cell.Text = EmptyPlaceholder
		return cell
	}

	switch field.Type {
	case models.FieldTypeSelect:
		s := Stringify(raw)
		if choice, ok := field.Options.Data().Choice(s); ok {
			cell.Kind = KindChoice
			cell.Text = choice.Label
			cell.Label = choice.Label
			cell.Color = choice.Color
			return cell
		}
		cell.Kind = KindText
		cell.Text = s

	case models.FieldTypeCheckbox:
		checked := Truthy(raw)
		cell.Kind = KindBoolean
		cell.Checked = &checked
		cell.Text = strconv.FormatBool(checked)

	case models.FieldTypeNumber:
		n, ok := Number(raw)
		if !ok {
			return textCell(cell, raw)
		}
		cell.Kind = KindNumber
		cell.Text = strconv.FormatFloat(n, 'f', -1, 64)

	case models.FieldTypeCurrency:
		n, ok := Number(raw)
		if !ok {
			return textCell(cell, raw)
		}
		cell.Kind = KindNumber
		cell.Text = formatCurrency(n, field.Options.Data().Currency)

	case models.FieldTypeDate:
		t, ok := Date(raw)
		if !ok {
			return textCell(cell, raw)
		}
		cell.Kind = KindDate
		cell.Text = t.Format(DateLayout)

	case models.FieldTypeEmail:
		cell.Kind = KindLink
		cell.Text = Stringify(raw)
		cell.Href = "mailto:" + cell.Text

	case models.FieldTypeURL:
		cell.Kind = KindLink
		cell.Text = Stringify(raw)
		cell.Href = cell.Text

	default:
		return textCell(cell, raw)
	}
	return cell
}

// Record renders every field of a record in field order
func Record(fields []models.Field, data map[string]any) []Cell {
	cells := make([]Cell, 0, len(fields))
	for _, f := range fields {
		cells = append(cells, Value(f, data[f.Name]))
	}
	return cells
}

func textCell(cell Cell, raw any) Cell {
	cell.Kind = KindText
	cell.Text = Stringify(raw)
	return cell
}

func formatCurrency(n float64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%.2f", n)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return unit.String() + " " + printer.Sprintf(fmt.Sprintf("%%.%df", scale), n)
}

// IsEmpty reports whether raw counts as no value at all
func IsEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}

// Stringify coerces any JSON value to its display string
func Stringify(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
	return fmt.Sprint(raw)
}

// Truthy reports the boolean meaning of a checkbox value
func Truthy(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		return strings.TrimSpace(v) != ""
	}
	if n, ok := Number(raw); ok {
		return n != 0 && !math.IsNaN(n)
	}
	return true
}

// Number extracts a finite float from numeric JSON values and numeric strings
func Number(raw any) (float64, bool) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date interprets epoch milliseconds or an ISO-8601 string as a UTC time
func Date(raw any) (time.Time, bool) {
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
	}
	if n, ok := Number(raw); ok {
		return time.UnixMilli(int64(n)).UTC(), true
	}
	return time.Time{}, false
}
