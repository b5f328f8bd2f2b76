package render

import (
	"encoding/json"
	"testing"

	"crm-builder-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func field(name string, t models.FieldType, opts models.FieldOptions) models.Field {
	return models.Field{Name: name, Type: t, Options: datatypes.NewJSONType(opts)}
}

func TestValue_Select(t *testing.T) {
	status := field("status", models.FieldTypeSelect, models.FieldOptions{
		Choices: []models.Choice{{Value: "new", Label: "New", Color: "#3b82f6"}},
	})

	matched := Value(status, "new")
	assert.Equal(t, KindChoice, matched.Kind)
	assert.Equal(t, "New", matched.Label)
	assert.Equal(t, "#3b82f6", matched.Color)

	unmatched := Value(status, "bogus")
	assert.Equal(t, KindText, unmatched.Kind)
	assert.Equal(t, "bogus", unmatched.Text)
	assert.Empty(t, unmatched.Color)
}

func TestValue_EmptyValues(t *testing.T) {
	for _, ft := range models.FieldTypes {
		t.Run(string(ft), func(t *testing.T) {
			f := field("x", ft, models.FieldOptions{})
			for _, raw := range []any{nil, "", "   "} {
				cell := Value(f, raw)
				assert.Equal(t, KindEmpty, cell.Kind)
				assert.Equal(t, EmptyPlaceholder, cell.Text)
				assert.NotContains(t, cell.Text, "null")
				assert.NotContains(t, cell.Text, "undefined")
			}
		})
	}
}

func TestValue_Checkbox(t *testing.T) {
	f := field("vip", models.FieldTypeCheckbox, models.FieldOptions{})
	tests := []struct {
		raw  any
		want bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"false", false},
		{"yes", true},
		{float64(0), false},
		{float64(2), true},
		{json.Number("1"), true},
	}
	for _, tt := range tests {
		cell := Value(f, tt.raw)
		require.NotNil(t, cell.Checked)
		assert.Equal(t, tt.want, *cell.Checked, "%v", tt.raw)
		assert.Equal(t, KindBoolean, cell.Kind)
	}
}

func TestValue_Numbers(t *testing.T) {
	amount := field("amount", models.FieldTypeNumber, models.FieldOptions{})
	assert.Equal(t, "42.5", Value(amount, 42.5).Text)
	assert.Equal(t, "7", Value(amount, json.Number("7")).Text)
	assert.Equal(t, "1234567", Value(amount, "1234567").Text)

	notNumeric := Value(amount, "lots")
	assert.Equal(t, KindText, notNumeric.Kind)
	assert.Equal(t, "lots", notNumeric.Text)
}

func TestValue_CurrencyIsGrouped(t *testing.T) {
	usd := field("value", models.FieldTypeCurrency, models.FieldOptions{})
	cell := Value(usd, 1234567.5)
	assert.Equal(t, KindNumber, cell.Kind)
	assert.Equal(t, "USD 1,234,567.50", cell.Text)

	yen := field("value", models.FieldTypeCurrency, models.FieldOptions{Currency: "JPY"})
	assert.Equal(t, "JPY 1,500", Value(yen, 1500).Text)
}

func TestValue_Date(t *testing.T) {
	due := field("due", models.FieldTypeDate, models.FieldOptions{})

	assert.Equal(t, "Jan 15, 2024", Value(due, "2024-01-15").Text)
	assert.Equal(t, "Jan 15, 2024", Value(due, "2024-01-15T10:30:00Z").Text)
	// 2024-01-15T00:00:00Z in epoch milliseconds
	assert.Equal(t, "Jan 15, 2024", Value(due, float64(1705276800000)).Text)
	assert.Equal(t, "Jan 15, 2024", Value(due, json.Number("1705276800000")).Text)

	bad := Value(due, "someday")
	assert.Equal(t, KindText, bad.Kind)
	assert.Equal(t, "someday", bad.Text)
}

func TestValue_Links(t *testing.T) {
	email := Value(field("email", models.FieldTypeEmail, models.FieldOptions{}), "a@example.com")
	assert.Equal(t, KindLink, email.Kind)
	assert.Equal(t, "mailto:a@example.com", email.Href)

	site := Value(field("site", models.FieldTypeURL, models.FieldOptions{}), "https://example.com")
	assert.Equal(t, KindLink, site.Kind)
	assert.Equal(t, "https://example.com", site.Href)
}

func TestValue_DefaultCoercesToString(t *testing.T) {
	name := field("name", models.FieldTypeText, models.FieldOptions{})
	assert.Equal(t, "12", Value(name, float64(12)).Text)
	assert.Equal(t, "true", Value(name, true).Text)
	assert.Equal(t, `{"a":1}`, Value(name, map[string]any{"a": 1}).Text)
}

func TestRecord_FollowsFieldOrder(t *testing.T) {
	fields := []models.Field{
		field("b", models.FieldTypeText, models.FieldOptions{}),
		field("a", models.FieldTypeText, models.FieldOptions{}),
	}
	cells := Record(fields, map[string]any{"a": "first", "extra": "ignored"})
	require.Len(t, cells, 2)
	assert.Equal(t, "b", cells[0].Field)
	assert.Equal(t, KindEmpty, cells[0].Kind)
	assert.Equal(t, "first", cells[1].Text)
}
