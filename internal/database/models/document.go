package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSONDocument is a JSON object column stored without HTML escaping, so the
// serialized text contains values exactly as written ("&", "<", ">"
// included). Numbers decode as float64.
type JSONDocument map[string]interface{}

// Value implements driver.Valuer
func (d JSONDocument) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]interface{}(d)); err != nil {
		return nil, err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Scan implements sql.Scanner. Undecodable content is an error, never an
// empty document.
func (d *JSONDocument) Scan(val interface{}) error {
	var raw []byte
	switch v := val.(type) {
	case nil:
		*d = JSONDocument{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON document value of type %T", val)
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode JSON document: %w", err)
	}
	*d = doc
	return nil
}

// GormDataType gorm common data type
func (JSONDocument) GormDataType() string {
	return "json"
}

// GormDBDataType gorm db data type
func (JSONDocument) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	default:
		return "JSON"
	}
}
