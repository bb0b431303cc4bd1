package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// JSONMap is a free-form string-keyed mapping stored in a JSON column.
// Used for manager permissions, social media links and branding config.
type JSONMap map[string]interface{}

// Value implements driver.Valuer for JSON columns
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSON columns
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type %T for JSONMap", value)
	}
}

// DecimalMap is a string-keyed mapping of fixed-point amounts stored in a
// JSON column. Amounts are serialized as decimal strings, never floats, so
// values survive a round trip without precision loss.
type DecimalMap map[string]decimal.Decimal

// Value implements driver.Valuer for JSON columns
func (m DecimalMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSON columns
func (m *DecimalMap) Scan(value interface{}) error {
	if value == nil {
		*m = DecimalMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type %T for DecimalMap", value)
	}
}
