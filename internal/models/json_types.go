package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

// StringArray is a custom type for handling TEXT[] columns in PostgreSQL
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return pq.Array(a).Value()
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	slice := (*[]string)(a)
	return pq.Array(slice).Scan(src)
}

// QualificationMap maps a qualification category key to the entries an
// employee holds in that category. Stored as a JSONB column.
type QualificationMap map[string][]QualificationEntry

// Value implements the driver.Valuer interface
func (m QualificationMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *QualificationMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into QualificationMap", src)
	}
	return json.Unmarshal(data, m)
}
