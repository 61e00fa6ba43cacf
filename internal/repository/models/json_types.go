package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringSlice stores a []string as a JSON column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	bytesToParse, err := coerceJSONBytes(value)
	if err != nil {
		return fmt.Errorf("StringSlice: %w", err)
	}
	if bytesToParse == nil {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// IntMap stores a map[string]int (category scores) as a JSON column.
type IntMap map[string]int

func (m IntMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (m *IntMap) Scan(value interface{}) error {
	bytesToParse, err := coerceJSONBytes(value)
	if err != nil {
		return fmt.Errorf("IntMap: %w", err)
	}
	if bytesToParse == nil {
		*m = IntMap{}
		return nil
	}
	return json.Unmarshal(bytesToParse, m)
}

// AnswerMap stores a question-id → selected-values map as a JSON column.
type AnswerMap map[string][]string

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

func (m *AnswerMap) Scan(value interface{}) error {
	bytesToParse, err := coerceJSONBytes(value)
	if err != nil {
		return fmt.Errorf("AnswerMap: %w", err)
	}
	if bytesToParse == nil {
		*m = AnswerMap{}
		return nil
	}
	return json.Unmarshal(bytesToParse, m)
}

// coerceJSONBytes normalizes the driver value to raw JSON bytes. NULL, the
// empty string, and a literal "null" all mean "no data".
func coerceJSONBytes(value interface{}) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return nil, errors.New("unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	return b, nil
}
