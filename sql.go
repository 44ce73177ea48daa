package schedmode

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Compile-time interface checks.
var (
	_ driver.Valuer = Mode{}
	_ sql.Scanner   = (*Mode)(nil)
)

// Value implements driver.Valuer. The mode is stored as its JSON form in a
// TEXT column.
func (m Mode) Value() (driver.Value, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner. It accepts TEXT and BLOB values holding the
// JSON form. NULL is an error; use sql.Null[Mode] for nullable columns.
func (m *Mode) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case nil:
		return fmt.Errorf("%w: NULL column", ErrInvalidMode)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidMode, src)
	}
	if err := json.Unmarshal(data, m); err != nil {
		if isModeError(err) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}
	return nil
}

func isModeError(err error) bool {
	return errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrNegativeStep) ||
		errors.Is(err, ErrMissingStep) ||
		errors.Is(err, ErrUnexpectedStep)
}
