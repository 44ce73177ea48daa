package schedmode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Compile-time interface checks.
var (
	_ fmt.Stringer     = Mode{}
	_ json.Marshaler   = Mode{}
	_ json.Unmarshaler = (*Mode)(nil)
)

// MarshalJSON implements json.Marshaler. Learning modes encode as
// {"kind":"learning","step":N} and Review as {"kind":"review"}.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.record())
}

// UnmarshalJSON implements json.Unmarshaler. Decoding is strict: unknown
// fields, a missing kind, a learning mode without step, a review mode with
// step, JSON null and trailing data are all rejected.
func (m *Mode) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidMode)
	}

	var rec struct {
		Kind Kind `json:"kind"`
		Step *int `json:"step"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, ErrInvalidMode) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after mode", ErrInvalidMode)
	}

	v, err := modeFromRecord(rec.Kind, rec.Step)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
