package schedmode

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Kind identifies which variant a Mode holds. It is the "kind" field of the
// keyed mode record, where it appears as the string "learning" or "review".
type Kind int

const (
	KindLearning Kind = iota + 1 // Still working through learning steps.
	KindReview                   // Graduated to long-interval review.
)

var (
	kindNames  = [...]string{KindLearning: "learning", KindReview: "review"}
	kindByName = map[string]Kind{
		"learning": KindLearning,
		"review":   KindReview,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Kind(0)
	_ json.Marshaler           = Kind(0)
	_ json.Unmarshaler         = (*Kind)(nil)
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// IsValid reports whether k names one of the two mode variants.
func (k Kind) IsValid() bool {
	return k == KindLearning || k == KindReview
}

// String returns the wire name used in the "kind" field. Values outside the
// two variants render as "Kind(n)" so they stand out in logs.
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler. YAML uses it to write the
// "kind" field; only the two variants can be written.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidMode, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// exactly, so "Review" is not a kind.
func (k *Kind) UnmarshalText(text []byte) error {
	v, ok := kindByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: kind %q", ErrInvalidMode, text)
	}
	*k = v
	return nil
}

// MarshalJSON implements json.Marshaler, writing the "kind" field of
// {"kind":"learning","step":N} as a JSON string.
func (k Kind) MarshalJSON() ([]byte, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. A missing name, null or a
// non-string value is ErrInvalidMode, never a default kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: kind %s", ErrInvalidMode, data)
	}
	return k.UnmarshalText([]byte(s))
}
