package schedmode

import "github.com/rs/zerolog"

var _ zerolog.LogObjectMarshaler = Mode{}

// MarshalZerologObject implements zerolog.LogObjectMarshaler, so a mode logged
// with Event.Object carries kind and step as separate fields.
func (m Mode) MarshalZerologObject(e *zerolog.Event) {
	e.Str("kind", m.Kind().String())
	if !m.review {
		e.Int("step", m.step)
	}
}
