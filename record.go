package schedmode

import "fmt"

// record is the keyed form shared by the JSON and YAML codecs.
type record struct {
	Kind Kind `json:"kind" yaml:"kind"`
	Step *int `json:"step,omitempty" yaml:"step,omitempty"`
}

func (m Mode) record() record {
	if m.review {
		return record{Kind: KindReview}
	}
	step := m.step
	return record{Kind: KindLearning, Step: &step}
}

// modeFromRecord validates a decoded record. Missing fields are errors; no
// default is substituted.
func modeFromRecord(kind Kind, step *int) (Mode, error) {
	switch kind {
	case KindLearning:
		if step == nil {
			return Mode{}, ErrMissingStep
		}
		return NewLearning(*step)
	case KindReview:
		if step != nil {
			return Mode{}, fmt.Errorf("%w: %d", ErrUnexpectedStep, *step)
		}
		return Review(), nil
	default:
		return Mode{}, fmt.Errorf("%w: missing kind", ErrInvalidMode)
	}
}
