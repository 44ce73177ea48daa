package schedmode

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the scheduling mode of a prompt. It is either Learning(step) or
// Review. Modes are immutable values; compare them with == for structural
// equality and with Compare for scheduling order.
//
// The zero Mode is Learning(0), a newly introduced prompt.
type Mode struct {
	review bool
	step   int // Always 0 when review is set.
}

// Learning returns the learning mode after step completed learning
// repetitions. Step 0 is a new prompt.
//
// A negative step is a programming error and panics with an error wrapping
// ErrNegativeStep. Use NewLearning for steps that come from untrusted input.
func Learning(step int) Mode {
	m, err := NewLearning(step)
	if err != nil {
		panic(err)
	}
	return m
}

// NewLearning is like Learning but returns ErrNegativeStep instead of
// panicking.
func NewLearning(step int) (Mode, error) {
	if step < 0 {
		return Mode{}, fmt.Errorf("%w: %d", ErrNegativeStep, step)
	}
	return Mode{step: step}, nil
}

// Review returns the review mode.
func Review() Mode {
	return Mode{review: true}
}

// Kind returns KindLearning or KindReview.
func (m Mode) Kind() Kind {
	if m.review {
		return KindReview
	}
	return KindLearning
}

// IsLearning reports whether m is a learning mode.
func (m Mode) IsLearning() bool { return !m.review }

// IsReview reports whether m is the review mode.
func (m Mode) IsReview() bool { return m.review }

// IsNew reports whether m is Learning(0).
func (m Mode) IsNew() bool { return !m.review && m.step == 0 }

// Step returns the learning step. ok is false for Review.
func (m Mode) Step() (step int, ok bool) {
	if m.review {
		return 0, false
	}
	return m.step, true
}

// String returns "review" or "learning(step: N)". The form is meant for logs
// and test failures; Parse reads it back.
func (m Mode) String() string {
	if m.review {
		return "review"
	}
	return "learning(step: " + strconv.Itoa(m.step) + ")"
}

// Parse parses the form produced by Mode.String.
func Parse(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "review" {
		return Review(), nil
	}
	inner, ok := strings.CutPrefix(s, "learning(step:")
	if !ok {
		return Mode{}, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return Mode{}, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	step, err := strconv.Atoi(strings.TrimSpace(inner))
	if err != nil {
		return Mode{}, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return NewLearning(step)
}
