package schedmode

// Compare returns -1 if a is less advanced than b, +1 if it is more advanced,
// and 0 otherwise. It has the signature slices.SortFunc expects.
//
// Learning modes order by step, every learning mode orders before Review,
// and Review compares equal to Review. Two review prompts are not
// distinguished by mode; break that tie with data from the prompt record.
func Compare(a, b Mode) int {
	switch {
	case !a.review && !b.review:
		switch {
		case a.step < b.step:
			return -1
		case a.step > b.step:
			return 1
		}
		return 0
	case !a.review && b.review:
		return -1
	case a.review && !b.review:
		return 1
	default:
		return 0
	}
}

// Compare is the method form of Compare(m, other).
func (m Mode) Compare(other Mode) int { return Compare(m, other) }

// Less reports whether m orders strictly before other.
func (m Mode) Less(other Mode) bool { return Compare(m, other) < 0 }

// Min returns the less advanced of a and b, or a when they compare equal.
func Min(a, b Mode) Mode {
	if Compare(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the more advanced of a and b, or a when they compare equal.
func Max(a, b Mode) Mode {
	if Compare(b, a) > 0 {
		return b
	}
	return a
}
