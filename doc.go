// Package schedmode implements the scheduling mode of a spaced repetition
// prompt: whether the prompt is still in its learning phase or has graduated
// to review.
//
// A Mode is an immutable, comparable value. Learning modes carry the number
// of completed learning steps; Review carries nothing. Modes are totally
// ordered so a scheduler can sort prompts least advanced first:
//
//	modes := []schedmode.Mode{schedmode.Review(), schedmode.Learning(2), schedmode.Learning(0)}
//	slices.SortFunc(modes, schedmode.Compare)
//	// learning(step: 0), learning(step: 2), review
//
// All learning modes order before Review, and Review compares equal to
// Review. Callers that need to tell review prompts apart must break the tie
// themselves, typically by due date.
//
// Modes round-trip through JSON, YAML and SQL columns using the keyed form
// {"kind": "learning", "step": N} or {"kind": "review"}.
package schedmode
