// Package feedback scores a guess against the secret code.
package feedback

import (
	"mastermind/pkg/game/code"
)

// Evaluate compares guess with secret and returns the number of exact
// matches and the number of symbols present at a different position.
//
// Partial matches are counted as a multiset intersection of the symbols
// left over after exact matches, so each secret peg satisfies at most one
// guess peg and vice versa.
func Evaluate(guess, secret code.Code) code.Feedback {
	var fb code.Feedback

	// First pass: exact matches, and counts for the secret pegs left over.
	remaining := make(map[code.Symbol]int, code.Length)
	var exact [code.Length]bool
	for i := range guess {
		if guess[i] == secret[i] {
			fb.Exact++
			exact[i] = true
		} else {
			remaining[secret[i]]++
		}
	}

	// Second pass: each leftover guess peg consumes one leftover secret peg.
	for i, s := range guess {
		if exact[i] {
			continue
		}
		if remaining[s] > 0 {
			fb.Partial++
			remaining[s]--
		}
	}

	return fb
}
