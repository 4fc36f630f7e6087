// internal/game/evaluate.go
//
// Guess evaluation using the classic two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct and consume those target positions.
//
// Pass 2:
//   - For each remaining guess letter, consume the leftmost unconsumed target
//     position holding the same letter and mark Present; otherwise Absent.
//
// Each target letter satisfies at most one guess letter, so repeated letters
// in either word are scored correctly.

package game

// Evaluate compares guess against target and returns one LetterResult per
// guess letter, in guess order. Both words must already be normalized to the
// same case and have the same number of letters; a length mismatch yields nil.
func Evaluate(target, guess string) []LetterResult {
	t := []rune(target)
	g := []rune(guess)
	if len(t) != len(g) {
		return nil
	}

	res := make([]LetterResult, len(g))
	consumed := make([]bool, len(t))

	for i := range g {
		res[i].Letter = g[i]
		if g[i] == t[i] {
			res[i].Feedback = FeedbackCorrect
			consumed[i] = true
		}
	}

	for i := range g {
		if res[i].Feedback == FeedbackCorrect {
			continue
		}
		res[i].Feedback = FeedbackAbsent
		for j := range t {
			if !consumed[j] && t[j] == g[i] {
				consumed[j] = true
				res[i].Feedback = FeedbackPresent
				break
			}
		}
	}
	return res
}

// IsAllCorrect returns true if results is non-empty and every letter is Correct.
func IsAllCorrect(results []LetterResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if r.Feedback != FeedbackCorrect {
			return false
		}
	}
	return true
}
