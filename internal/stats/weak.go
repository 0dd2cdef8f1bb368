package stats

import "sort"

// SelectWeakChars returns up to top characters with at least one miss,
// lowest accuracy first.
func SelectWeakChars(tallies []CharTally, top int) []rune {
	candidates := make([]CharTally, 0, len(tallies))
	for _, tally := range tallies {
		if tally.Incorrect > 0 {
			candidates = append(candidates, tally)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := accuracy(candidates[i])
		aj := accuracy(candidates[j])
		if ai == aj {
			return candidates[i].Char < candidates[j].Char
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	out := make([]rune, 0, top)
	for i := 0; i < top; i++ {
		out = append(out, candidates[i].Char)
	}
	return out
}

func accuracy(tally CharTally) float64 {
	total := tally.Correct + tally.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(tally.Correct) / float64(total)
}
