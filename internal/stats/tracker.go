package stats

import "time"

// trendWindow is the moving-average window applied to per-exercise WPM samples.
const trendWindow = 5

// CharTally counts attempts against one expected character.
type CharTally struct {
	Char      rune
	Correct   int
	Incorrect int
}

// Tracker accumulates the statistics of one drill run.
type Tracker struct {
	Correct    int
	Errors     int
	TotalChars int
	// StartTime is zero until the first character of the drill is typed.
	StartTime time.Time

	chars   map[rune]*CharTally
	samples []float64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{chars: map[rune]*CharTally{}}
}

// Reset clears every counter and the start time.
func (t *Tracker) Reset() {
	*t = Tracker{chars: map[rune]*CharTally{}}
}

// Started reports whether a start time has been recorded.
func (t Tracker) Started() bool {
	return !t.StartTime.IsZero()
}

// MarkStart records now as the start time unless one is already set.
func (t *Tracker) MarkStart(now time.Time) {
	if t.StartTime.IsZero() {
		t.StartTime = now
	}
}

// Hit records a correct keystroke for expected.
func (t *Tracker) Hit(expected rune) {
	t.Correct++
	t.tally(expected).Correct++
}

// Miss records a mistyped keystroke while expected was due.
func (t *Tracker) Miss(expected rune) {
	t.Errors++
	t.tally(expected).Incorrect++
}

// CompleteExercise adds a finished target of length chars and samples the current WPM.
func (t *Tracker) CompleteExercise(length int, now time.Time) {
	t.TotalChars += length
	t.samples = append(t.samples, t.WPM(now))
}

// Accuracy returns the accuracy percentage in [0,100].
func (t Tracker) Accuracy() float64 {
	return Accuracy(t.Correct, t.Errors)
}

// WPM returns the live words-per-minute measured against now.
func (t Tracker) WPM(now time.Time) float64 {
	if !t.Started() {
		return 0
	}
	return WPM(t.Correct, now.Sub(t.StartTime))
}

// Trend renders the smoothed per-exercise WPM samples as a sparkline.
func (t Tracker) Trend() string {
	return Sparkline(MovingAverage(t.samples, trendWindow))
}

// Tallies returns a copy of the per-character tallies.
func (t Tracker) Tallies() []CharTally {
	out := make([]CharTally, 0, len(t.chars))
	for _, tally := range t.chars {
		out = append(out, *tally)
	}
	return out
}

func (t *Tracker) tally(ch rune) *CharTally {
	if t.chars == nil {
		t.chars = map[rune]*CharTally{}
	}
	entry, ok := t.chars[ch]
	if !ok {
		entry = &CharTally{Char: ch}
		t.chars[ch] = entry
	}
	return entry
}
