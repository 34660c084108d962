//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/reducebench/internal/progress"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal
// spinner, decoupling DisplayProgress from a specific implementation and
// making it testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to satisfy the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner constructs the spinner used by DisplayProgress. Tests replace
// it with a mock factory.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState aggregates the per-strategy progress fractions into the
// single consolidated value the spinner suffix shows.
type ProgressState struct {
	progresses    []float64
	numStrategies int
}

// NewProgressState creates a state tracking numStrategies strategies.
func NewProgressState(numStrategies int) *ProgressState {
	return &ProgressState{
		progresses:    make([]float64, numStrategies),
		numStrategies: numStrategies,
	}
}

// Update records a new progress value for a strategy. Out-of-range indices
// are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked
// strategies.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numStrategies == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numStrategies)
}

// DisplayProgress consumes updates until the channel closes, driving a
// spinner whose suffix shows the consolidated completion percentage.
// It signals wg when the channel has been fully drained.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan progress.Update, numStrategies int, out io.Writer) {
	defer wg.Done()

	if numStrategies <= 0 {
		for range updates {
		}
		return
	}

	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(" Reducing...   0%")
	sp.Start()
	defer sp.Stop()

	state := NewProgressState(numStrategies)
	for u := range updates {
		state.Update(u.StrategyIndex, u.Value)
		sp.UpdateSuffix(fmt.Sprintf(" Reducing... %3.0f%%", state.CalculateAverage()*100))
	}
}
