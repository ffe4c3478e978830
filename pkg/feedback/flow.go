// Package feedback implements the star-rating capture flow: a small state
// machine that validates a rating/comment draft, hands it to a remote
// submitter fire-and-forget, and resets itself after a fixed display delay.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rferrer/mundi/pkg/log"
)

// State of the capture flow.
type State int

const (
	StateIdle State = iota
	StateRated
	StateSubmitting
	StatePostSubmit
)

// MaxRating is the number of stars in the control.
const MaxRating = 5

// ResetDelay is how long the acknowledgment stays visible before the flow
// clears itself back to idle.
const ResetDelay = 2 * time.Second

var (
	ErrBadRating      = errors.New("rating must be between 1 and 5")
	ErrMissingRating  = errors.New("select a rating first")
	ErrMissingComment = errors.New("comment must not be empty")
)

// Ack is the persistence collaborator's acknowledgment.
type Ack struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Submitter transmits a validated draft. The flow logs and otherwise ignores
// the returned error; modeling it explicitly keeps the failure path visible
// to implementers and tests.
type Submitter interface {
	Submit(ctx context.Context, rating int, comment string) (Ack, error)
}

// Surface receives the flow's render instructions.
type Surface interface {
	// SetDescription shows the textual rating description; empty clears it.
	SetDescription(text string)
	// SetStars marks the first n of the five star indicators active.
	SetStars(n int)
	ShowAck()
	HideAck()
	// Close hides the whole capture surface after the post-submit reset.
	Close()
}

// Flow owns the feedback draft. Submission clears the draft back to its zero
// state on a delay, successful transmission or not.
type Flow struct {
	mu      sync.Mutex
	state   State
	rating  int
	comment string

	submitter Submitter
	surface   Surface

	resetDelay time.Duration
	afterFunc  func(time.Duration, func())
}

// NewFlow creates an idle flow. surface may be nil for headless use.
func NewFlow(submitter Submitter, surface Surface) *Flow {
	return &Flow{
		submitter:  submitter,
		surface:    surface,
		resetDelay: ResetDelay,
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// SetResetTimer overrides the delay scheduling, used by tests to trigger the
// reset synchronously.
func (f *Flow) SetResetTimer(fn func(time.Duration, func())) {
	f.afterFunc = fn
}

// SetRating records a star rating. Only 1..MaxRating is valid.
func (f *Flow) SetRating(n int) error {
	if n < 1 || n > MaxRating {
		return ErrBadRating
	}
	f.mu.Lock()
	f.rating = n
	f.state = StateRated
	f.mu.Unlock()

	if f.surface != nil {
		f.surface.SetStars(n)
		f.surface.SetDescription(describeRating(n))
	}
	return nil
}

// SetComment updates the draft comment text.
func (f *Flow) SetComment(text string) {
	f.mu.Lock()
	f.comment = text
	f.mu.Unlock()
}

// Rating returns the current draft rating; 0 means unselected.
func (f *Flow) Rating() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rating
}

// Comment returns the current draft comment.
func (f *Flow) Comment() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comment
}

// CurrentState returns the flow state.
func (f *Flow) CurrentState() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates the draft and hands it to the submitter. Validation
// failures abort with no state change and no remote call. Once validation
// passes the flow always reaches the post-submit display: the transmission
// runs fire-and-forget and its outcome is only logged.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.rating == 0 {
		f.mu.Unlock()
		return ErrMissingRating
	}
	if strings.TrimSpace(f.comment) == "" {
		f.mu.Unlock()
		return ErrMissingComment
	}
	rating, comment := f.rating, f.comment
	f.state = StateSubmitting
	f.mu.Unlock()

	go func() {
		if _, err := f.submitter.Submit(ctx, rating, comment); err != nil {
			log.ForComponent("feedback").Errorf("submitting feedback: %v", err)
		}
	}()

	f.mu.Lock()
	f.state = StatePostSubmit
	f.mu.Unlock()

	if f.surface != nil {
		f.surface.ShowAck()
	}
	f.afterFunc(f.resetDelay, f.reset)
	return nil
}

func (f *Flow) reset() {
	f.mu.Lock()
	f.rating = 0
	f.comment = ""
	f.state = StateIdle
	f.mu.Unlock()

	if f.surface != nil {
		f.surface.SetStars(0)
		f.surface.SetDescription("")
		f.surface.HideAck()
		f.surface.Close()
	}
}

func describeRating(n int) string {
	if n == 1 {
		return "rated 1 star"
	}
	return fmt.Sprintf("rated %d stars", n)
}
