// Package walker drives a lesson session: one cursor over a module's
// steps, input/reply buffers for the interactive steps, and
// write-through progress saves on forward navigation.
package walker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/storylab/storylab/internal/catalog"
	"github.com/storylab/storylab/internal/session"
)

// FallbackReply is shown when the coach cannot be reached. Submit
// never surfaces a transport error to the lesson flow.
const FallbackReply = "Sorry, I encountered an error. Please try again."

var (
	// ErrNoInput is returned by Submit when the input buffer is blank.
	ErrNoInput = errors.New("write something before asking for feedback")

	// ErrNotInteractive is returned by Submit on a tutorial step.
	ErrNotInteractive = errors.New("this step does not take feedback")

	// ErrBusy is returned while a feedback request is in flight.
	ErrBusy = errors.New("a feedback request is already in flight")
)

// FeedbackProvider is the coach surface the walker needs.
type FeedbackProvider interface {
	Feedback(ctx context.Context, seedPrompt, userText, contextLabel string) (string, error)
}

// ProgressTracker is the progress surface the walker needs.
type ProgressTracker interface {
	Load(sess session.Session, moduleID string) (map[string]struct{}, error)
	MarkComplete(sess session.Session, moduleID, stepID string) (map[string]struct{}, error)
}

// Walker is a single lesson session. It always starts at step zero;
// prior completion only drives the completed badges.
type Walker struct {
	module  catalog.Module
	sess    session.Session
	tracker ProgressTracker
	coach   FeedbackProvider
	logger  *slog.Logger

	mu        sync.Mutex
	idx       int
	input     string
	reply     string
	completed map[string]struct{}
	inFlight  bool
	// seq is bumped on every navigation. A submit captures it before
	// releasing the lock and applies its reply only if it is unchanged,
	// so a slow response can never land on a newer step.
	seq uint64
}

// New starts a session for module, pre-loading the completion set.
func New(module catalog.Module, sess session.Session, tracker ProgressTracker, coach FeedbackProvider) (*Walker, error) {
	if len(module.Steps) == 0 {
		return nil, fmt.Errorf("module %s has no steps", module.ID)
	}
	completed, err := tracker.Load(sess, module.ID)
	if err != nil {
		return nil, err
	}
	return &Walker{
		module:    module,
		sess:      sess,
		tracker:   tracker,
		coach:     coach,
		logger:    slog.Default(),
		completed: completed,
	}, nil
}

// Index returns the current zero-based step index.
func (w *Walker) Index() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.idx
}

// Step returns the current step.
func (w *Walker) Step() catalog.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.module.Steps[w.idx]
}

// StepCount returns the number of steps in the module.
func (w *Walker) StepCount() int {
	return len(w.module.Steps)
}

// AtEnd reports whether the cursor is on the last step.
func (w *Walker) AtEnd() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.idx == len(w.module.Steps)-1
}

// Completed reports whether stepID is in the completion set.
func (w *Walker) Completed(stepID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.completed[stepID]
	return ok
}

// CompletedCount returns the size of the completion set.
func (w *Walker) CompletedCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.completed)
}

// Input returns the current input buffer.
func (w *Walker) Input() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.input
}

// SetInput replaces the input buffer.
func (w *Walker) SetInput(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input = text
}

// Reply returns the last coach reply for the current step, if any.
func (w *Walker) Reply() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reply
}

// Next marks the current step complete, clears both buffers and
// advances the cursor. On the last step it is a no-op and reports
// false. The progress write happens before the cursor moves; if it
// fails the cursor stays put.
func (w *Walker) Next() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.idx >= len(w.module.Steps)-1 {
		return false, nil
	}

	step := w.module.Steps[w.idx]
	completed, err := w.tracker.MarkComplete(w.sess, w.module.ID, step.ID)
	if err != nil {
		return false, fmt.Errorf("saving progress: %w", err)
	}
	w.completed = completed
	w.idx++
	w.input = ""
	w.reply = ""
	w.seq++
	return true, nil
}

// Prev moves the cursor back one step and clears both buffers. It
// never removes anything from the completion set. On the first step it
// is a no-op and reports false.
func (w *Walker) Prev() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.idx == 0 {
		return false
	}
	w.idx--
	w.input = ""
	w.reply = ""
	w.seq++
	return true
}

// Submit sends the input buffer to the coach for the current step and
// returns the reply. Gateway failures never become errors here: the
// reply is FallbackReply and the cause is logged. The reply buffer is
// updated only if the user has not navigated away while the request
// was in flight; the returned string is always the outcome of this
// request.
func (w *Walker) Submit(ctx context.Context) (string, error) {
	w.mu.Lock()
	step := w.module.Steps[w.idx]
	if !step.Interactive() {
		w.mu.Unlock()
		return "", ErrNotInteractive
	}
	input := w.input
	if strings.TrimSpace(input) == "" {
		w.mu.Unlock()
		return "", ErrNoInput
	}
	if w.inFlight {
		w.mu.Unlock()
		return "", ErrBusy
	}
	w.inFlight = true
	seq := w.seq
	label := fmt.Sprintf("Module: %s, Step: %s", w.module.Title, step.Title)
	w.mu.Unlock()

	reply, err := w.coach.Feedback(ctx, step.AIPrompt, input, label)
	if err != nil {
		w.logger.Warn("feedback request failed",
			"module", w.module.ID, "step", step.ID, "error", err)
		reply = FallbackReply
	}

	w.mu.Lock()
	w.inFlight = false
	if w.seq == seq {
		w.reply = reply
	}
	w.mu.Unlock()
	return reply, nil
}
