package walker

import (
	"context"
	"errors"
	"testing"

	"github.com/storylab/storylab/internal/catalog"
	"github.com/storylab/storylab/internal/session"
)

// fakeTracker records MarkComplete calls in memory.
type fakeTracker struct {
	completed map[string]struct{}
	marks     []string
	loadErr   error
	markErr   error
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{completed: map[string]struct{}{}}
}

func (f *fakeTracker) Load(_ session.Session, _ string) (map[string]struct{}, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make(map[string]struct{}, len(f.completed))
	for id := range f.completed {
		out[id] = struct{}{}
	}
	return out, nil
}

func (f *fakeTracker) MarkComplete(_ session.Session, _ string, stepID string) (map[string]struct{}, error) {
	if f.markErr != nil {
		return nil, f.markErr
	}
	f.completed[stepID] = struct{}{}
	f.marks = append(f.marks, stepID)
	out := make(map[string]struct{}, len(f.completed))
	for id := range f.completed {
		out[id] = struct{}{}
	}
	return out, nil
}

// fakeCoach returns a canned reply, optionally blocking until released.
type fakeCoach struct {
	reply   string
	err     error
	calls   int
	started chan struct{}
	release chan struct{}
}

func (f *fakeCoach) Feedback(ctx context.Context, seed, userText, label string) (string, error) {
	f.calls++
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.reply, f.err
}

func testModule() catalog.Module {
	return catalog.Module{
		ID:    "plotting",
		Title: "Plotting",
		Steps: []catalog.Step{
			{ID: "intro", Title: "Intro", Kind: catalog.StepTutorial},
			{ID: "three-act", Title: "Three Acts", Kind: catalog.StepTutorial},
			{ID: "plot-your-story", Title: "Plot Your Story", Kind: catalog.StepExercise, AIPrompt: "seed"},
		},
	}
}

func newTestWalker(t *testing.T, tracker *fakeTracker, c *fakeCoach) *Walker {
	t.Helper()
	w, err := New(testModule(), session.Local(), tracker, c)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestStartsAtStepZero(t *testing.T) {
	tracker := newFakeTracker()
	tracker.completed["intro"] = struct{}{}
	tracker.completed["three-act"] = struct{}{}

	w := newTestWalker(t, tracker, &fakeCoach{})
	if w.Index() != 0 {
		t.Errorf("Index = %d, want 0 regardless of prior progress", w.Index())
	}
	if !w.Completed("intro") {
		t.Error("prior completion not loaded for badges")
	}
}

func TestNextMarksAndAdvances(t *testing.T) {
	tracker := newFakeTracker()
	w := newTestWalker(t, tracker, &fakeCoach{})
	w.SetInput("draft")

	moved, err := w.Next()
	if err != nil || !moved {
		t.Fatalf("Next = %v, %v", moved, err)
	}
	if w.Index() != 1 {
		t.Errorf("Index = %d, want 1", w.Index())
	}
	if len(tracker.marks) != 1 || tracker.marks[0] != "intro" {
		t.Errorf("marks = %v, want [intro]", tracker.marks)
	}
	if w.Input() != "" || w.Reply() != "" {
		t.Error("buffers not cleared on Next")
	}
}

func TestNextNoOpAtLastStep(t *testing.T) {
	tracker := newFakeTracker()
	w := newTestWalker(t, tracker, &fakeCoach{})
	w.Next()
	w.Next()

	moved, err := w.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if moved {
		t.Error("Next advanced past the last step")
	}
	// The last step is never marked by Next.
	for _, id := range tracker.marks {
		if id == "plot-your-story" {
			t.Error("last step marked complete by Next")
		}
	}
}

func TestNextStaysPutOnSaveFailure(t *testing.T) {
	tracker := newFakeTracker()
	tracker.markErr = errors.New("disk full")
	w := newTestWalker(t, tracker, &fakeCoach{})

	moved, err := w.Next()
	if err == nil || moved {
		t.Fatalf("Next = %v, %v; want error and no move", moved, err)
	}
	if w.Index() != 0 {
		t.Errorf("Index = %d after failed save, want 0", w.Index())
	}
}

func TestPrevClearsButNeverUnmarks(t *testing.T) {
	tracker := newFakeTracker()
	w := newTestWalker(t, tracker, &fakeCoach{})
	w.Next()
	w.SetInput("notes")

	if !w.Prev() {
		t.Fatal("Prev reported no-op")
	}
	if w.Index() != 0 {
		t.Errorf("Index = %d, want 0", w.Index())
	}
	if w.Input() != "" || w.Reply() != "" {
		t.Error("buffers not cleared on Prev")
	}
	if !w.Completed("intro") {
		t.Error("Prev removed a completion")
	}

	if w.Prev() {
		t.Error("Prev moved before the first step")
	}
}

func TestSubmitTutorialRejected(t *testing.T) {
	w := newTestWalker(t, newFakeTracker(), &fakeCoach{})
	w.SetInput("text")
	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrNotInteractive) {
		t.Fatalf("Submit on tutorial = %v, want ErrNotInteractive", err)
	}
}

func TestSubmitBlankRejected(t *testing.T) {
	c := &fakeCoach{reply: "hi"}
	w := newTestWalker(t, newFakeTracker(), c)
	w.Next()
	w.Next() // on the exercise step
	w.SetInput("   ")
	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrNoInput) {
		t.Fatalf("Submit with blank input = %v, want ErrNoInput", err)
	}
	if c.calls != 0 {
		t.Errorf("coach called %d times for blank input", c.calls)
	}
}

func TestSubmitAppliesReply(t *testing.T) {
	c := &fakeCoach{reply: "Nice outline!"}
	w := newTestWalker(t, newFakeTracker(), c)
	w.Next()
	w.Next()
	w.SetInput("act one, act two, act three")

	reply, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if reply != "Nice outline!" {
		t.Errorf("reply = %q", reply)
	}
	if w.Reply() != "Nice outline!" {
		t.Errorf("Reply buffer = %q", w.Reply())
	}
}

func TestSubmitFallbackOnGatewayFailure(t *testing.T) {
	c := &fakeCoach{err: errors.New("connection refused")}
	w := newTestWalker(t, newFakeTracker(), c)
	w.Next()
	w.Next()
	w.SetInput("my outline")

	reply, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit surfaced a gateway error: %v", err)
	}
	if reply != FallbackReply {
		t.Errorf("reply = %q, want fallback", reply)
	}
}

func TestSubmitSecondInFlightRejected(t *testing.T) {
	c := &fakeCoach{
		reply:   "slow reply",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := newTestWalker(t, newFakeTracker(), c)
	w.Next()
	w.Next()
	w.SetInput("my outline")

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Submit(context.Background())
	}()
	<-c.started

	if _, err := w.Submit(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("second Submit = %v, want ErrBusy", err)
	}
	close(c.release)
	<-done
}

func TestStaleReplyDiscardedAfterNavigation(t *testing.T) {
	c := &fakeCoach{
		reply:   "stale reply",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := newTestWalker(t, newFakeTracker(), c)
	w.Next()
	w.Next()
	w.SetInput("my outline")

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Submit(context.Background())
	}()
	<-c.started

	// Navigate away while the request is in flight.
	w.Prev()
	close(c.release)
	<-done

	if got := w.Reply(); got != "" {
		t.Errorf("stale reply landed on a newer step: %q", got)
	}
}
