package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(%s): %v", dir, err)
	}
	defer s.Close()
	if err := s.SetProgress("local", "storylab-brainstorming", `["intro"]`); err != nil {
		t.Fatalf("SetProgress: %v", err)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetProgress("local", "storylab-plotting"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetProgress on empty store = %v, want ErrNotFound", err)
	}

	if err := s.SetProgress("local", "storylab-plotting", `["intro"]`); err != nil {
		t.Fatalf("SetProgress: %v", err)
	}
	got, err := s.GetProgress("local", "storylab-plotting")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if got != `["intro"]` {
		t.Errorf("GetProgress = %q, want %q", got, `["intro"]`)
	}

	// Upsert replaces the value.
	if err := s.SetProgress("local", "storylab-plotting", `["intro","three-act"]`); err != nil {
		t.Fatalf("SetProgress (update): %v", err)
	}
	got, err = s.GetProgress("local", "storylab-plotting")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if got != `["intro","three-act"]` {
		t.Errorf("GetProgress after update = %q", got)
	}
}

func TestProgressScopedByProfile(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetProgress("alice", "storylab-plotting", `["intro"]`); err != nil {
		t.Fatalf("SetProgress: %v", err)
	}
	if _, err := s.GetProgress("local", "storylab-plotting"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other profile's record visible: %v", err)
	}
}

func TestDeleteProgress(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetProgress("local", "storylab-plotting", `["intro"]`); err != nil {
		t.Fatalf("SetProgress: %v", err)
	}
	if err := s.DeleteProgress("local", "storylab-plotting"); err != nil {
		t.Fatalf("DeleteProgress: %v", err)
	}
	if _, err := s.GetProgress("local", "storylab-plotting"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("record survived delete: %v", err)
	}
	// Deleting a missing record is fine.
	if err := s.DeleteProgress("local", "storylab-plotting"); err != nil {
		t.Fatalf("DeleteProgress (missing): %v", err)
	}
}

func TestExchanges(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		e := Exchange{
			ID:           uuid.New().String(),
			ProfileID:    "local",
			ContextLabel: "Module: Plotting, Step: Plot Your Story",
			UserText:     "my outline",
			Reply:        "nice outline",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.SaveExchange(e); err != nil {
			t.Fatalf("SaveExchange: %v", err)
		}
	}

	got, err := s.ListExchanges("local", 2)
	if err != nil {
		t.Fatalf("ListExchanges: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListExchanges returned %d, want 2", len(got))
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Errorf("exchanges not newest-first: %v then %v", got[0].CreatedAt, got[1].CreatedAt)
	}
}

func TestDownloads(t *testing.T) {
	s := newTestStore(t)
	d := Download{
		ID:        uuid.New().String(),
		ProfileID: "local",
		ModuleID:  "brainstorming",
		Variant:   "guide",
		CreatedAt: time.Now(),
	}
	if err := s.SaveDownload(d); err != nil {
		t.Fatalf("SaveDownload: %v", err)
	}
	got, err := s.ListDownloads("local", 10)
	if err != nil {
		t.Fatalf("ListDownloads: %v", err)
	}
	if len(got) != 1 || got[0].ModuleID != "brainstorming" || got[0].Variant != "guide" {
		t.Fatalf("ListDownloads = %+v", got)
	}
}

func TestAwardAchievementOnce(t *testing.T) {
	s := newTestStore(t)
	a := Achievement{
		ID:        uuid.New().String(),
		ProfileID: "local",
		Kind:      AchievementModuleComplete,
		ModuleID:  "plotting",
		EarnedAt:  time.Now(),
	}
	awarded, err := s.AwardAchievement(a)
	if err != nil {
		t.Fatalf("AwardAchievement: %v", err)
	}
	if !awarded {
		t.Fatal("first award reported as duplicate")
	}

	a.ID = uuid.New().String()
	awarded, err = s.AwardAchievement(a)
	if err != nil {
		t.Fatalf("AwardAchievement (repeat): %v", err)
	}
	if awarded {
		t.Fatal("duplicate award reported as new")
	}

	got, err := s.ListAchievements("local")
	if err != nil {
		t.Fatalf("ListAchievements: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListAchievements returned %d, want 1", len(got))
	}
}

func TestMigrationsApplied(t *testing.T) {
	s := newTestStore(t)
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&n); err != nil {
		t.Fatalf("querying schema_version: %v", err)
	}
	if n == 0 {
		t.Fatal("no migrations recorded")
	}
}
