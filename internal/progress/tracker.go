// Package progress tracks which lesson steps a profile has completed.
// Each module has one record keyed "storylab-<moduleId>" holding a JSON
// array of completed step ids.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/storylab/storylab/internal/session"
	"github.com/storylab/storylab/internal/storage"
)

const keyPrefix = "storylab-"

// ProgressStore is the storage surface the tracker needs.
// Implemented by *storage.Store.
type ProgressStore interface {
	GetProgress(profileID, key string) (string, error)
	SetProgress(profileID, key, value string) error
	DeleteProgress(profileID, key string) error
}

// Tracker reads and writes per-module completion records. Completed
// step ids form a set: marking a step twice never grows the record,
// and duplicates written by older clients are collapsed on read.
type Tracker struct {
	store ProgressStore
}

func NewTracker(store ProgressStore) *Tracker {
	return &Tracker{store: store}
}

func recordKey(moduleID string) string {
	return keyPrefix + moduleID
}

// Load returns the set of completed step ids for a module. A missing
// record is an empty set, not an error.
func (t *Tracker) Load(sess session.Session, moduleID string) (map[string]struct{}, error) {
	_, set, err := t.load(sess, moduleID)
	return set, err
}

// load returns the completed ids in stored order (deduplicated) plus
// the same ids as a set.
func (t *Tracker) load(sess session.Session, moduleID string) ([]string, map[string]struct{}, error) {
	raw, err := t.store.GetProgress(sess.Profile(), recordKey(moduleID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading progress for %s: %w", moduleID, err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, nil, fmt.Errorf("corrupt progress record for %s: %w", moduleID, err)
	}

	ordered := make([]string, 0, len(ids))
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := set[id]; ok {
			continue
		}
		set[id] = struct{}{}
		ordered = append(ordered, id)
	}
	return ordered, set, nil
}

// MarkComplete adds stepID to the module's completion set and writes
// the record through synchronously. It returns the updated set.
func (t *Tracker) MarkComplete(sess session.Session, moduleID, stepID string) (map[string]struct{}, error) {
	ordered, set, err := t.load(sess, moduleID)
	if err != nil {
		return nil, err
	}

	if _, ok := set[stepID]; !ok {
		ordered = append(ordered, stepID)
		set[stepID] = struct{}{}
	}

	raw, err := json.Marshal(ordered)
	if err != nil {
		return nil, fmt.Errorf("encoding progress for %s: %w", moduleID, err)
	}
	if err := t.store.SetProgress(sess.Profile(), recordKey(moduleID), string(raw)); err != nil {
		return nil, fmt.Errorf("saving progress for %s: %w", moduleID, err)
	}
	return set, nil
}

// IsModuleComplete reports whether every one of totalSteps steps has
// been completed. Modules with no steps are never complete.
func (t *Tracker) IsModuleComplete(sess session.Session, moduleID string, totalSteps int) (bool, error) {
	if totalSteps <= 0 {
		return false, nil
	}
	set, err := t.Load(sess, moduleID)
	if err != nil {
		return false, err
	}
	return len(set) == totalSteps, nil
}

// Clear removes the module's progress record.
func (t *Tracker) Clear(sess session.Session, moduleID string) error {
	if err := t.store.DeleteProgress(sess.Profile(), recordKey(moduleID)); err != nil {
		return fmt.Errorf("clearing progress for %s: %w", moduleID, err)
	}
	return nil
}
