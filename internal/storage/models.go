package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Exchange is one recorded conversation with the writing coach.
type Exchange struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profile_id"`
	ContextLabel string    `json:"context_label"`
	UserText     string    `json:"user_text"`
	Reply        string    `json:"reply"`
	CreatedAt    time.Time `json:"created_at"`
}

// Download records a generated PDF document.
type Download struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	ModuleID  string    `json:"module_id"`
	Variant   string    `json:"variant"`
	CreatedAt time.Time `json:"created_at"`
}

// AchievementModuleComplete is awarded once per (profile, module) when
// every step of a module has been completed.
const AchievementModuleComplete = "module_complete"

// Achievement is a one-time award for a profile.
type Achievement struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Kind      string    `json:"kind"`
	ModuleID  string    `json:"module_id,omitempty"`
	EarnedAt  time.Time `json:"earned_at"`
}
