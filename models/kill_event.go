package models

import "time"

// KillEvent represents one stored kill-or-death occurrence from the Albion
// event feed. IsKill is relative to InvolvedMember: true when that member was
// the killer, false when they were the victim.
type KillEvent struct {
	ID             int64
	EventID        int64
	KillerName     string
	KillerID       string
	VictimName     string
	VictimID       string
	Fame           int64
	EventTime      time.Time
	InvolvedMember string
	IsKill         bool
	CreatedAt      time.Time
}
