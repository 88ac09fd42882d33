package domain

import "time"

// HistoryEntry is one audit record of a single field change on a risk.
// Entries for a risk form a singly linked reverse-chronological chain via
// PrevID: the most recent entry has the largest ID, and walking PrevID
// pointers visits every earlier entry in order, ending at nil.
//
// For foreign-key fields the stored values are the resolved display names
// at the time of the change, not raw ids.
type HistoryEntry struct {
	ID        int64
	RiskID    string
	AccountID int64
	Field     string
	OldValue  *string
	NewValue  string
	PrevID    *int64
	CreatedAt time.Time
}
