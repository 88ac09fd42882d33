package risk

import (
	"time"

	"github.com/kirakulakov/risk-management/internal/domain"
)

// LookupView is the public shape of one resolved taxonomy reference.
type LookupView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ScaleView is a resolved weighted-scale reference (probability, impact).
type ScaleView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RiskView is the public representation of one risk with every foreign-key
// id resolved into a nested object. Probability and Impact are nil when
// the risk has none.
type RiskView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Comment     *string    `json:"comment"`
	Factor      LookupView `json:"factor"`
	Type        LookupView `json:"type"`
	Method      LookupView `json:"method"`
	Status      LookupView `json:"status"`
	Probability *ScaleView `json:"probability"`
	Impact      *ScaleView `json:"impact"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ListRisksResult is one page of resolved risks.
type ListRisksResult struct {
	Risks  []RiskView
	Limit  int
	Offset int
}

// HistoryEntryView is the public shape of one audit record.
type HistoryEntryView struct {
	ID        int64     `json:"id"`
	Field     string    `json:"updated_field"`
	OldValue  *string   `json:"old_value"`
	NewValue  string    `json:"new_value"`
	PrevID    *int64    `json:"prev_history_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResult is one page of a risk's audit trail, most recent first.
type HistoryResult struct {
	Entries []HistoryEntryView
	Total   int
	Limit   int
	Offset  int
}

func lookupView(l domain.Lookup) LookupView {
	return LookupView{ID: l.ID, Name: l.Name}
}

func scaleView(l domain.Lookup) ScaleView {
	v := ScaleView{ID: l.ID, Name: l.Name}
	if l.Value != nil {
		v.Value = *l.Value
	}
	return v
}

func historyView(e domain.HistoryEntry) HistoryEntryView {
	return HistoryEntryView{
		ID:        e.ID,
		Field:     e.Field,
		OldValue:  e.OldValue,
		NewValue:  e.NewValue,
		PrevID:    e.PrevID,
		CreatedAt: e.CreatedAt,
	}
}
