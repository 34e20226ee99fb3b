package domain

import (
	"strconv"
	"time"
)

// SavedPlan is a synthesized plan persisted to the local history store.
type SavedPlan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name,omitempty"`
	Fingerprint string     `json:"fingerprint"`
	Plan        Plan       `json:"plan"`
	RenderPath  string     `json:"render_path,omitempty"`
	RenderedAt  *time.Time `json:"rendered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ShortID is the prefix shown in listings and accepted by lookups.
func (s *SavedPlan) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

// DisplayName falls back to a generated label when the plan was saved
// without a name.
func (s *SavedPlan) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	cents := strconv.FormatFloat(s.Plan.Request.LandCents, 'f', -1, 64)
	return string(s.Plan.HouseType) + " on " + cents + " cents"
}
