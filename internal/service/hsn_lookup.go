package service

import (
	"context"

	"gstportal/internal/domain"
	"gstportal/internal/port"
)

// HSNLookup provides fast in-memory lookups for HSN code existence and rates.
// It is immutable after construction and safe for concurrent access.
type HSNLookup struct {
	byCode map[string]domain.HSNCode
}

// NewHSNLookup builds an HSNLookup from the master list loaded from the database.
func NewHSNLookup(codes []domain.HSNCode) *HSNLookup {
	m := make(map[string]domain.HSNCode, len(codes))
	for idx := range codes {
		m[codes[idx].Code] = codes[idx]
	}
	return &HSNLookup{byCode: m}
}

// LoadHSNLookup reads the full HSN master list and builds a lookup.
func LoadHSNLookup(ctx context.Context, repo port.HSNRepository) (*HSNLookup, error) {
	codes, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return NewHSNLookup(codes), nil
}

// Exists returns true if the HSN code (or a prefix of it) is in the master list.
// It checks exact match first, then falls back from 8→6→4 digit prefixes.
func (h *HSNLookup) Exists(code string) bool {
	_, ok := h.Get(code)
	return ok
}

// Get returns the master entry for the given HSN code, with prefix fallback.
func (h *HSNLookup) Get(code string) (domain.HSNCode, bool) {
	if len(h.byCode) == 0 || code == "" {
		return domain.HSNCode{}, false
	}
	if entry, ok := h.byCode[code]; ok {
		return entry, true
	}
	// Hierarchical prefix fallback: try shorter prefixes
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if entry, ok := h.byCode[code[:prefixLen]]; ok {
				return entry, true
			}
		}
	}
	return domain.HSNCode{}, false
}
