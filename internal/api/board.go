package api

import (
	"context"

	"work-journal/internal/domain"
	"work-journal/internal/services"
)

// Board is everything the list view shows at once
type Board struct {
	Query      string                   `json:"query"`
	Category   string                   `json:"category"`
	Tasks      []domain.Task            `json:"tasks"`
	Groups     []services.CategoryGroup `json:"groups"`
	Statistics domain.Statistics        `json:"statistics"`
}

// GetBoard filters the journal and groups the matches by category.
// Statistics always cover the whole journal, not just the matches.
func (a *apiImpl) GetBoard(ctx context.Context, query, category string) (*Board, error) {
	store, err := a.loadStore(ctx)
	if err != nil {
		return nil, err
	}

	all := store.Tasks()
	filtered := services.Filter(all, query, category)
	return &Board{
		Query:      query,
		Category:   category,
		Tasks:      filtered,
		Groups:     services.GroupByCategory(filtered),
		Statistics: services.ComputeStatistics(all),
	}, nil
}
