package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// SummaryService counts and totals transactions.
type SummaryService struct {
	store Store
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(store Store) *SummaryService {
	return &SummaryService{store: store}
}

// GetSummary aggregates every transaction of an existing user.
func (s *SummaryService) GetSummary(ctx context.Context, userID int64) (*Summary, error) {
	if _, err := s.store.Read().Users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	groups, err := s.store.Read().Transactions.TotalsByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		UserID:      userID,
		CountByType: make(map[TransactionType]int64),
		TotalByType: make(map[TransactionType]decimal.Decimal),
		Categories:  make([]CategorySummary, 0, len(groups)),
	}
	for _, t := range TransactionTypes() {
		summary.CountByType[t] = 0
		summary.TotalByType[t] = decimal.Zero
	}

	for _, group := range groups {
		transactionType, err := transactionTypeFromStorage(group.Type)
		if err != nil {
			return nil, err
		}
		summary.TransactionCount += group.Count
		summary.CountByType[transactionType] += group.Count
		summary.TotalByType[transactionType] = summary.TotalByType[transactionType].Add(group.Total)
		summary.Categories = append(summary.Categories, CategorySummary{
			CategoryID: group.CategoryID,
			Category:   group.Category,
			Type:       transactionType,
			Count:      group.Count,
			Total:      group.Total,
		})
	}

	return summary, nil
}
