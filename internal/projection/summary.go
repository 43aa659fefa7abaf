package projection

import "github.com/carson-networks/ledger-server/internal/service"

type Summary struct {
	UserID           int64             `json:"user_id"`
	TransactionCount int64             `json:"transaction_count"`
	CountByType      map[string]int64  `json:"count_by_type"`
	TotalByType      map[string]string `json:"total_by_type"`
	Categories       []CategorySummary `json:"categories"`
}

type CategorySummary struct {
	CategoryID int64  `json:"category_id"`
	Category   string `json:"category"`
	Type       string `json:"type" enum:"EXPENSE,INCOME"`
	Count      int64  `json:"count"`
	Total      string `json:"total"`
}

// FromSummary keys the per-type maps by symbolic name with every type
// present. Totals are exact decimal strings.
func FromSummary(s *service.Summary) Summary {
	record := Summary{
		UserID:           s.UserID,
		TransactionCount: s.TransactionCount,
		CountByType:      make(map[string]int64),
		TotalByType:      make(map[string]string),
		Categories:       make([]CategorySummary, len(s.Categories)),
	}
	for _, t := range service.TransactionTypes() {
		record.CountByType[t.String()] = s.CountByType[t]
		record.TotalByType[t.String()] = s.TotalByType[t].String()
	}
	for i, c := range s.Categories {
		record.Categories[i] = CategorySummary{
			CategoryID: c.CategoryID,
			Category:   c.Category,
			Type:       c.Type.String(),
			Count:      c.Count,
			Total:      c.Total.String(),
		}
	}
	return record
}
