package service

import (
	"github.com/shopspring/decimal"
)

// Summary aggregates a user's transactions. CountByType and TotalByType
// always hold an entry for every TransactionType.
type Summary struct {
	UserID           int64
	TransactionCount int64
	CountByType      map[TransactionType]int64
	TotalByType      map[TransactionType]decimal.Decimal
	Categories       []CategorySummary
}

// CategorySummary is the share of one category and transaction type.
type CategorySummary struct {
	CategoryID int64
	Category   string
	Type       TransactionType
	Count      int64
	Total      decimal.Decimal
}
