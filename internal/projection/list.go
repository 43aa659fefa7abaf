package projection

import "github.com/carson-networks/ledger-server/internal/service"

// Cursor is the next_cursor object of a list response.
type Cursor struct {
	Position int `json:"position"`
	Limit    int `json:"limit"`
}

func FromCursor(c *service.Cursor) *Cursor {
	if c == nil {
		return nil
	}
	return &Cursor{Position: c.Position, Limit: c.Limit}
}

// The list helpers never return nil so that empty pages encode as [].

func FromUsers(users []service.User) []User {
	return project(users, FromUser)
}

func FromAccounts(accounts []service.Account) []Account {
	return project(accounts, FromAccount)
}

func FromCategories(categories []service.Category) []Category {
	return project(categories, FromCategory)
}

func FromTransactions(transactions []service.Transaction) []Transaction {
	return project(transactions, FromTransaction)
}

func FromBudgets(budgets []service.Budget) []Budget {
	return project(budgets, FromBudget)
}

func FromNotifications(notifications []service.Notification) []Notification {
	return project(notifications, FromNotification)
}

func project[S any, R any](items []S, convert func(*S) R) []R {
	records := make([]R, len(items))
	for i := range items {
		records[i] = convert(&items[i])
	}
	return records
}
