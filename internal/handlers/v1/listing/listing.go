// Package listing holds the pagination parameters and envelope shared by
// every list operation.
package listing

import (
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CursorQuery is embedded in list inputs.
type CursorQuery struct {
	Position int `query:"position" minimum:"0" doc:"Offset of the first item, taken from next_cursor"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
}

func (q CursorQuery) Cursor() *service.Cursor {
	if q.Position == 0 && q.Limit == 0 {
		return nil
	}
	return &service.Cursor{Position: q.Position, Limit: q.Limit}
}

// Page is the response body of a list operation.
type Page[T any] struct {
	Items      []T                `json:"items" doc:"Page of items ordered by id"`
	NextCursor *projection.Cursor `json:"next_cursor,omitempty" doc:"Cursor for the next page, absent on the last page"`
}

func NewPage[T any](items []T, next *service.Cursor) Page[T] {
	return Page[T]{Items: items, NextCursor: projection.FromCursor(next)}
}

// OptionalID maps an absent or zero id filter to nil.
func OptionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
