package service

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Cursor identifies a position in a paginated result set ordered by id.
type Cursor struct {
	Position int
	Limit    int
}

func pageBounds(cursor *Cursor) (limit, offset int) {
	limit = defaultLimit
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = min(cursor.Limit, maxLimit)
		}
		if cursor.Position > 0 {
			offset = cursor.Position
		}
	}
	return limit, offset
}

// paginate converts rows fetched with limit+1 into a page and the cursor for
// the next one. No rows yields a nil page.
func paginate[S any, T any](rows []*S, limit, offset int, convert func(*S) (T, error)) ([]T, *Cursor, error) {
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &Cursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	page := make([]T, len(rows))
	for i, row := range rows {
		converted, err := convert(row)
		if err != nil {
			return nil, nil, err
		}
		page[i] = converted
	}
	return page, nextCursor, nil
}
