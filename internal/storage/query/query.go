// Package query holds the bob helpers shared by the per-entity tables.
package query

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/storage/sqlerr"
)

// Now is the database clock in UTC, matching the column defaults.
const Now = "now() AT TIME ZONE 'utc'"

// One runs q and scans a single row. A missing row becomes a NotFoundError for
// entity/id.
func One[T any](ctx context.Context, exec bob.Executor, q bob.Query, entity string, id int64) (*T, error) {
	row, err := bob.One(ctx, exec, q, scan.StructMapper[T]())
	if err != nil {
		return nil, sqlerr.Translate(err, entity, id)
	}
	return &row, nil
}

// All runs q and scans every row in order.
func All[T any](ctx context.Context, exec bob.Executor, q bob.Query) ([]*T, error) {
	rows, err := bob.All(ctx, exec, q, scan.StructMapper[T]())
	if err != nil {
		return nil, sqlerr.Translate(err, "", 0)
	}
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// SelectByID selects every column of the row with the given primary key.
func SelectByID(table string, id int64, extra ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.From(table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	return psql.Select(append(queryMods, extra...)...)
}

// Page orders by primary key and applies limit/offset. A zero limit returns
// everything.
func Page(limit, offset int) []bob.Mod[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{sm.OrderBy("id").Asc()}
	if limit > 0 {
		queryMods = append(queryMods, sm.Limit(limit))
	}
	if offset > 0 {
		queryMods = append(queryMods, sm.Offset(offset))
	}
	return queryMods
}

// Touch sets updated_at on an update.
func Touch() bob.Mod[*dialect.UpdateQuery] {
	return um.SetCol("updated_at").To(psql.Raw(Now))
}

// UpdateByID builds an UPDATE of the row with the given primary key that
// returns the stored row.
func UpdateByID(table string, id int64, sets ...bob.Mod[*dialect.UpdateQuery]) bob.BaseQuery[*dialect.UpdateQuery] {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(table)}
	queryMods = append(queryMods, sets...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("*"),
	)
	return psql.Update(queryMods...)
}

// DeleteByID removes one row. A missing row becomes a NotFoundError and a row
// still referenced elsewhere a foreign key ConstraintError.
func DeleteByID(ctx context.Context, exec bob.Executor, table, entity string, id int64) error {
	q := psql.Delete(
		dm.From(table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning("id"),
	)
	if _, err := bob.One(ctx, exec, q, scan.SingleColumnMapper[int64]); err != nil {
		return sqlerr.Translate(err, entity, id)
	}
	return nil
}
