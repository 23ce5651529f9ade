// Package storage holds the two generic persistence helpers shared by
// every entity plus the not-found sentinel the route layer maps to 404.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a lookup matches no row. Routes translate
// it to 404; it is not treated as an exceptional error below that.
var ErrNotFound = errors.New("record not found")

// IsNotFound reports whether err is the not-found sentinel or the driver's
// empty-result error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}

// InsertAndFetch inserts model and re-selects it by primary key so the
// caller gets database-generated defaults back.
func InsertAndFetch[T any](db bun.IDB, model *T) (*T, error) {
	ctx := context.Background()
	if _, err := db.NewInsert().Model(model).Exec(ctx); err != nil {
		return nil, err
	}
	if err := db.NewSelect().Model(model).WherePK().Scan(ctx); err != nil {
		return nil, err
	}
	return model, nil
}

// UpdateAndFetchByID applies a partial update by primary key and returns
// the full current record. A vanished row surfaces as ErrNotFound rather
// than a null success: the update itself succeeds as a no-op, so only the
// re-select can tell the caller the record is gone.
func UpdateAndFetchByID[T any](db bun.IDB, model *T, columns ...string) (*T, error) {
	ctx := context.Background()
	q := db.NewUpdate().Model(model).WherePK()
	if len(columns) > 0 {
		q = q.Column(columns...)
	} else {
		q = q.OmitZero()
	}
	if _, err := q.Exec(ctx); err != nil {
		return nil, err
	}
	if err := db.NewSelect().Model(model).WherePK().Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("record missing after update: %w", ErrNotFound)
		}
		return nil, err
	}
	return model, nil
}
