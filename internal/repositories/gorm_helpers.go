package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findOne runs First on q. A missing row is reported as (nil, nil) so callers
// have to decide what absence means for them.
func findOne[T any](q *gorm.DB, conds ...interface{}) (*T, error) {
	var out T
	err := q.First(&out, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// forUpdate locks the selected rows until the surrounding transaction ends.
// SQLite has no row locks and drops the clause.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// ErrDuplicate is found in the chain of write errors rejected by a unique
// constraint. The database is opened with TranslateError so every driver
// reports it.
var ErrDuplicate = gorm.ErrDuplicatedKey
