// Package dialect holds the few places where the repositories need to know
// which database sits behind GORM.
package dialect

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	Postgres = "postgres"
	SQLite   = "sqlite"

	uniqueViolation = pq.ErrorCode("23505")
)

// ForUpdate adds SELECT ... FOR UPDATE on PostgreSQL. SQLite serializes
// writers on its own and does not know the clause.
func ForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == Postgres {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

// IsUniqueViolation recognises duplicate primary keys from either driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
