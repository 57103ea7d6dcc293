// Package daos contains the data access objects for the EZElectronics store.
// Each DAO receives its database handle through its constructor and builds
// statements with squirrel; expected business failures are returned as the
// typed errors in the models package, anything else is the raw driver error.
package daos

import (
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"ezelectronics/models"
	"ezelectronics/utils"
)

var QB = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// isUniqueConstraint reports whether err is a SQLite unique/primary-key
// constraint violation, checked by driver error code rather than by message.
func isUniqueConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// validDate checks that date is well-formed and not in the future.
func validDate(date string) error {
	parsed, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return &models.DateError{}
	}
	if parsed.Format(utils.DateLayout) > utils.Today() {
		return &models.DateError{}
	}
	return nil
}
