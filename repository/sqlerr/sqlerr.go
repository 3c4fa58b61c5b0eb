package sqlerr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL error 1062: duplicate entry for a unique key.
const dupEntryNumber = 1062

// IsDuplicateEntry reports whether err is a unique-constraint violation.
// Upsert call sites use this to fall back to a re-fetch instead of failing.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == dupEntryNumber
	}
	return false
}
