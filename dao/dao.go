// Package dao owns all query code. Every DAO translates driver errors into the
// shared apperr sentinels so services never look at MySQL error numbers.
package dao

import (
	"errors"
	"fmt"

	"community_portal/internal/apperr"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// translate maps gorm/driver failures onto the apperr taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", apperr.ErrNotFound, err)
	}
	if isDuplicate(err) {
		return fmt.Errorf("%w: %v", apperr.ErrConflict, err)
	}
	return fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
}

// isDuplicate reports a unique-constraint violation (MySQL error 1062).
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
