package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

// mapSQLError turns driver errors into the repository sentinels. unique is the
// sentinel reported for a unique violation on the table being written.
func mapSQLError(db *gorm.DB, err error, unique error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, interfaces.ErrStaleWrite) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", unique, pgErr.ConstraintName)
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return fmt.Errorf("%w: %s", interfaces.ErrStaleWrite, pgErr.Message)
		default:
			return fmt.Errorf("postgres error [%s]: %s: %w", pgErr.Code, pgErr.Message, err)
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return unique
	}
	if t, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		if errors.Is(t.Translate(err), gorm.ErrDuplicatedKey) {
			return unique
		}
	}
	return err
}
