package postgresql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kurochkinivan/device_uploader/internal/domain"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return storeError("execute query", err)
}

func scanRowError(err error) error {
	return storeError("scan row", err)
}

func storeError(op string, err error) error {
	return &domain.StoreError{
		Store:     domain.StoreRecord,
		Op:        op,
		Retryable: retryable(err),
		Err:       err,
	}
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "40001" || pgErr.Code == "40P01" { // serialization failure, deadlock
			return true
		}

		// class 08 connection, 53 insufficient resources, 57 operator intervention
		for _, class := range []string{"08", "53", "57"} {
			if strings.HasPrefix(pgErr.Code, class) {
				return true
			}
		}

		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
