package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation fila referenciada por otra tabla (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

// isCheckViolation restricción CHECK (23514), p. ej. stock negativo.
func isCheckViolation(err error) bool {
	return pgCode(err) == "23514"
}

// nullableID convierte un *int64 opcional en NULL.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
