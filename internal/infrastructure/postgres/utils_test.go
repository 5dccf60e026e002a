package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, Message: "error dari server"}
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "serialization_failure 40001",
			err:      pgError("40001"),
			expected: true,
		},
		{
			name:     "deadlock_detected 40P01",
			err:      pgError("40P01"),
			expected: true,
		},
		{
			name:     "terbungkus fmt.Errorf tetap terdeteksi",
			err:      fmt.Errorf("update ingredient: %w", pgError("40001")),
			expected: true,
		},
		{
			name:     "kode lain bukan kegagalan serialisasi",
			err:      pgError("23505"),
			expected: false,
		},
		{
			name:     "error biasa",
			err:      errors.New("koneksi putus"),
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSerializationFailure(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "unique_violation 23505",
			err:      pgError("23505"),
			expected: true,
		},
		{
			name:     "terbungkus fmt.Errorf tetap terdeteksi",
			err:      fmt.Errorf("insert ingredient: %w", pgError("23505")),
			expected: true,
		},
		{
			name:     "kegagalan serialisasi bukan pelanggaran unik",
			err:      pgError("40001"),
			expected: false,
		},
		{
			name:     "error biasa",
			err:      errors.New("koneksi putus"),
			expected: false,
		},
		{
			name:     "nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isUniqueViolation(tt.err))
		})
	}
}
