package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a gorm session over the postgres dialector that
// only renders SQL, so generated statements can be inspected without a
// running database.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

// Postgres rejects FOR UPDATE on aggregate queries (SQLSTATE 0A000), so
// every conflict check must lock plain rows and count them client-side.
func TestConflictChecksLockRowsNotAggregates(t *testing.T) {
	db := newDryRunDB(t)
	at := time.Date(2025, 11, 5, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		stmt *gorm.DB
	}{
		{"create slot check", slotHolderIDs(db, 1, at, 0).Find(&[]uint{})},
		{"reschedule slot check", slotHolderIDs(db, 1, at, 7).Find(&[]uint{})},
		{"review uniqueness check", reviewIDsByAppointment(db, 3).Find(&[]uint{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql := tc.stmt.Statement.SQL.String()
			require.Contains(t, sql, "FOR UPDATE")
			require.NotContains(t, strings.ToLower(sql), "count(")
		})
	}
}

func TestRescheduleSlotCheckExcludesOwnRow(t *testing.T) {
	db := newDryRunDB(t)
	at := time.Date(2025, 11, 5, 14, 30, 0, 0, time.UTC)

	moved := slotHolderIDs(db, 1, at, 7).Find(&[]uint{}).Statement.SQL.String()
	require.Contains(t, moved, "id <> ")

	created := slotHolderIDs(db, 1, at, 0).Find(&[]uint{}).Statement.SQL.String()
	require.NotContains(t, created, "id <> ")
}
