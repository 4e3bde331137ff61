package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salonbook/internal/database"
	"salonbook/internal/database/testdb"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, database.IsPostgres("postgres://u:p@localhost:5432/salon"))
	assert.True(t, database.IsPostgres("postgresql://localhost/salon"))
	assert.False(t, database.IsPostgres("salon.db"))
	assert.False(t, database.IsPostgres(":memory:"))
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, database.Migrate(context.Background(), db, zap.NewNop()))

	for _, table := range []string{"masters", "procedures", "master_procedures", "clients", "schedule_slots", "bookings"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigrate_SlotUniqueness(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, db.Exec("INSERT INTO masters (name, specialization) VALUES (?, ?)", "Olena K", "colorist").Error)
	insert := "INSERT INTO schedule_slots (master_id, work_date, work_time) VALUES (1, '2026-03-01', '10:00')"
	require.NoError(t, db.Exec(insert).Error)
	assert.Error(t, db.Exec(insert).Error)

	var count int64
	require.NoError(t, db.Table("schedule_slots").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrate_DefaultAvailability(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, db.Exec("INSERT INTO masters (name, specialization) VALUES (?, ?)", "Olena K", "colorist").Error)
	require.NoError(t, db.Exec("INSERT INTO schedule_slots (master_id, work_date, work_time) VALUES (1, '2026-03-01', '10:00')").Error)

	var available int
	require.NoError(t, db.Raw("SELECT is_available FROM schedule_slots WHERE id = 1").Scan(&available).Error)
	assert.Equal(t, 1, available)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := testdb.Open(t)

	err := db.Exec("INSERT INTO schedule_slots (master_id, work_date, work_time) VALUES (42, '2026-03-01', '10:00')").Error
	assert.Error(t, err)
}
