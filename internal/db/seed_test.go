package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

func TestSeedPovertyRegions_EmptyTable(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `poverty_regions`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `poverty_regions`").
		WillReturnResult(sqlmock.NewResult(3, 3))
	mock.ExpectCommit()

	require.NoError(t, SeedPovertyRegions(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedPovertyRegions_AlreadySeeded(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	// Any existing row makes seeding a no-op: no INSERT may follow
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `poverty_regions`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	require.NoError(t, SeedPovertyRegions(db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDefaultPovertyRegions(t *testing.T) {
	rows := DefaultPovertyRegions()
	require.Len(t, rows, 3)
	assert.Equal(t, "Downtown Eastside", rows[0].Region)
	for _, r := range rows {
		assert.NotEmpty(t, r.Region)
		assert.Greater(t, r.PovertyRate, 0.0)
		assert.NotZero(t, r.Latitude)
		assert.NotZero(t, r.Longitude)
	}
}
