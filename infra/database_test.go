package infra

import (
	"testing"

	"github.com/amirasaad/bankseed/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_Validation(t *testing.T) {
	_, err := NewDBConnection(nil, "test")
	require.EqualError(t, err, "DATABASE_URL is not set")

	_, err = NewDBConnection(&config.DB{Driver: config.DriverSQLite}, "test")
	require.EqualError(t, err, "DATABASE_URL is not set")

	_, err = NewDBConnection(&config.DB{Driver: "oracle", Url: "x"}, "test")
	require.EqualError(t, err, `unsupported database driver "oracle"`)
}

func TestNewDBConnection_SQLite(t *testing.T) {
	db, err := NewDBConnection(&config.DB{
		Driver: config.DriverSQLite,
		Url:    "file::memory:",
	}, "test")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.True(t, db.Config.TranslateError)
	assert.True(t, db.Config.SkipDefaultTransaction)
	require.NoError(t, sqlDB.Ping())
}

func TestMySQLDSN(t *testing.T) {
	dsn, err := mysqlDSN("bank:secret@tcp(localhost:3306)/bank")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "tcp(localhost:3306)/bank")

	again, err := mysqlDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, dsn, again)

	_, err = mysqlDSN("not a dsn")
	require.ErrorContains(t, err, "invalid MySQL DSN")

	_, err = NewDBConnection(&config.DB{Driver: config.DriverMySQL, Url: "not a dsn"}, "test")
	require.ErrorContains(t, err, "invalid MySQL DSN")
}
