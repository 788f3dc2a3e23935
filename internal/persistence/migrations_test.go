package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	require.Equal(t, "001_attendance_records.sql", names[0])
}

func TestRunMigrationsWithoutPool(t *testing.T) {
	require.NoError(t, RunMigrations(context.Background(), nil, zap.NewNop()))
}

func TestDisabledBackends(t *testing.T) {
	pg := &Postgres{}
	require.False(t, pg.Enabled())
	require.Error(t, pg.Ping(context.Background()))

	var rd *Redis
	require.Error(t, rd.Ping(context.Background()))
	rd.Close()
}
