package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cookbook/internal/config"
	"github.com/MKhiriev/go-cookbook/internal/logger"
)

func TestNewConnect_PingFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		connect func() (*DB, error)
	}{
		{
			name: "sqlite",
			connect: func() (*DB, error) {
				return NewConnectSQLite(ctx, config.ClientDB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
			},
		},
		{
			name: "postgres",
			connect: func() (*DB, error) {
				return NewConnectPostgres(ctx, config.ClientDB{Driver: config.DriverPostgres, DSN: "postgres://cookbook@127.0.0.1:1/cookbook"}, logger.Nop())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := tt.connect()
			require.Error(t, err)
			assert.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, db)
		})
	}
}

func TestNewConnectSQLite_InMemory(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, dialectSQLite, db.dialect)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}
