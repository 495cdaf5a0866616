package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDefaultPoolConfig(t *testing.T) {
	cfg := DefaultPoolConfig()
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, cfg.ConnMaxIdleTime)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero open", Config{MaxOpenConns: 0}, "MaxOpenConns"},
		{"negative idle", Config{MaxOpenConns: 5, MaxIdleConns: -1}, "non-negative"},
		{"idle above open", Config{MaxOpenConns: 5, MaxIdleConns: 6}, "cannot be greater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, tt.cfg.Validate(), tt.wantErr)
		})
	}
}

func TestSetupConnectionPool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	t.Run("applies limits", func(t *testing.T) {
		cfg := Config{MaxOpenConns: 3, MaxIdleConns: 1, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: time.Minute}
		require.NoError(t, SetupConnectionPool(db, cfg))
		assert.Equal(t, 3, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		assert.Error(t, SetupConnectionPool(db, Config{MaxOpenConns: 1, MaxIdleConns: 2}))
	})
}
