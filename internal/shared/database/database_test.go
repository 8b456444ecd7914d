package database_test

import (
	"context"
	"testing"

	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/config"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/model"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/volunteer-registry/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SQLiteInMemory(t *testing.T) {
	// Given: a database-backed config on in-memory sqlite
	cfg := testutil.NewTestConfig()
	cfg.Store.Backend = config.StoreBackendDatabase
	cfg.Database.SQLiteDSN = "file:database_test_new?mode=memory&cache=shared"

	// When
	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// Then: schema exists and the connection is healthy
	assert.True(t, db.Migrator().HasTable(&model.Volunteer{}))
	assert.True(t, db.Migrator().HasIndex(&model.Volunteer{}, "idx_volunteer_email"))
	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Database.Driver = "mysql"

	_, err := database.New(cfg)
	assert.Error(t, err)
}

func TestMigrate_RefusesProduction(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.NewTestConfig()
	cfg.App.Env = "prod"
	cfg.Database.IsAutoMigrate = true

	assert.Error(t, database.Migrate(db, cfg))
}

func TestMigrate_Disabled(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.NewTestConfig()
	cfg.App.Env = "prod"
	cfg.Database.IsAutoMigrate = false

	assert.NoError(t, database.Migrate(db, cfg))
}

func TestWithTransaction_NilFunc(t *testing.T) {
	db := testutil.SetupTestDB(t)

	assert.Error(t, database.WithTransaction(context.Background(), db, nil))
}
