package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestSeedFlags(t *testing.T) {
	dir := seedCmd.Flags().Lookup("dir")
	require.NotNil(t, dir)
	assert.Equal(t, "", dir.DefValue)

	reset := seedCmd.Flags().Lookup("reset")
	require.NotNil(t, reset)
	assert.Equal(t, "false", reset.DefValue)
}

func TestMigrateCreatesSchema(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_URI", "sqlite://missions.db")
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, runMigrate())

	cfg, err := bootstrap()
	require.NoError(t, err)
	db, err := openDatabase(cfg, true)
	require.NoError(t, err)
	defer closeDatabase(db)

	for _, table := range []string{"scientists", "planets", "missions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
