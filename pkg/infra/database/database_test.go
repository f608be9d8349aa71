package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: 5432, User: "maskflow", Password: "secret", DBName: "maskflow"}
	assert.Equal(t, "host=db port=5432 user=maskflow password=secret dbname=maskflow sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestRegisterMigration_DuplicatePanics(t *testing.T) {
	RegisterMigration(Migration{ID: "test_dup_migration", Name: "dup"})
	assert.Panics(t, func() {
		RegisterMigration(Migration{ID: "test_dup_migration", Name: "dup"})
	})
}

func TestPendingMigrations(t *testing.T) {
	order := []string{"20260103_add_client_agent", "20260101_create_masking_action_logs", "20260102_add_workflow_index"}
	applied := map[string]struct{}{"20260101_create_masking_action_logs": {}}

	assert.Equal(t,
		[]string{"20260102_add_workflow_index", "20260103_add_client_agent"},
		pendingMigrations(order, applied),
	)
	assert.Empty(t, pendingMigrations(order[:1], map[string]struct{}{order[0]: {}}))
	assert.Equal(t, []string{"20260103_add_client_agent"}, order[:1], "registry order is left untouched")
}
