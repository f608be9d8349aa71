package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MigrationsTable records which ledger schema migrations have run.
const MigrationsTable = "public.maskflow_schema_migrations"

type Migration struct {
	ID   string
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

var (
	migrationsRegistry = make(map[string]Migration)
	migrationsOrder    = make([]string, 0)
)

// RegisterMigration is called from init functions in pkg/infra/migrations.
func RegisterMigration(m Migration) {
	if _, exists := migrationsRegistry[m.ID]; exists {
		panic(fmt.Sprintf("migration with ID %s already registered", m.ID))
	}
	migrationsRegistry[m.ID] = m
	migrationsOrder = append(migrationsOrder, m.ID)
}

type MigrationsManager struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewMigrationsManager(db *gorm.DB, logger *logrus.Logger) *MigrationsManager {
	return &MigrationsManager{db: db, logger: logger}
}

func (m *MigrationsManager) ensureMigrationsTable(ctx context.Context) error {
	createTableSQL := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`, MigrationsTable)
	return m.db.WithContext(ctx).Exec(createTableSQL).Error
}

func (m *MigrationsManager) appliedMigrations(ctx context.Context) (map[string]struct{}, error) {
	type row struct{ ID string }
	var rows []row
	if err := m.db.WithContext(ctx).Raw(fmt.Sprintf("SELECT id FROM %s", MigrationsTable)).Scan(&rows).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		applied[r.ID] = struct{}{}
	}
	return applied, nil
}

// pendingMigrations returns the registered ids not yet applied, oldest first.
func pendingMigrations(order []string, applied map[string]struct{}) []string {
	pending := make([]string, 0, len(order))
	for _, id := range order {
		if _, ok := applied[id]; !ok {
			pending = append(pending, id)
		}
	}
	sort.Strings(pending)
	return pending
}

// ApplyPending runs each pending migration and its version row in one
// transaction, so a failed migration can be retried on the next boot.
func (m *MigrationsManager) ApplyPending(ctx context.Context) error {
	if err := m.ensureMigrationsTable(ctx); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}

	applied, err := m.appliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	pending := pendingMigrations(migrationsOrder, applied)
	if len(pending) == 0 {
		m.logger.WithField("table", MigrationsTable).Debug("ledger schema is up to date")
		return nil
	}

	for _, id := range pending {
		mig := migrationsRegistry[id]
		if mig.Up == nil {
			return fmt.Errorf("migration %s has no Up function", id)
		}
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Exec(
				fmt.Sprintf("INSERT INTO %s (id, name, applied_at) VALUES (?, ?, ?)", MigrationsTable),
				mig.ID, mig.Name, time.Now(),
			).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s (%s): %w", mig.ID, mig.Name, err)
		}
		m.logger.WithFields(logrus.Fields{
			"migration": mig.ID,
			"name":      mig.Name,
		}).Info("applied ledger migration")
	}
	return nil
}
