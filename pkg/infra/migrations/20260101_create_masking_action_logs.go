package migrations

import (
	"github.com/NeuralTrust/MaskFlow/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260101_create_masking_action_logs",
		Name: "Create masking_action_logs ledger table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS masking_action_logs (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					workflow    TEXT NOT NULL,
					object      TEXT NOT NULL,
					action      TEXT NOT NULL,
					record_ids  TEXT[] NOT NULL DEFAULT '{}',
					operator    TEXT NOT NULL DEFAULT '',
					outcome     TEXT NOT NULL,
					message     TEXT NOT NULL DEFAULT '',
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_masking_action_logs_object_created
				ON masking_action_logs (object, created_at DESC);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS masking_action_logs;`).Error
		},
	})
}
