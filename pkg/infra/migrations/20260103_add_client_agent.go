package migrations

import (
	"github.com/NeuralTrust/MaskFlow/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260103_add_client_agent",
		Name: "Record the operator's console client on ledger entries",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				ALTER TABLE masking_action_logs
				ADD COLUMN IF NOT EXISTS client_agent TEXT NOT NULL DEFAULT '';
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`ALTER TABLE masking_action_logs DROP COLUMN IF EXISTS client_agent;`).Error
		},
	})
}
