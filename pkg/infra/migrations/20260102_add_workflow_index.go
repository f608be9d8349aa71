package migrations

import (
	"github.com/NeuralTrust/MaskFlow/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260102_add_workflow_index",
		Name: "Index action logs by workflow and outcome",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_masking_action_logs_workflow_outcome
				ON masking_action_logs (workflow, outcome);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP INDEX IF EXISTS idx_masking_action_logs_workflow_outcome;`).Error
		},
	})
}
