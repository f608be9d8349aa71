package masking

import (
	"fmt"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
)

type MaskStatus string

const (
	StatusToBeMasked MaskStatus = "to_be_masked"
	StatusNoMask     MaskStatus = "no_mask"
)

const (
	ColumnRetry    = "retry"
	ColumnID       = "Id"
	ColumnIsMasked = "is_masked"
	ColumnError    = "error"
)

// FixedColumns always lead the record table, in this order.
var FixedColumns = []string{ColumnRetry, ColumnID, ColumnIsMasked, ColumnError}

func (s MaskStatus) Valid() bool {
	return s == StatusToBeMasked || s == StatusNoMask
}

func ParseMaskStatus(value string) (MaskStatus, error) {
	status := MaskStatus(value)
	if !status.Valid() {
		return "", domain.NewValidationError(
			domain.ReasonInvalidStatus,
			fmt.Sprintf("is_masked must be '%s' or '%s', got '%s'", StatusToBeMasked, StatusNoMask, value),
		)
	}
	return status, nil
}

// Record is one flattened row scheduled for masking. Attributes holds the
// object-specific scalar columns.
type Record struct {
	ID         string                 `json:"Id" mapstructure:"Id"`
	IsMasked   MaskStatus             `json:"is_masked" mapstructure:"is_masked"`
	Error      *string                `json:"error" mapstructure:"error"`
	Retry      bool                   `json:"retry" mapstructure:"retry"`
	Attributes map[string]interface{} `json:"attributes,omitempty" mapstructure:",remain"`
}

// Table is the record set of one object with its display column order.
type Table struct {
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

func (t *Table) Empty() bool {
	return t == nil || len(t.Records) == 0
}

func (t *Table) Find(id string) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	for _, r := range t.Records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
