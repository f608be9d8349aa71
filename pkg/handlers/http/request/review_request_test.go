package request

import (
	"testing"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditRecordsRequest_Validate(t *testing.T) {
	noMask := "no_mask"
	retry := true

	tests := []struct {
		name    string
		req     EditRecordsRequest
		wantErr string
	}{
		{name: "empty", req: EditRecordsRequest{}, wantErr: "edits is required"},
		{name: "missing id", req: EditRecordsRequest{Edits: []RecordEditRequest{{Retry: &retry}}}, wantErr: "edits[0].id is required"},
		{name: "no change", req: EditRecordsRequest{Edits: []RecordEditRequest{{ID: "001"}}}, wantErr: "edits[0] changes nothing"},
		{
			name: "duplicate",
			req: EditRecordsRequest{Edits: []RecordEditRequest{
				{ID: "001", Retry: &retry},
				{ID: "001", IsMasked: &noMask},
			}},
			wantErr: "record '001' is edited more than once",
		},
		{name: "valid", req: EditRecordsRequest{Edits: []RecordEditRequest{{ID: "001", IsMasked: &noMask}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestEditRecordsRequest_ToRecordEdits(t *testing.T) {
	noMask := "no_mask"
	retry := true
	req := EditRecordsRequest{Edits: []RecordEditRequest{
		{ID: "001", IsMasked: &noMask},
		{ID: "002", Retry: &retry},
	}}

	edits := req.ToRecordEdits()

	require.Len(t, edits, 2)
	require.NotNil(t, edits[0].IsMasked)
	assert.Equal(t, masking.StatusNoMask, *edits[0].IsMasked)
	assert.Nil(t, edits[0].Retry)
	assert.Nil(t, edits[1].IsMasked)
	assert.True(t, *edits[1].Retry)
}

func TestSelectFieldsRequest_Validate(t *testing.T) {
	assert.EqualError(t, (&SelectFieldsRequest{}).Validate(), "selections is required")
	assert.EqualError(t, (&SelectFieldsRequest{Selections: map[string]bool{"": true}}).Validate(), "field names cannot be empty")
	assert.NoError(t, (&SelectFieldsRequest{Selections: map[string]bool{"Email": true}}).Validate())
}
