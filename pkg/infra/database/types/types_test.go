package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_Value(t *testing.T) {
	v, err := StringArray{"001", "002"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"001","002"}`, v)

	v, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestStringArray_Scan(t *testing.T) {
	var s StringArray
	require.NoError(t, s.Scan([]byte(`{"001","002"}`)))
	assert.Equal(t, StringArray{"001", "002"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)

	assert.Error(t, s.Scan(42))
}
