package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceScanHandlesNullishValues(t *testing.T) {
	var s StringSlice

	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)

	require.NoError(t, s.Scan(""))
	assert.Empty(t, s)

	require.NoError(t, s.Scan("null"))
	assert.Empty(t, s)

	require.NoError(t, s.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringSlice{"a", "b"}, s)
}

func TestStringSliceValueNilIsEmptyArray(t *testing.T) {
	var s StringSlice
	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestIntMapScanAndValue(t *testing.T) {
	var m IntMap
	require.NoError(t, m.Scan([]byte(`{"landing":1,"ecommerce":6}`)))
	assert.Equal(t, 6, m["ecommerce"])

	v, err := m.Value()
	require.NoError(t, err)
	assert.Contains(t, v, `"landing":1`)

	var nilMap IntMap
	v, err = nilMap.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestAnswerMapScanFromString(t *testing.T) {
	var m AnswerMap
	require.NoError(t, m.Scan(`{"secondary_goals":["leads","reservas"]}`))
	assert.Equal(t, []string{"leads", "reservas"}, m["secondary_goals"])
}

func TestScanRejectsUnsupportedType(t *testing.T) {
	var s StringSlice
	assert.Error(t, s.Scan(42))
}
