package utils

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 5, 5},
		{"Float", float64(730), 730},
		{"Fraction", 1.5, 0},
		{"String", " 440 ", 440},
		{"Bytes", []byte("12"), 12},
		{"Garbage", "abc", 0},
		{"Nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool(1))
	assert.False(t, ToBool("0"))
	assert.False(t, ToBool(nil))
	assert.False(t, ToBool(float64(0)))
	assert.True(t, ToBool(float64(1)))
}

func TestAppIDs(t *testing.T) {
	var decoded []any
	require.NoError(t, json.Unmarshal([]byte(`[730, "440", {"appid": 570}, {"appid": "10"}, -1, 0, "x", null, {"name": "y"}, 730, 2.5, true]`), &decoded))

	assert.Equal(t, []string{"730", "440", "570", "10"}, AppIDs(decoded))
}

func TestAppIDs_Empty(t *testing.T) {
	assert.Empty(t, AppIDs(nil))
}
