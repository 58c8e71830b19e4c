package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime12H(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"14:05", "2:05 PM"},
		{"23:59", "11:59 PM"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime12H(tt.in))
	}
}

func TestAgeFromDOB(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	age, err := AgeFromDOB("1990-06-02", now)
	require.NoError(t, err)
	assert.Equal(t, 35, age, "birthday today counts")

	age, err = AgeFromDOB("1990-06-03", now)
	require.NoError(t, err)
	assert.Equal(t, 34, age, "birthday tomorrow has not happened yet")

	_, err = AgeFromDOB("02-06-1990", now)
	assert.Error(t, err)
}
