package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupByPeriodBuckets(t *testing.T) {
	groups := GroupByPeriod([]string{"09:00", "13:00", "18:00", "21:00"})

	assert.Equal(t, []string{"09:00"}, groups[Morning])
	assert.Equal(t, []string{"13:00"}, groups[Afternoon])
	assert.Equal(t, []string{"18:00"}, groups[Evening])
	assert.Equal(t, []string{"21:00"}, groups[Night])
}

func TestGroupByPeriodBoundaries(t *testing.T) {
	groups := GroupByPeriod([]string{"11:59", "12:00", "16:59", "17:00", "19:59", "20:00"})

	assert.Equal(t, []string{"11:59"}, groups[Morning])
	assert.Equal(t, []string{"12:00", "16:59"}, groups[Afternoon])
	assert.Equal(t, []string{"17:00", "19:59"}, groups[Evening])
	assert.Equal(t, []string{"20:00"}, groups[Night])
}

func TestGroupByPeriodPreservesInputOrder(t *testing.T) {
	groups := GroupByPeriod([]string{"10:00", "08:00", "09:00"})
	assert.Equal(t, []string{"10:00", "08:00", "09:00"}, groups[Morning])
}

func TestGroupByPeriodEmptyBucketsPresent(t *testing.T) {
	groups := GroupByPeriod([]string{"09:00"})

	for _, p := range Periods {
		assert.Contains(t, groups, p)
	}
	assert.Empty(t, groups[Night])
}
