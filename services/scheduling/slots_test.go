package scheduling

import (
	"testing"
	"time"

	"asclepius/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
const monday = "2025-06-02"

func window(day models.DayOfWeek, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{Day: day, StartTime: start, EndTime: end}
}

func TestGenerateSlotsSingleSlotWindow(t *testing.T) {
	slots, err := GenerateSlots([]models.AvailabilityWindow{
		window(models.Monday, "09:00", "09:30"),
	}, 30, monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots)
}

func TestGenerateSlotsEndBoundaryExclusive(t *testing.T) {
	slots, err := GenerateSlots([]models.AvailabilityWindow{
		window(models.Monday, "09:00", "10:00"),
	}, 30, monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestGenerateSlotsMultipleWindowsSameDay(t *testing.T) {
	slots, err := GenerateSlots([]models.AvailabilityWindow{
		window(models.Monday, "09:00", "10:00"),
		window(models.Monday, "14:00", "15:00"),
	}, 30, monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, slots)
}

func TestGenerateSlotsNoMatchingWindow(t *testing.T) {
	slots, err := GenerateSlots([]models.AvailabilityWindow{
		window(models.Tuesday, "09:00", "10:00"),
	}, 30, monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsPartialTrailingSlotDropped(t *testing.T) {
	// 09:00-09:50 with 30-minute slots: 09:30+30 would exceed the end.
	slots, err := GenerateSlots([]models.AvailabilityWindow{
		window(models.Monday, "09:00", "09:50"),
	}, 30, monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestGenerateSlotsMinuteOverflowRollsIntoHour(t *testing.T) {
	slots, err := GenerateSlots([]models.AvailabilityWindow{
		window(models.Monday, "09:10", "11:00"),
	}, 45, monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:10", "09:55", "10:40"}, slots)
}

func TestGenerateSlotsZeroLengthWindow(t *testing.T) {
	slots, err := GenerateSlots([]models.AvailabilityWindow{
		window(models.Monday, "09:00", "09:00"),
	}, 30, monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsOverlappingWindowsKeepDuplicates(t *testing.T) {
	slots, err := GenerateSlots([]models.AvailabilityWindow{
		window(models.Monday, "09:00", "10:00"),
		window(models.Monday, "09:30", "10:30"),
	}, 30, monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "09:30", "10:00"}, slots)
}

func TestGenerateSlotsInvalidDuration(t *testing.T) {
	for _, d := range []int{0, -15} {
		_, err := GenerateSlots([]models.AvailabilityWindow{
			window(models.Monday, "09:00", "10:00"),
		}, d, monday)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestGenerateSlotsInvalidTimeFormat(t *testing.T) {
	for _, bad := range []string{"9:00", "09:0", "24:00", "09:60", "0900", "ab:cd"} {
		_, err := GenerateSlots([]models.AvailabilityWindow{
			window(models.Monday, bad, "10:00"),
		}, 30, monday)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "start time %q", bad)
	}
}

func TestGenerateSlotsInvalidDate(t *testing.T) {
	for _, bad := range []string{"2025-6-02", "02-06-2025", "2025-02-31", "not-a-date", ""} {
		_, err := GenerateSlots(nil, 30, bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", bad)
	}
}

func TestWeekdayDerivationIgnoresUTCOffset(t *testing.T) {
	// In a zone 11 hours behind UTC, parsing "2025-06-02" as UTC midnight
	// and converting lands on Sunday June 1st. Component-wise construction
	// must still see Monday.
	behind := time.FixedZone("UTC-11", -11*3600)

	naive, err := time.Parse("2006-01-02", monday)
	require.NoError(t, err)
	require.Equal(t, time.Sunday, naive.In(behind).Weekday(), "scenario must discriminate")

	day, err := weekdayFor(monday, behind)
	require.NoError(t, err)
	assert.Equal(t, models.Monday, day)

	slots, err := generateSlotsIn([]models.AvailabilityWindow{
		window(models.Monday, "09:00", "10:00"),
	}, 30, monday, behind)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestParseHHMMValidRange(t *testing.T) {
	hour, minute, err := ParseHHMM("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)

	hour, minute, err = ParseHHMM("00:00")
	require.NoError(t, err)
	assert.Zero(t, hour)
	assert.Zero(t, minute)
}
