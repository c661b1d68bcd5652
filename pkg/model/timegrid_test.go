package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBreaks() []BreakWindow {
	return []BreakWindow{
		{Start: 10*60 + 30, End: 11 * 60},
		{Start: 13 * 60, End: 14 * 60},
		{Start: 16*60 + 30, End: 17 * 60},
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("default policy yields 19 slots with fixed break indices", func(t *testing.T) {
		slots := GenerateTimeSlots(9*60, 18*60+30, 30, defaultBreaks())
		require.Len(t, slots, 19)

		wantBreaks := map[int]bool{3: true, 8: true, 9: true, 15: true}
		for _, slot := range slots {
			assert.Equal(t, wantBreaks[slot.Index], slot.Break, "slot %d", slot.Index)
			assert.Equal(t, slot.Start+30, slot.End)
		}
		assert.Equal(t, "09:00-09:30", slots[0].Label())
		assert.Equal(t, "18:00-18:30", slots[18].Label())
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		first := GenerateTimeSlots(9*60, 18*60+30, 30, defaultBreaks())
		second := GenerateTimeSlots(9*60, 18*60+30, 30, defaultBreaks())
		assert.Equal(t, first, second)
	})

	t.Run("partial trailing slot is dropped", func(t *testing.T) {
		slots := GenerateTimeSlots(9*60, 10*60+15, 30, nil)
		require.Len(t, slots, 2)
		assert.Equal(t, 10*60, slots[1].End)
	})
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)
	assert.Equal(t, "09:30", FormatClock(minutes))

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("late")
	assert.Error(t, err)
}
