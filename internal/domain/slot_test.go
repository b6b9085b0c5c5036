package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGrid_SlotsForDate(t *testing.T) {
	grid := DefaultSlotGrid()
	date := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC) // время суток игнорируется

	slots := grid.SlotsForDate(date)
	require.Len(t, slots, 6)

	wantLabels := []string{
		"10:00 - 12:00",
		"12:00 - 14:00",
		"14:00 - 16:00",
		"16:00 - 18:00",
		"18:00 - 20:00",
		"20:00 - 22:00",
	}
	for i, slot := range slots {
		assert.Equal(t, wantLabels[i], slot.Label)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), slot.Date)
		assert.NoError(t, slot.Interval.Validate())
		assert.Equal(t, 2*time.Hour, slot.Interval.Duration())
	}

	// Первый слот начинается в час открытия, последний кончается в час закрытия
	assert.Equal(t, 10, slots[0].Interval.Start.Hour())
	assert.Equal(t, 22, slots[len(slots)-1].Interval.End.Hour())
}

func TestSlotGrid_SlotsForDate_UnevenGrid(t *testing.T) {
	// Шаг 3 часа на сетке 10-22: последний слот 19-22, хвоста нет
	grid := SlotGrid{OpenHour: 10, CloseHour: 22, SlotLengthHours: 3}

	slots := grid.SlotsForDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, slots, 4)
	assert.Equal(t, "19:00 - 22:00", slots[3].Label)

	// Шаг 5 часов: 10-15 и 15-20, слот 20-25 вышел бы за закрытие
	grid.SlotLengthHours = 5
	slots = grid.SlotsForDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, slots, 2)
	assert.Equal(t, "15:00 - 20:00", slots[1].Label)
}

func TestSlotGrid_SlotByLabel(t *testing.T) {
	grid := DefaultSlotGrid()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	slot, err := grid.SlotByLabel(date, "14:00 - 16:00")
	require.NoError(t, err)
	assert.Equal(t, 14, slot.Interval.Start.Hour())
	assert.Equal(t, 16, slot.Interval.End.Hour())

	// Метка с чужой сетки (шаг сменился) отклоняется
	_, err = grid.SlotByLabel(date, "11:00 - 13:00")
	assert.Error(t, err)

	// Метка за пределами сетки отклоняется
	_, err = grid.SlotByLabel(date, "22:00 - 24:00")
	assert.Error(t, err)

	// Мусор отклоняется
	_, err = grid.SlotByLabel(date, "не слот")
	assert.Error(t, err)
}

func TestParseSlotLabel(t *testing.T) {
	start, end, err := ParseSlotLabel("10:00 - 12:00")
	require.NoError(t, err)
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)

	// Метки, не выровненные на целый час, отклоняются
	_, _, err = ParseSlotLabel("10:30 - 12:00")
	assert.Error(t, err)

	_, _, err = ParseSlotLabel("10:00-12:00")
	assert.Error(t, err)

	_, _, err = ParseSlotLabel("")
	assert.Error(t, err)
}

func TestSlotGrid_Validate(t *testing.T) {
	assert.NoError(t, DefaultSlotGrid().Validate())

	assert.Error(t, SlotGrid{OpenHour: 22, CloseHour: 10, SlotLengthHours: 2}.Validate())
	assert.Error(t, SlotGrid{OpenHour: 10, CloseHour: 22, SlotLengthHours: 0}.Validate())
	assert.Error(t, SlotGrid{OpenHour: -1, CloseHour: 22, SlotLengthHours: 2}.Validate())
	assert.Error(t, SlotGrid{OpenHour: 10, CloseHour: 25, SlotLengthHours: 2}.Validate())
}

func TestNormalizeDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	in := time.Date(2026, 9, 1, 18, 45, 12, 99, loc)
	got := NormalizeDate(in)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
