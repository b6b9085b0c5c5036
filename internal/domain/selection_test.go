package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionSet_Toggle(t *testing.T) {
	s := NewSelectionSet()
	key := SelectionKey{Date: "2026-09-01", Slot: "10:00 - 12:00"}

	assert.False(t, s.IsSelected(key))

	s.Toggle(key)
	assert.True(t, s.IsSelected(key))
	assert.Equal(t, 1, s.Len())

	// Повторный toggle снимает выбор
	s.Toggle(key)
	assert.False(t, s.IsSelected(key))
	assert.Equal(t, 0, s.Len())
}

func TestSelectionSet_KeysPreserveOrder(t *testing.T) {
	s := NewSelectionSet()
	keys := []SelectionKey{
		{Date: "2026-09-02", Slot: "18:00 - 20:00"},
		{Date: "2026-09-01", Slot: "10:00 - 12:00"},
		{Date: "2026-09-02", Slot: "10:00 - 12:00"},
	}
	for _, k := range keys {
		s.Toggle(k)
	}

	assert.Equal(t, keys, s.Keys())

	// Удаление из середины не меняет порядок остальных
	s.Toggle(keys[1])
	assert.Equal(t, []SelectionKey{keys[0], keys[2]}, s.Keys())
}

func TestSelectionSet_GroupByDate(t *testing.T) {
	s := NewSelectionSet()
	// Слоты выбраны вразнобой по двум датам
	s.Toggle(SelectionKey{Date: "2026-09-02", Slot: "18:00 - 20:00"})
	s.Toggle(SelectionKey{Date: "2026-09-01", Slot: "10:00 - 12:00"})
	s.Toggle(SelectionKey{Date: "2026-09-02", Slot: "10:00 - 12:00"})
	s.Toggle(SelectionKey{Date: "2026-09-01", Slot: "14:00 - 16:00"})

	dates, grouped := s.GroupByDate()

	// Даты в порядке первого появления, слоты внутри даты в порядке выбора
	require.Equal(t, []string{"2026-09-02", "2026-09-01"}, dates)
	assert.Equal(t, []string{"18:00 - 20:00", "10:00 - 12:00"}, grouped["2026-09-02"])
	assert.Equal(t, []string{"10:00 - 12:00", "14:00 - 16:00"}, grouped["2026-09-01"])
}

func TestSelectionSet_Clear(t *testing.T) {
	s := NewSelectionSet()
	key := SelectionKey{Date: "2026-09-01", Slot: "10:00 - 12:00"}
	s.Toggle(key)

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsSelected(key))
	assert.Empty(t, s.Keys())

	// Набор пригоден к использованию после очистки
	s.Toggle(key)
	assert.True(t, s.IsSelected(key))
}
