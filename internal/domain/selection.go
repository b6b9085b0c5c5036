package domain

// SelectionKey составной идентификатор выбранного слота: (дата, метка слота).
// Дата в формате YYYY-MM-DD, метка - "HH:00 - HH:00".
type SelectionKey struct {
	Date string
	Slot string
}

// SelectionSet набор выбранных оператором слотов.
// Ключ присутствует не более одного раза; порядок добавления сохраняется,
// чтобы последовательность отправки была детерминированной.
type SelectionSet struct {
	keys  []SelectionKey
	index map[SelectionKey]struct{}
}

// NewSelectionSet создает пустой набор выбранных слотов
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{
		index: make(map[SelectionKey]struct{}),
	}
}

// Toggle переключает ключ: добавляет, если отсутствует, удаляет, если есть.
// Повторный вызов с тем же ключом возвращает набор в исходное состояние.
func (s *SelectionSet) Toggle(key SelectionKey) {
	if _, ok := s.index[key]; ok {
		delete(s.index, key)
		for i, k := range s.keys {
			if k == key {
				s.keys = append(s.keys[:i], s.keys[i+1:]...)
				break
			}
		}
		return
	}

	s.index[key] = struct{}{}
	s.keys = append(s.keys, key)
}

// IsSelected проверяет принадлежность ключа набору
func (s *SelectionSet) IsSelected(key SelectionKey) bool {
	_, ok := s.index[key]
	return ok
}

// Clear очищает набор. Вызывается при любой смене зала или набора дат:
// метки слотов могли перестать соответствовать действительным слотам,
// и устаревший ключ не должен дойти до отправки.
func (s *SelectionSet) Clear() {
	s.keys = nil
	s.index = make(map[SelectionKey]struct{})
}

// Keys возвращает ключи в порядке добавления
func (s *SelectionSet) Keys() []SelectionKey {
	out := make([]SelectionKey, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len возвращает количество выбранных слотов
func (s *SelectionSet) Len() int {
	return len(s.keys)
}

// GroupByDate группирует ключи по дате, сохраняя порядок первого появления
// даты и порядок слотов внутри даты. Именно в этом порядке слоты
// отправляются на бэкенд.
func (s *SelectionSet) GroupByDate() ([]string, map[string][]string) {
	dates := make([]string, 0)
	grouped := make(map[string][]string)

	for _, key := range s.keys {
		if _, ok := grouped[key.Date]; !ok {
			dates = append(dates, key.Date)
		}
		grouped[key.Date] = append(grouped[key.Date], key.Slot)
	}

	return dates, grouped
}
