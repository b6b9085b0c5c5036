package schedule_showtimes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
)

// fakePopcoreClient записывает отправленные слоты и отвечает по заданному
// сценарию: failAt задает номер вызова (с единицы), на котором вернуть err.
type fakePopcoreClient struct {
	mu     sync.Mutex
	sent   []*popcoreClient.CreateShowtimeRequest
	failAt int
	err    error
	nextID int64

	block chan struct{} // если задан, вызов ждет закрытия канала
}

func (f *fakePopcoreClient) CreateShowtime(_ context.Context, _ int64, input *popcoreClient.CreateShowtimeRequest) (*popcoreClient.Showtime, error) {
	if f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, input)
	if f.failAt > 0 && len(f.sent) == f.failAt {
		return nil, f.err
	}

	f.nextID++
	return &popcoreClient.Showtime{
		ID:        f.nextID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		MovieID:     3,
		HallID:      7,
		PriceAmount: 450,
		Dates:       []time.Time{day(t, "2026-09-01"), day(t, "2026-09-02")},
		Selections: []domain.SelectionKey{
			{Date: "2026-09-01", Slot: "10:00 - 12:00"},
			{Date: "2026-09-01", Slot: "14:00 - 16:00"},
			{Date: "2026-09-02", Slot: "18:00 - 20:00"},
		},
	}
}

func newUseCase(client PopcoreClient) *UseCase {
	return NewUseCase(client, domain.DefaultSlotGrid(), domain.DefaultMaxDurationHours, nopLogger{})
}

func TestExecute_FullSuccess(t *testing.T) {
	client := &fakePopcoreClient{}
	uc := newUseCase(client)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	require.Len(t, resp.Created, 3)
	assert.Equal(t, "2026-09-01", resp.Created[0].Date)
	assert.Equal(t, "10:00 - 12:00", resp.Created[0].Slot)
	assert.Equal(t, int64(1), resp.Created[0].ShowtimeID)
	assert.Equal(t, "18:00 - 20:00", resp.Created[2].Slot)

	// Все слоты ушли с ценой пакета
	require.Len(t, client.sent, 3)
	for _, sent := range client.sent {
		assert.Equal(t, int64(7), sent.HallID)
		assert.Equal(t, 450.0, sent.PriceAmount)
	}
}

func TestExecute_ConflictStopsBatch(t *testing.T) {
	// Конфликт на втором слоте: первый создан, третий не отправляется
	conflicting := domain.TimeInterval{
		Start: day(t, "2026-09-01").Add(15 * time.Hour),
		End:   day(t, "2026-09-01").Add(17 * time.Hour),
	}
	client := &fakePopcoreClient{
		failAt: 2,
		err:    &popcoreClient.ConflictError{Conflicting: conflicting},
	}
	uc := newUseCase(client)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)
	assert.Nil(t, resp)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "2026-09-01", conflictErr.Date)
	assert.Equal(t, "14:00 - 16:00", conflictErr.Slot)
	assert.Equal(t, conflicting, conflictErr.Conflicting)

	// Успевший создаться сеанс перечислен в ошибке
	require.Len(t, conflictErr.Created, 1)
	assert.Equal(t, "10:00 - 12:00", conflictErr.Created[0].Slot)

	// Третий слот не отправлялся
	assert.Len(t, client.sent, 2)
}

func TestExecute_SubmitFailureStopsBatch(t *testing.T) {
	client := &fakePopcoreClient{
		failAt: 3,
		err:    errors.New("network timeout"),
	}
	uc := newUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.Error(t, err)

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, "2026-09-02", submitErr.Date)
	assert.Equal(t, "18:00 - 20:00", submitErr.Slot)
	assert.Len(t, submitErr.Created, 2)
}

func TestExecute_MovieNotFound(t *testing.T) {
	client := &fakePopcoreClient{
		failAt: 1,
		err:    popcoreClient.ErrMovieNotFound,
	}
	uc := newUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestExecute_InvalidDurationRejectsWholeBatch(t *testing.T) {
	// Слот на 13 часов при максимуме 6: пакет отклоняется целиком,
	// включая корректный первый слот, без единого сетевого вызова
	client := &fakePopcoreClient{}
	grid := domain.SlotGrid{OpenHour: 9, CloseHour: 22, SlotLengthHours: 13}
	uc := NewUseCase(client, grid, domain.DefaultMaxDurationHours, nopLogger{})

	req := &Request{
		MovieID:     3,
		HallID:      7,
		PriceAmount: 450,
		Dates:       []time.Time{day(t, "2026-09-01")},
		Selections: []domain.SelectionKey{
			{Date: "2026-09-01", Slot: "09:00 - 22:00"},
		},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Empty(t, client.sent)
}

func TestExecute_StaleSelectionRejected(t *testing.T) {
	// Метка со старой сетки после смены шага не должна дойти до бэкенда
	client := &fakePopcoreClient{}
	uc := newUseCase(client)

	req := validRequest(t)
	req.Selections = []domain.SelectionKey{
		{Date: "2026-09-01", Slot: "11:00 - 13:00"},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaleSelection)
	assert.Empty(t, client.sent)
}

func TestExecute_SelectionDateOutsidePickedDates(t *testing.T) {
	client := &fakePopcoreClient{}
	uc := newUseCase(client)

	req := validRequest(t)
	req.Selections = append(req.Selections, domain.SelectionKey{
		Date: "2026-12-31", Slot: "10:00 - 12:00",
	})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, client.sent)
}

func TestExecute_Preconditions(t *testing.T) {
	client := &fakePopcoreClient{}
	uc := newUseCase(client)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"no movie", func(r *Request) { r.MovieID = 0 }},
		{"no hall", func(r *Request) { r.HallID = 0 }},
		{"negative price", func(r *Request) { r.PriceAmount = -1 }},
		{"no dates", func(r *Request) { r.Dates = nil }},
		{"no selections", func(r *Request) { r.Selections = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Empty(t, client.sent)
}

func TestExecute_SecondBatchRejectedWhileInFlight(t *testing.T) {
	client := &fakePopcoreClient{block: make(chan struct{})}
	uc := newUseCase(client)

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), validRequest(t))
		firstDone <- err
	}()

	// Дожидаемся, пока первый пакет займет отправку
	require.Eventually(t, func() bool {
		return uc.inFlight.Load()
	}, time.Second, 5*time.Millisecond)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrBatchInFlight)

	close(client.block)
	require.NoError(t, <-firstDone)

	// После завершения пакета отправка снова доступна
	_, err = uc.Execute(context.Background(), validRequest(t))
	assert.NoError(t, err)
}

func TestExecute_DuplicateSelectionRejected(t *testing.T) {
	client := &fakePopcoreClient{}
	uc := newUseCase(client)

	req := validRequest(t)
	req.Selections = append(req.Selections, req.Selections[0])

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, client.sent)
}
