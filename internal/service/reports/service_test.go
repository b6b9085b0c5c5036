package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	popcoreClient "github.com/wdfin/popcore-admin-service/internal/integrations/popcore"
	"github.com/wdfin/popcore-admin-service/pkg/ptr"
)

type fakePopcoreClient struct {
	reports []popcoreClient.DailyReport
	stats   *popcoreClient.TicketStats
	err     error

	lastQuery *popcoreClient.TicketStatsQuery
}

func (f *fakePopcoreClient) GetTheaterReports(_ context.Context, _ int64, _, _ *time.Time) ([]popcoreClient.DailyReport, error) {
	return f.reports, f.err
}

func (f *fakePopcoreClient) GetTicketStats(_ context.Context, q *popcoreClient.TicketStatsQuery) (*popcoreClient.TicketStats, error) {
	f.lastQuery = q
	return f.stats, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return ptr.Ptr(d)
}

func TestTheaterReports(t *testing.T) {
	client := &fakePopcoreClient{
		reports: []popcoreClient.DailyReport{
			{Date: "2026-09-01", TotalTickets: 120, TotalRevenue: 54000},
		},
	}
	svc := NewService(client, nopLogger{})

	rows, err := svc.TheaterReports(context.Background(), 1, date(t, "2026-09-01"), date(t, "2026-09-07"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestTheaterReports_InvalidRange(t *testing.T) {
	svc := NewService(&fakePopcoreClient{}, nopLogger{})

	_, err := svc.TheaterReports(context.Background(), 1, date(t, "2026-09-07"), date(t, "2026-09-01"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.TheaterReports(context.Background(), 0, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTheaterReports_TheaterNotFound(t *testing.T) {
	client := &fakePopcoreClient{err: popcoreClient.ErrTheaterNotFound}
	svc := NewService(client, nopLogger{})

	_, err := svc.TheaterReports(context.Background(), 404, nil, nil)
	assert.ErrorIs(t, err, ErrTheaterNotFound)
}

func TestTicketStats_FilterValidation(t *testing.T) {
	client := &fakePopcoreClient{stats: &popcoreClient.TicketStats{TotalTickets: 10}}
	svc := NewService(client, nopLogger{})

	for _, filter := range []string{"today", "week", "month"} {
		_, err := svc.TicketStats(context.Background(), &popcoreClient.TicketStatsQuery{
			TheaterID: 1, HallID: 7, Filter: filter,
		})
		assert.NoError(t, err, "filter %q", filter)
	}

	_, err := svc.TicketStats(context.Background(), &popcoreClient.TicketStatsQuery{
		TheaterID: 1, HallID: 7, Filter: "year",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Без фильтра и без явного периода запрос отклоняется
	_, err = svc.TicketStats(context.Background(), &popcoreClient.TicketStatsQuery{
		TheaterID: 1, HallID: 7,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTicketStats_ExplicitRangeSkipsFilterCheck(t *testing.T) {
	client := &fakePopcoreClient{stats: &popcoreClient.TicketStats{}}
	svc := NewService(client, nopLogger{})

	// Явный период имеет приоритет: значение фильтра не проверяется
	_, err := svc.TicketStats(context.Background(), &popcoreClient.TicketStatsQuery{
		TheaterID: 1,
		HallID:    7,
		Filter:    "year",
		StartDate: date(t, "2026-09-01"),
		EndDate:   date(t, "2026-09-07"),
	})
	require.NoError(t, err)
	require.NotNil(t, client.lastQuery)
	assert.NotNil(t, client.lastQuery.StartDate)
}

func TestTicketStats_InvalidRange(t *testing.T) {
	svc := NewService(&fakePopcoreClient{}, nopLogger{})

	_, err := svc.TicketStats(context.Background(), &popcoreClient.TicketStatsQuery{
		TheaterID: 1,
		HallID:    7,
		StartDate: date(t, "2026-09-07"),
		EndDate:   date(t, "2026-09-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.TicketStats(context.Background(), &popcoreClient.TicketStatsQuery{
		TheaterID: 0, HallID: 7, Filter: "week",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
