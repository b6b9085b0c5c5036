package schedule_showtimes

import (
	"context"

	scheduleShowtimes "github.com/wdfin/popcore-admin-service/internal/usecase/schedule_showtimes"
)

type ScheduleShowtimesUseCase interface {
	Execute(ctx context.Context, req *scheduleShowtimes.Request) (*scheduleShowtimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
