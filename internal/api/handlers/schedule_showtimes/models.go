package schedule_showtimes

import (
	"fmt"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	scheduleShowtimes "github.com/wdfin/popcore-admin-service/internal/usecase/schedule_showtimes"
)

// SelectionRequest выбранный слот в HTTP запросе
type SelectionRequest struct {
	Date string `json:"date"` // "2026-09-01"
	Slot string `json:"slot"` // "10:00 - 12:00"
}

// ScheduleShowtimesRequest HTTP request model
type ScheduleShowtimesRequest struct {
	MovieID     int64              `json:"movieId"`
	HallID      int64              `json:"hallId"`
	PriceAmount float64            `json:"priceAmount"`
	Dates       []string           `json:"dates"`
	Selections  []SelectionRequest `json:"selections"`
}

// CreatedShowtimeResponse созданный сеанс в HTTP ответе
type CreatedShowtimeResponse struct {
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	ShowtimeID int64  `json:"showtimeId"`
	StartTime  string `json:"startTime"` // ISO8601
	EndTime    string `json:"endTime"`   // ISO8601
}

// ScheduleShowtimesResponse HTTP response model полностью успешного пакета
type ScheduleShowtimesResponse struct {
	MovieID int64                     `json:"movieId"`
	HallID  int64                     `json:"hallId"`
	Created []CreatedShowtimeResponse `json:"created"`
}

// IntervalResponse временной интервал в теле ошибки конфликта
type IntervalResponse struct {
	StartTime string `json:"startTime"` // ISO8601
	EndTime   string `json:"endTime"`   // ISO8601
}

// ConflictDetailResponse тело ответа 409 при конфликте слота.
// Created перечисляет сеансы, успевшие создаться до остановки пакета.
type ConflictDetailResponse struct {
	Error       string                    `json:"error"`
	Date        string                    `json:"date"`
	Slot        string                    `json:"slot"`
	Attempted   IntervalResponse          `json:"attempted"`
	Conflicting IntervalResponse          `json:"conflicting"`
	Created     []CreatedShowtimeResponse `json:"created"`
}

// SubmitFailureResponse тело ответа при сбое отправки слота
type SubmitFailureResponse struct {
	Error   string                    `json:"error"`
	Date    string                    `json:"date"`
	Slot    string                    `json:"slot"`
	Created []CreatedShowtimeResponse `json:"created"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *ScheduleShowtimesRequest) ToUseCaseRequest() (*scheduleShowtimes.Request, error) {
	dates := make([]time.Time, len(r.Dates))
	for i, raw := range r.Dates {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		dates[i] = date
	}

	selections := make([]domain.SelectionKey, len(r.Selections))
	for i, sel := range r.Selections {
		selections[i] = domain.SelectionKey{
			Date: sel.Date,
			Slot: sel.Slot,
		}
	}

	return &scheduleShowtimes.Request{
		MovieID:     r.MovieID,
		HallID:      r.HallID,
		PriceAmount: r.PriceAmount,
		Dates:       dates,
		Selections:  selections,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleShowtimes.Response) *ScheduleShowtimesResponse {
	return &ScheduleShowtimesResponse{
		MovieID: resp.MovieID,
		HallID:  resp.HallID,
		Created: fromCreatedList(resp.Created),
	}
}

func fromCreatedList(list []scheduleShowtimes.CreatedShowtime) []CreatedShowtimeResponse {
	out := make([]CreatedShowtimeResponse, len(list))
	for i, c := range list {
		out[i] = CreatedShowtimeResponse{
			Date:       c.Date,
			Slot:       c.Slot,
			ShowtimeID: c.ShowtimeID,
			StartTime:  c.Interval.Start.Format(time.RFC3339),
			EndTime:    c.Interval.End.Format(time.RFC3339),
		}
	}
	return out
}

func fromInterval(i domain.TimeInterval) IntervalResponse {
	return IntervalResponse{
		StartTime: i.Start.Format(time.RFC3339),
		EndTime:   i.End.Format(time.RFC3339),
	}
}
