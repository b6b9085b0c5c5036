package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
	getAvailableSlots "github.com/wdfin/popcore-admin-service/internal/usecase/get_available_slots"
)

// SlotResponse свободный слот в HTTP ответе
type SlotResponse struct {
	Label     string `json:"label"`     // "10:00 - 12:00"
	StartTime string `json:"startTime"` // ISO8601
	EndTime   string `json:"endTime"`   // ISO8601
}

// AvailableSlotsResponse HTTP response model.
// Dates сохраняет порядок дат из запроса.
type AvailableSlotsResponse struct {
	HallID      int64                     `json:"hallId"`
	Dates       []string                  `json:"dates"`
	SlotsByDate map[string][]SlotResponse `json:"slotsByDate"`
}

// parseDates разбирает значения query-параметра dates.
// Поддерживаются повторные параметры и список через запятую.
func parseDates(values []string) ([]time.Time, error) {
	var out []time.Time
	for _, value := range values {
		for _, raw := range strings.Split(value, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			date, err := time.Parse(domain.DateFormat, raw)
			if err != nil {
				return nil, fmt.Errorf("invalid date %q: %w", raw, err)
			}
			out = append(out, date)
		}
	}
	return out, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slotsByDate := make(map[string][]SlotResponse, len(resp.SlotsByDate))
	for date, slots := range resp.SlotsByDate {
		list := make([]SlotResponse, len(slots))
		for i, slot := range slots {
			list[i] = SlotResponse{
				Label:     slot.Label,
				StartTime: slot.StartTime.Format(time.RFC3339),
				EndTime:   slot.EndTime.Format(time.RFC3339),
			}
		}
		slotsByDate[date] = list
	}

	return &AvailableSlotsResponse{
		HallID:      resp.HallID,
		Dates:       resp.Dates,
		SlotsByDate: slotsByDate,
	}
}
