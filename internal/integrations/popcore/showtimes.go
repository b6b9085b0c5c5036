package popcore

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/wdfin/popcore-admin-service/internal/domain"
)

// GetHallBookings получает занятые интервалы зала за период [from, to].
// Результат - снимок на момент запроса; бэкенд остается источником истины,
// и отправка пересекающегося сеанса все равно будет отклонена с 409.
func (c *Client) GetHallBookings(ctx context.Context, hallID int64, from, to time.Time) ([]domain.HallBooking, error) {
	url := fmt.Sprintf("%s/api/v6/halls/%d/bookings?from=%s&to=%s",
		c.baseURL, hallID,
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrHallNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var envelope listEnvelope[bookingInterval]
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}

	bookings := make([]domain.HallBooking, 0, len(envelope.Data))
	for _, b := range envelope.Data {
		interval, err := parseInterval(b)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, domain.HallBooking{
			HallID:   hallID,
			Interval: interval,
		})
	}

	return bookings, nil
}

// CreateShowtime создает сеанс фильма.
// При пересечении с существующим сеансом бэкенд отвечает 409 с интервалом
// конфликтующего сеанса; в этом случае возвращается *ConflictError.
func (c *Client) CreateShowtime(ctx context.Context, movieID int64, input *CreateShowtimeRequest) (*Showtime, error) {
	url := fmt.Sprintf("%s/api/v6/movies/%d/showtimes", c.baseURL, movieID)

	req, err := c.newRequest(ctx, http.MethodPost, url, input)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrMovieNotFound
	case http.StatusConflict:
		return nil, c.conflictError(resp)
	default:
		return nil, unexpectedStatus(resp)
	}

	var showtime Showtime
	if err := decode(resp, &showtime); err != nil {
		return nil, err
	}

	return &showtime, nil
}

// ListHallShowtimes получает расписание сеансов зала
func (c *Client) ListHallShowtimes(ctx context.Context, hallID int64) ([]Showtime, error) {
	url := fmt.Sprintf("%s/api/v6/halls/%d/showtimes", c.baseURL, hallID)

	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrHallNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var envelope listEnvelope[Showtime]
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// conflictError разбирает тело 409 в *ConflictError.
// Если интервал конфликта разобрать не удалось, возвращаем ErrInvalidResponse:
// конфликт без деталей оператору не показать.
func (c *Client) conflictError(resp *http.Response) error {
	var body conflictResponse
	if err := decode(resp, &body); err != nil {
		return err
	}

	if len(body.Conflict) == 0 {
		return fmt.Errorf("%w: conflict response without conflicting interval", ErrInvalidResponse)
	}

	interval, err := parseInterval(body.Conflict[0])
	if err != nil {
		return err
	}

	return &ConflictError{Conflicting: interval}
}

func parseInterval(b bookingInterval) (domain.TimeInterval, error) {
	start, err := time.Parse(time.RFC3339, b.StartTime)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: bad start_time %q: %v", ErrInvalidResponse, b.StartTime, err)
	}
	end, err := time.Parse(time.RFC3339, b.EndTime)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: bad end_time %q: %v", ErrInvalidResponse, b.EndTime, err)
	}
	return domain.TimeInterval{Start: start, End: end}, nil
}
