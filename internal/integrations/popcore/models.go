package popcore

// Movie фильм из каталога core-бэкенда
type Movie struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Genre           []string `json:"genre"`
	DurationMinutes int      `json:"duration_minutes"`
	ReleaseDate     string   `json:"release_date"` // YYYY-MM-DD
	PosterURL       string   `json:"poster_url"`
}

// MovieInput данные для создания или обновления фильма
type MovieInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Genre           []string `json:"genre"`
	DurationMinutes int      `json:"duration_minutes"`
	ReleaseDate     string   `json:"release_date"`
	PosterURL       string   `json:"poster_url"`
}

// Theater кинотеатр сети
type Theater struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// Hall зал кинотеатра. Справочные данные, из этого сервиса не изменяются.
type Hall struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Showtime сеанс, созданный на core-бэкенде
type Showtime struct {
	ID          int64   `json:"id"`
	MovieID     int64   `json:"movie_id"`
	MovieTitle  string  `json:"movie_title,omitempty"`
	HallID      int64   `json:"hall_id"`
	HallName    string  `json:"hall_name,omitempty"`
	TheaterID   int64   `json:"theater_id,omitempty"`
	TheaterName string  `json:"theater_name,omitempty"`
	StartTime   string  `json:"start_time"` // ISO8601
	EndTime     string  `json:"end_time"`   // ISO8601
	PriceAmount float64 `json:"price_amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// CreateShowtimeRequest тело POST /movies/{movieId}/showtimes
type CreateShowtimeRequest struct {
	HallID      int64   `json:"hall_id"`
	StartTime   string  `json:"start_time"` // ISO8601
	EndTime     string  `json:"end_time"`   // ISO8601
	PriceAmount float64 `json:"price_amount"`
}

// DailyReport строка отчета продаж по дням
type DailyReport struct {
	Date          string  `json:"date"`
	TotalTickets  int     `json:"total_tickets"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// TicketStats агрегированная статистика продаж для графиков
type TicketStats struct {
	TotalTickets int               `json:"total_tickets"`
	TotalRevenue float64           `json:"total_revenue"`
	DataPoints   []TicketDataPoint `json:"data_points"`
}

// TicketDataPoint точка графика продаж
type TicketDataPoint struct {
	Day         string  `json:"day"`
	TicketsSold int     `json:"tickets_sold"`
	Revenue     float64 `json:"revenue"`
}

// bookingInterval занятый интервал зала в ответе core-бэкенда
type bookingInterval struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// conflictResponse тело ответа 409 при пересечении сеансов
type conflictResponse struct {
	Conflict []bookingInterval `json:"conflict"`
}

// listEnvelope обертка списочных ответов core-бэкенда
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// ErrorResponse модель ошибки core-бэкенда
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
