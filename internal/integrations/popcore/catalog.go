package popcore

import (
	"context"
	"fmt"
	"net/http"
)

// ListMovies получает каталог фильмов
func (c *Client) ListMovies(ctx context.Context) ([]Movie, error) {
	url := fmt.Sprintf("%s/api/v6/movies", c.baseURL)

	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var envelope listEnvelope[Movie]
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// CreateMovie создает фильм в каталоге
func (c *Client) CreateMovie(ctx context.Context, input *MovieInput) (*Movie, error) {
	url := fmt.Sprintf("%s/api/v6/movies", c.baseURL)

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
	default:
		return nil, unexpectedStatus(resp)
	}

	var movie Movie
	if err := decode(resp, &movie); err != nil {
		return nil, err
	}

	return &movie, nil
}

// UpdateMovie обновляет фильм по ID
func (c *Client) UpdateMovie(ctx context.Context, movieID int64, input *MovieInput) (*Movie, error) {
	url := fmt.Sprintf("%s/api/v6/movies/%d", c.baseURL, movieID)

	req, err := c.newRequest(ctx, http.MethodPut, url, input)
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
		return nil, ErrMovieNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var movie Movie
	if err := decode(resp, &movie); err != nil {
		return nil, err
	}

	return &movie, nil
}

// DeleteMovie удаляет фильм по ID
func (c *Client) DeleteMovie(ctx context.Context, movieID int64) error {
	url := fmt.Sprintf("%s/api/v6/movies/%d", c.baseURL, movieID)

	req, err := c.newRequest(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrMovieNotFound
	default:
		return unexpectedStatus(resp)
	}
}

// ListTheaters получает список кинотеатров сети
func (c *Client) ListTheaters(ctx context.Context) ([]Theater, error) {
	url := fmt.Sprintf("%s/api/v6/theaters", c.baseURL)

	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var envelope listEnvelope[Theater]
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// ListHalls получает залы указанного кинотеатра
func (c *Client) ListHalls(ctx context.Context, theaterID int64) ([]Hall, error) {
	url := fmt.Sprintf("%s/api/v6/theaters/%d/halls", c.baseURL, theaterID)

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
		return nil, ErrTheaterNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var envelope listEnvelope[Hall]
	if err := decode(resp, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}
