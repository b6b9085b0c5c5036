package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	for _, d := range req.Dates {
		if d.IsZero() {
			return fmt.Errorf("%w: zero date in dates list", ErrInvalidInput)
		}
	}

	return nil
}
