package get_schedule_grid

import "fmt"

// validateRequest валидирует входные данные запроса.
// Нулевая дата допустима - use case подставит сегодняшний день.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user ID is required", ErrInvalidInput)
	}
	return nil
}
