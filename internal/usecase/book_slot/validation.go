package book_slot

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	return nil
}
