package book_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_slot: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже забронирован
	ErrSlotAlreadyBooked = errors.New("book_slot: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)
