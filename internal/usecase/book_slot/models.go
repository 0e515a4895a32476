package book_slot

import "time"

// Request модель запроса на бронирование слота
type Request struct {
	SlotID   int64  // ID слота
	UserName string // Имя пользователя (свободный текст)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID int64     // ID созданного бронирования
	SlotID        int64     // ID забронированного слота
	UserName      string    // Имя пользователя
	Status        string    // Статус бронирования
	CreatedAt     time.Time // Время создания
}
