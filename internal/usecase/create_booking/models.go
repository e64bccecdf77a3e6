package create_booking

import (
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName string           // Имя владельца (естественный ключ дедупликации)
	Cats         []domain.CatLine // Кошки и выбранные типы номеров
	StartDate    time.Time        // Дата заезда (без времени)
	EndDate      time.Time        // Дата выезда (без времени, включительно в хранении)
	IsDeposited  bool             // Внесен ли депозит
	Note         *string          // Заметка (опционально, на цену не влияет)
}

// Response модель ответа с созданными строками бронирования
type Response struct {
	BookingIDs []int64 // ID созданных строк, по одной на кошку
	CustomerID int64   // ID клиента (существующего или созданного)

	// Итоги расчета стоимости
	Nights       int
	Total        float64
	DepositValue float64
	AmountDue    float64

	CreatedAt time.Time
}
