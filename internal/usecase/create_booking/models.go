package create_booking

import (
	"time"

	"github.com/Daniil2209/Cleandins/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceKey      string          // Ключ тарифа из каталога ("one-time", "monthly")
	Date            time.Time       // Дата бронирования (без времени)
	StartTime       types.TimeLabel // Метка слота начала (например, "3:30 PM")
	TotalBins       int             // Количество баков
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	WashingLocation string  // Место мойки на участке клиента
	Notes           *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64           // ID созданного бронирования
	ServiceKey      string          // Ключ тарифа
	ServiceName     string          // Название тарифа (денормализовано)
	Date            time.Time       // Дата бронирования
	StartTime       types.TimeLabel // Время начала
	TotalBins       int             // Количество баков
	DurationSlots   int             // Длительность в слотах
	DurationMinutes int             // Длительность в минутах
	Price           float64         // Итоговая цена
	Status          string          // Статус бронирования

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	WashingLocation string
	Notes           *string

	CreatedAt time.Time // Время создания
}
