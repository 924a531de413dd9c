package domain

import (
	"time"

	"github.com/Daniil2209/Cleandins/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed bin-cleaning order
type Booking struct {
	ID            int64 // производная от времени создания (UnixMilli)
	ServiceKey    PlanKey
	Date          time.Time // календарный день, без времени
	StartTime     types.TimeLabel
	TotalBins     int
	DurationSlots int // сколько последовательных слотов сетки занимает работа
	Price         float64
	Status        BookingStatus

	// Denormalized data for history
	ServiceName string

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	WashingLocation string
	Notes           *string

	CreatedAt time.Time
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// DurationMinutes returns the job duration in minutes
func (b *Booking) DurationMinutes() int {
	return b.DurationSlots * SlotMinutes
}

// SameCustomer сравнивает идентичность клиентов
// Идентичность - это строка телефона как есть: два клиента с одним номером
// неразличимы. Осознанное упрощение, вынесено в отдельную функцию,
// чтобы его было видно и легко заменить
func SameCustomer(phoneA, phoneB string) bool {
	return phoneA == phoneB
}

// SameMonth проверяет, что две даты относятся к одному календарному месяцу и году
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date             *time.Time // Бронирования на конкретный календарный день
	ServiceKey       *PlanKey   // Фильтр по тарифу
	CustomerPhone    *string    // Фильтр по телефону клиента
	Month            *time.Time // Бронирования, чья дата попадает в календарный месяц этой даты
	IncludeCancelled bool       // Включать ли отмененные бронирования
}
