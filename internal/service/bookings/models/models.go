package models

import (
	"time"

	"github.com/Daniil2209/Cleandins/internal/domain"
)

// Request модели

// GetCustomerBookingsRequest запрос на получение истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerPhone    string `json:"customerPhone"`
	IncludeCancelled bool   `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	ServiceKey      string  `json:"serviceKey"`
	ServiceName     string  `json:"serviceName"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "3:30 PM"
	TotalBins       int     `json:"totalBins"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`

	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	WashingLocation string  `json:"washingLocation"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		ServiceKey:      string(b.ServiceKey),
		ServiceName:     b.ServiceName,
		BookingDate:     b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		TotalBins:       b.TotalBins,
		DurationMinutes: b.DurationMinutes(),
		Price:           b.Price,
		Status:          string(b.Status),
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerAddress: b.CustomerAddress,
		WashingLocation: b.WashingLocation,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
