package create_booking

import (
	"time"

	"github.com/Daniil2209/Cleandins/internal/domain"
	createBooking "github.com/Daniil2209/Cleandins/internal/usecase/create_booking"
	"github.com/Daniil2209/Cleandins/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceKey      string  `json:"serviceKey"`      // "one-time" или "monthly"
	BookingDate     string  `json:"bookingDate"`     // "2025-10-15"
	StartTime       string  `json:"startTime"`       // "3:30 PM"
	TotalBins       int     `json:"totalBins"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	WashingLocation string  `json:"washingLocation"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ServiceKey      string  `json:"serviceKey"`
	ServiceName     string  `json:"serviceName"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	TotalBins       int     `json:"totalBins"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	WashingLocation string  `json:"washingLocation"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим метку времени
	startTime, err := types.NewTimeLabelFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ServiceKey:      r.ServiceKey,
		Date:            bookingDate,
		StartTime:       startTime,
		TotalBins:       r.TotalBins,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		WashingLocation: r.WashingLocation,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ServiceKey:      resp.ServiceKey,
		ServiceName:     resp.ServiceName,
		BookingDate:     resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		TotalBins:       resp.TotalBins,
		DurationMinutes: resp.DurationMinutes,
		Price:           resp.Price,
		Status:          resp.Status,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerAddress: resp.CustomerAddress,
		WashingLocation: resp.WashingLocation,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
