package models

import (
	"time"

	"github.com/Daniil2209/Cleandins/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// StatsResponse ответ со статистикой сервиса
type StatsResponse struct {
	TotalBookings int     `json:"totalBookings"`
	ReviewsCount  int     `json:"reviewsCount"`
	AverageRating float64 `json:"averageRating"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:        r.ID,
		Name:      r.Name,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	if reviews == nil {
		return &ReviewListResponse{
			Reviews: []ReviewResponse{},
		}
	}

	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, len(reviews)),
	}

	for i, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews[i] = *reviewResp
		}
	}

	return resp
}
