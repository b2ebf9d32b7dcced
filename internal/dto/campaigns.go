package dto

import "time"

type AssignmentResponseDTO struct {
	UserID       int       `json:"user_id" example:"12"`
	MerchantList []string  `json:"merchant_list" example:"Starbucks"`
	StartDate    time.Time `json:"start_date" example:"2026-09-01T00:00:00Z"`
	EndDate      time.Time `json:"end_date" example:"2026-10-01T00:00:00Z"`
}
