package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationResponseDTO struct {
	ID              int             `json:"id" example:"61"`
	Amount          decimal.Decimal `json:"amount" example:"-120.50"`
	TransactionType string          `json:"transaction_type" example:"internal_send"`
	LineID          int             `json:"line_id" example:"7"`
	Timestamp       time.Time       `json:"timestamp" example:"2026-09-14T16:09:57Z"`
}
