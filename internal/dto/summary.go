package dto

// SummaryResponseDTO maps table or view names to row counts.
type SummaryResponseDTO map[string]int64
