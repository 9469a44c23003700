package handler

import (
	"medicinna/internal/registry"
	"medicinna/internal/verification"
)

// VerifyResponse is the transport shape for a verification verdict. Data is
// null when no registry record matched the code.
type VerifyResponse struct {
	Status  string         `json:"status"`
	Details string         `json:"details"`
	Data    *BatchResponse `json:"data"`
}

// BatchResponse serializes a registry record with the calendar-date expiry
// format clients expect.
type BatchResponse struct {
	BatchCode    string  `json:"batch_id"`
	MedicineName string  `json:"medicine_name"`
	Manufacturer string  `json:"manufacturer"`
	ExpiryDate   string  `json:"expiry_date"`
	Purity       float64 `json:"purity"`
	Recalled     bool    `json:"is_recalled"`
}

// FromResult converts an engine result into the transport shape.
func FromResult(result *verification.Result) VerifyResponse {
	return VerifyResponse{
		Status:  string(result.Status),
		Details: result.Details,
		Data:    fromBatch(result.Batch),
	}
}

func fromBatch(batch *registry.Batch) *BatchResponse {
	if batch == nil {
		return nil
	}
	return &BatchResponse{
		BatchCode:    batch.BatchCode,
		MedicineName: batch.MedicineName,
		Manufacturer: batch.Manufacturer,
		ExpiryDate:   batch.ExpiryDate.Format("2006-01-02"),
		Purity:       batch.Purity,
		Recalled:     batch.Recalled,
	}
}
