package entity

import (
	"context"
	"time"
)


const (
	StatusVerified = "Verified"
	StatusToCheck  = "To Check"
)

// VerifiedThreshold é a confiança mínima para classificar um lead como Verified
const VerifiedThreshold = 0.6


type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"` // Código do país (ex: "US") ou "Unknown"
	Probability float64   `json:"probability"`
	Status      string    `json:"status"` // Verified, To Check
	SyncedToCRM bool      `json:"syncedToCRM"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}


// StatusFor aplica o threshold fixo de verificação
func StatusFor(probability float64) string {
	if probability >= VerifiedThreshold {
		return StatusVerified
	}
	return StatusToCheck
}


type LeadRepositoryInterface interface {

	InsertMany(ctx context.Context, leads []*Lead) error

	FindUnsyncedVerified(ctx context.Context) ([]*Lead, error)

	MarkSynced(ctx context.Context, id string) error

	FindAll(ctx context.Context, status string) ([]*Lead, error)
}
