package ports

import (
	"context"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
)

// ContractFilter carries the optional query filters for the contract listing.
// Empty or whitespace-only values mean "no filter" for that field.
type ContractFilter struct {
	Empresa string // case-insensitive substring match on company name
	Inicio  string // exact match on start field
}

// ContractService filters the contract collection.
type ContractService interface {
	Search(ctx context.Context, filter ContractFilter) []domain.Contract
}
