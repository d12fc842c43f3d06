package ports

import "github.com/GafnerMendes/contracts-api/internal/core/domain"

// ContractStore is the read-only contract collection loaded at startup.
type ContractStore interface {
	All() []domain.Contract
}
