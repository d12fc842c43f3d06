package store

import (
	"github.com/rs/zerolog"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
)

// ContractStore is an immutable in-memory contract collection.
type ContractStore struct {
	contracts []domain.Contract
}

// NewContractStore builds a ContractStore from an already-loaded slice.
func NewContractStore(contracts []domain.Contract) *ContractStore {
	return &ContractStore{contracts: contracts}
}

// LoadContractStore reads contracts from a JSON file. Unreadable or
// malformed data leaves the store empty rather than failing startup.
func LoadContractStore(path string, log zerolog.Logger) *ContractStore {
	var contracts []domain.Contract
	if err := loadJSONFile(path, &contracts); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("contract store unavailable, starting empty")
		contracts = nil
	}
	log.Info().Int("count", len(contracts)).Str("path", path).Msg("contract store loaded")
	return NewContractStore(contracts)
}

// All returns the full contract slice. Callers must treat it as read-only.
func (s *ContractStore) All() []domain.Contract {
	return s.contracts
}
