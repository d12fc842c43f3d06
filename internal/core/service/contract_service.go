package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
	"github.com/GafnerMendes/contracts-api/internal/core/ports"
)

// ContractService filters the in-memory contract collection.
type ContractService struct {
	contracts ports.ContractStore
	log       zerolog.Logger
}

func NewContractService(contracts ports.ContractStore, log zerolog.Logger) *ContractService {
	return &ContractService{contracts: contracts, log: log}
}

// Search applies the optional empresa and inicio filters. Empresa matches
// company names case-insensitively as a substring; inicio matches exactly.
// Both filters intersect. Whitespace-only values disable that filter.
func (s *ContractService) Search(_ context.Context, filter ports.ContractFilter) []domain.Contract {
	empresa := strings.ToLower(strings.TrimSpace(filter.Empresa))
	inicio := strings.TrimSpace(filter.Inicio)

	all := s.contracts.All()
	results := make([]domain.Contract, 0, len(all))
	for _, c := range all {
		if empresa != "" && !strings.Contains(strings.ToLower(c.Empresa), empresa) {
			continue
		}
		if inicio != "" && c.Inicio != inicio {
			continue
		}
		results = append(results, c)
	}

	s.log.Debug().
		Str("empresa", empresa).
		Str("inicio", inicio).
		Int("matches", len(results)).
		Msg("contract search")

	return results
}
