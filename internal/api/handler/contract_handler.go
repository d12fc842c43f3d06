package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GafnerMendes/contracts-api/internal/api/metrics"
	"github.com/GafnerMendes/contracts-api/internal/core/domain"
	"github.com/GafnerMendes/contracts-api/internal/core/ports"
)

type ContractHandler struct {
	contractService ports.ContractService
}

func NewContractHandler(contractService ports.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

type contractListResponse struct {
	Data    []domain.Contract `json:"data"`
	Message string            `json:"message,omitempty"`
}

// List returns contracts matching the optional query filters.
//
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        empresa  query     string  false  "Case-insensitive substring match on company name"
// @Param        inicio   query     string  false  "Exact match on start field"
// @Success      200      {object}  contractListResponse
// @Failure      401      {object}  messageResponse
// @Failure      404      {object}  contractListResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	results := h.contractService.Search(c.Request().Context(), ports.ContractFilter{
		Empresa: c.QueryParam("empresa"),
		Inicio:  c.QueryParam("inicio"),
	})

	if len(results) == 0 {
		metrics.ContractSearchesTotal.WithLabelValues("empty").Inc()
		return c.JSON(http.StatusNotFound, contractListResponse{
			Data:    []domain.Contract{},
			Message: "no contracts found matching your criteria",
		})
	}

	metrics.ContractSearchesTotal.WithLabelValues("hit").Inc()
	return c.JSON(http.StatusOK, contractListResponse{Data: results})
}
