package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GafnerMendes/contracts-api/internal/core/ports"
)

// messageResponse is the standard envelope for informational and error replies.
type messageResponse struct {
	Message string `json:"message"`
}

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — reports the record counts of
// the startup-loaded stores. An empty store is a legitimate state (load
// failures are tolerated by design), so readiness never fails on it.
type ReadinessHandler struct {
	users     ports.UserStore
	contracts ports.ContractStore
}

func NewReadinessHandler(users ports.UserStore, contracts ports.ContractStore) *ReadinessHandler {
	return &ReadinessHandler{users: users, contracts: contracts}
}

type storeStatus struct {
	Records int `json:"records"`
}

type readinessResponse struct {
	Status string                 `json:"status"`
	Stores map[string]storeStatus `json:"stores"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	return c.JSON(http.StatusOK, readinessResponse{
		Status: "ok",
		Stores: map[string]storeStatus{
			"users":     {Records: len(h.users.All())},
			"contracts": {Records: len(h.contracts.All())},
		},
	})
}
