// Package metrics defines and registers all custom Prometheus metrics for
// the contracts API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contracts_api"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the auth guard.
// Label:
//   - reason: "missing_header", "malformed", "expired", "invalid", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization, by reason.",
	},
	[]string{"reason"},
)

// ContractSearchesTotal counts contract listing queries.
// Label:
//   - result: "hit" (at least one match) or "empty"
var ContractSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contract_searches_total",
		Help:      "Total number of contract searches, by result.",
	},
	[]string{"result"},
)
