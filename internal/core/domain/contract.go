package domain

// Contract is a read-only contract record. JSON tags keep the wire names the
// existing dataset and clients use.
type Contract struct {
	ID      int     `json:"id"`
	Empresa string  `json:"empresa"`
	Inicio  string  `json:"inicio"`
	Fim     string  `json:"fim,omitempty"`
	Valor   float64 `json:"valor,omitempty"`
}
