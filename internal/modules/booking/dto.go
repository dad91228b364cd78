package booking

type CreateBookingRequest struct {
	ClientID  int64    `json:"client_id" binding:"required"`
	AgentID   *int64   `json:"agent_id"`
	Matricule string   `json:"matricule" binding:"required"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	Amount    *float64 `json:"amount"`
}

// UpdateBookingRequest carries partial-update semantics: nil fields
// keep their stored value. Matricule is the exception — it must always
// be present, changed or not.
type UpdateBookingRequest struct {
	ClientID  *int64   `json:"client_id"`
	AgentID   *int64   `json:"agent_id"`
	Matricule string   `json:"matricule"`
	StartDate *string  `json:"start_date"`
	EndDate   *string  `json:"end_date"`
	Amount    *float64 `json:"amount"`
	Status    *string  `json:"status"`
}
