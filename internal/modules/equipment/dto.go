package equipment

type CreateEquipmentRequest struct {
	Matricule  string  `json:"matricule" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	DailyPrice float64 `json:"daily_price" binding:"required"`
	Status     string  `json:"status"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateEquipmentRequest struct {
	Category   string  `json:"category"`
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	DailyPrice float64 `json:"daily_price"`
	Status     string  `json:"status"`
}
