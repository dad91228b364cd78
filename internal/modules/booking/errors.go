package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrConflict          = errors.New("equipment already booked for this period")
)
