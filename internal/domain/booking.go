package domain

import "time"

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking reserves one equipment unit for an inclusive date range.
// Both StartDate and EndDate are whole calendar days (UTC midnight);
// a booking with StartDate == EndDate covers exactly one day.
type Booking struct {
	ID        int64         `json:"id"`
	ClientID  int64         `json:"client_id" validate:"required"`
	AgentID   *int64        `json:"agent_id,omitempty"`
	Matricule string        `json:"matricule" validate:"required"`
	StartDate time.Time     `json:"start_date" validate:"required"`
	EndDate   time.Time     `json:"end_date" validate:"required"`
	Amount    float64       `json:"amount"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Days returns the number of charged days, inclusive of both ends.
func (b *Booking) Days() int {
	return InclusiveDays(b.StartDate, b.EndDate)
}

// InclusiveDays counts whole calendar days between start and end,
// counting both boundary days. Returns 0 or less when end precedes start.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
