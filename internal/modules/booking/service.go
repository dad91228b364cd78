package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"rentpark/internal/domain"
	"rentpark/internal/repository"
)

const dayLayout = "2006-01-02"

// Event types pushed to the dashboard feed.
const (
	EventBookingCreated   = "booking_created"
	EventBookingUpdated   = "booking_updated"
	EventBookingCancelled = "booking_cancelled"
	EventBookingCompleted = "booking_completed"
	EventBookingDeleted   = "booking_deleted"
)

type Service struct {
	bookings  BookingRepository
	equipment EquipmentReader
	events    EventPublisher
}

func NewService(bookings BookingRepository, equipment EquipmentReader, events EventPublisher) *Service {
	return &Service{
		bookings:  bookings,
		equipment: equipment,
		events:    events,
	}
}

// List sweeps expired bookings first, then returns the enriched rows,
// most recent booking first.
func (s *Service) List(ctx context.Context) ([]repository.BookingDetails, error) {
	if _, err := s.bookings.ExpireOverdue(ctx, startOfToday()); err != nil {
		return nil, err
	}
	return s.bookings.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.Matricule == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, ErrValidation
	}

	start, err := parseDay(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := parseDay(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if end.Before(start) {
		return nil, ErrValidation
	}

	eq, err := s.equipment.GetByMatricule(ctx, req.Matricule)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	cnt, err := s.bookings.CountOverlapping(ctx, req.Matricule, start, end, 0)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrConflict
	}

	amount := float64(domain.InclusiveDays(start, end)) * eq.DailyPrice
	if req.Amount != nil {
		amount = *req.Amount
	}

	b := &domain.Booking{
		ClientID:  req.ClientID,
		AgentID:   req.AgentID,
		Matricule: req.Matricule,
		StartDate: start,
		EndDate:   end,
		Amount:    amount,
		Status:    domain.BookingActive,
	}

	if err := s.bookings.Create(ctx, b, amount); err != nil {
		return nil, mapStoreError(err)
	}

	s.publish(EventBookingCreated, b)
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	if req.Matricule == "" {
		return nil, ErrValidation
	}

	prior, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	eq, err := s.equipment.GetByMatricule(ctx, req.Matricule)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	b := *prior
	b.Matricule = req.Matricule

	if req.ClientID != nil {
		b.ClientID = *req.ClientID
	}
	if req.AgentID != nil {
		b.AgentID = req.AgentID
	}
	if req.Status != nil {
		next := domain.BookingStatus(*req.Status)
		switch next {
		case domain.BookingActive, domain.BookingCompleted, domain.BookingCancelled:
		default:
			return nil, ErrValidation
		}
		// completed and cancelled are terminal
		if prior.Status != domain.BookingActive && next != prior.Status {
			return nil, ErrValidation
		}
		b.Status = next
	}
	if req.StartDate != nil {
		if b.StartDate, err = parseDay(*req.StartDate); err != nil {
			return nil, ErrValidation
		}
	}
	if req.EndDate != nil {
		if b.EndDate, err = parseDay(*req.EndDate); err != nil {
			return nil, ErrValidation
		}
	}
	if b.EndDate.Before(b.StartDate) {
		return nil, ErrValidation
	}

	if req.StartDate != nil && req.EndDate != nil {
		b.Amount = float64(b.Days()) * eq.DailyPrice
	} else if req.Amount != nil {
		b.Amount = *req.Amount
	}

	if err := s.bookings.Update(ctx, &b, prior.Matricule); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapStoreError(err)
	}

	switch b.Status {
	case domain.BookingCancelled:
		s.publish(EventBookingCancelled, &b)
	case domain.BookingCompleted:
		s.publish(EventBookingCompleted, &b)
	default:
		s.publish(EventBookingUpdated, &b)
	}
	return &b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.publish(EventBookingDeleted, b)
	return nil
}

// ExpireOverdue completes every active booking that ended before today
// and frees its equipment. Safe to invoke repeatedly.
func (s *Service) ExpireOverdue(ctx context.Context) (int64, error) {
	return s.bookings.ExpireOverdue(ctx, startOfToday())
}

func (s *Service) publish(event string, b *domain.Booking) {
	if s.events != nil {
		s.events.PublishBookingEvent(event, b)
	}
}

// mapStoreError translates store-level conflict signals into ErrConflict:
// the repository's in-transaction re-check, or the PostgreSQL
// idx_no_double_rental exclusion constraint hit by a concurrent writer.
func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrOverlap) {
		return ErrConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if (pgErr.Code == "23505" || pgErr.Code == "23P01") && pgErr.ConstraintName == "idx_no_double_rental" {
			return ErrConflict
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEquipmentNotFound
	}
	return err
}

func parseDay(s string) (time.Time, error) {
	d, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// startOfToday is the sweep cutoff: a booking ending yesterday or
// earlier is overdue, one ending today is still on its last day.
func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
