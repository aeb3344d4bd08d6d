package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"oficinareserva/internal/catalog"
	reservationserrors "oficinareserva/internal/reservations/errors"
	"oficinareserva/internal/reservations/events"
	"oficinareserva/internal/reservations/repository"
	"oficinareserva/internal/reservations/validator"
	"oficinareserva/pkg/config"
	apperrors "oficinareserva/pkg/errors"
	"oficinareserva/pkg/model"
	"oficinareserva/pkg/sanitizer"
	"oficinareserva/pkg/timeslot"
)

// slotLockTTL bounds how long a crashed request can hold a slot lock.
const slotLockTTL = 10 * time.Second

type ReservationService interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	List(ctx context.Context) ([]*model.Reservation, error)
	Cancel(ctx context.Context, id string) error
	UsageReport(ctx context.Context, startDate, endDate string) (*model.UsageReport, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	lockRepo  repository.SlotLockRepository
	catalog   *catalog.Catalog
	validator *validator.ReservationValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewReservationService(
	repo repository.ReservationRepository,
	lockRepo repository.SlotLockRepository,
	cat *catalog.Catalog,
	validator *validator.ReservationValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		repo:      repo,
		lockRepo:  lockRepo,
		catalog:   cat,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create runs the full precondition chain and persists the reservation.
// The overlap check is re-run inside the store transaction that performs
// the insert, so a slot cannot be double-booked by two racing requests
// even if both passed the earlier read.
func (s *reservationService) Create(ctx context.Context, reservation *model.Reservation) error {
	// The engine owns id and creation time; client-supplied values are ignored.
	reservation.ID = ""
	reservation.CreatedAt = time.Time{}

	s.sanitize(reservation)
	if err := s.validate(reservation); err != nil {
		return err
	}

	// Name snapshot, taken at creation time. An unknown id degrades to the
	// placeholder name rather than failing the booking.
	reservation.EquipmentName = s.catalog.ResolveName(reservation.EquipmentID)
	if !s.catalog.Exists(reservation.EquipmentID) {
		s.cfg.Log.Warn("Reservation references equipment missing from catalog",
			"equipment_id", reservation.EquipmentID,
		)
	}

	lockID, err := s.acquireSlotLock(ctx, reservation)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyNoOverlap(sessCtx, reservation); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, reservation); err != nil {
			return apperrors.Internal("Failed to save the reservation", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation", "error", err)
		return err
	}

	s.cfg.Log.Info("Reservation created successfully",
		"id", reservation.ID,
		"equipment_id", reservation.EquipmentID,
		"date", reservation.Date,
		"start_time", reservation.StartTime,
		"end_time", reservation.EndTime,
	)

	if err := s.publisher.ReservationCreated(ctx, reservation); err != nil {
		s.cfg.Log.Warn("Failed to publish reservation.created event",
			"id", reservation.ID, "error", err)
	}

	return nil
}

// List returns every reservation in storage order. The listing is a
// non-critical read path: a store failure degrades to an empty result
// instead of propagating.
func (s *reservationService) List(ctx context.Context) ([]*model.Reservation, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list reservations, degrading to empty result", "error", err)
		return []*model.Reservation{}, nil
	}

	if reservations == nil {
		reservations = []*model.Reservation{}
	}
	return reservations, nil
}

// Cancel removes the reservation with the given id. Cancelling an id that
// does not exist succeeds: repeated cancels and cancels racing a manual
// cleanup are not errors. Store failures still propagate.
func (s *reservationService) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationserrors.ErrNotFound) {
			s.cfg.Log.Debug("Cancel of unknown reservation treated as success", "id", id)
			return nil
		}
		if errors.Is(err, reservationserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid reservation ID format")
		}
		return apperrors.Internal("Failed to cancel the reservation", err)
	}

	s.cfg.Log.Info("Reservation cancelled successfully", "id", id)

	if err := s.publisher.ReservationCancelled(ctx, id); err != nil {
		s.cfg.Log.Warn("Failed to publish reservation.cancelled event", "id", id, "error", err)
	}

	return nil
}

// UsageReport counts reservations per equipment over an inclusive date
// range. Items follow catalog order; equipment missing from the catalog is
// still counted under its snapshot id.
func (s *reservationService) UsageReport(ctx context.Context, startDate, endDate string) (*model.UsageReport, error) {
	if !timeslot.ValidDate(startDate) || !timeslot.ValidDate(endDate) {
		return nil, apperrors.InvalidInput("Report dates must be valid dates in YYYY-MM-DD format")
	}
	if startDate > endDate {
		return nil, apperrors.InvalidInput("Report start date must not be after the end date")
	}

	reservations, err := s.repo.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		s.cfg.Log.Error("Failed to build usage report", "error", err)
		return nil, apperrors.Internal("Failed to build the usage report", err)
	}

	counts := make(map[string]int)
	for _, r := range reservations {
		counts[r.EquipmentID]++
	}

	report := &model.UsageReport{
		StartDate: startDate,
		EndDate:   endDate,
		Total:     len(reservations),
		Items:     make([]model.EquipmentUsage, 0, len(counts)),
	}
	for _, eq := range s.catalog.List() {
		report.Items = append(report.Items, model.EquipmentUsage{
			EquipmentID:   eq.ID,
			EquipmentName: eq.Name,
			Count:         counts[eq.ID],
		})
		delete(counts, eq.ID)
	}
	for id, count := range counts {
		report.Items = append(report.Items, model.EquipmentUsage{
			EquipmentID:   id,
			EquipmentName: s.catalog.ResolveName(id),
			Count:         count,
		})
	}

	return report, nil
}

// --- Helpers ---

func (s *reservationService) sanitize(r *model.Reservation) {
	r.UserName = sanitizer.NormalizeName(r.UserName)
	r.Observation = sanitizer.NormalizeObservation(r.Observation)
	r.EquipmentID = sanitizer.TrimAndNormalize(r.EquipmentID)
	r.Date = sanitizer.TrimAndNormalize(r.Date)
	r.StartTime = sanitizer.TrimAndNormalize(r.StartTime)
	r.EndTime = sanitizer.TrimAndNormalize(r.EndTime)
}

func (s *reservationService) validate(r *model.Reservation) error {
	err := s.validator.Validate(r)
	if err == nil {
		return nil
	}

	s.cfg.Log.Warn("Reservation validation failed", "error", err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(verrs[0].Message, map[string]any{
			"field": verrs[0].Field,
		})
	}
	return apperrors.Validation("Reservation validation failed", map[string]any{
		"error": err.Error(),
	})
}

func (s *reservationService) verifyNoOverlap(ctx context.Context, reservation *model.Reservation) error {
	existing, err := s.repo.FindByEquipmentAndDate(ctx,
		reservation.EquipmentID,
		reservation.Date,
		reservation.StartTime,
		reservation.EndTime,
	)
	if err != nil {
		return apperrors.Internal("Failed to check existing reservations", err)
	}

	for _, r := range existing {
		if r.ID == reservation.ID {
			continue
		}
		if timeslot.Overlaps(r.StartTime, r.EndTime, reservation.StartTime, reservation.EndTime) {
			return apperrors.Conflict(fmt.Sprintf(
				"This equipment is already reserved from %s to %s on %s",
				r.StartTime, r.EndTime, r.Date,
			))
		}
	}
	return nil
}

// acquireSlotLock serializes create requests racing for the same
// equipment/date/start slot. Returns Conflict when another request holds
// the lock.
func (s *reservationService) acquireSlotLock(ctx context.Context, reservation *model.Reservation) (string, error) {
	lockID := fmt.Sprintf("slot_lock_%s_%s_%s",
		reservation.EquipmentID, reservation.Date, reservation.StartTime)

	lock := &model.SlotLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(slotLockTTL),
	}

	if _, err := s.lockRepo.Create(ctx, lock); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This time slot is being reserved by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire slot lock", err)
	}

	return lockID, nil
}

func (s *reservationService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}
