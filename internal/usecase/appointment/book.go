package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/amdeilami/alicetant/internal/audit"
	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/metrics"
	"github.com/amdeilami/alicetant/internal/models"
	"github.com/amdeilami/alicetant/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	BusinessID  uint
	CustomerIDs []uint

	Date  string // "2006-01-02"
	Time  string // "15:04"
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validation before touching the database
	// --------------------------------------------------
	if len(in.CustomerIDs) == 0 {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidAppointmentData,
			"at least one customer is required",
		)
	}

	if err := domain.ValidateFuture(in.Date, in.Time, timezone.Now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Business must exist
	// --------------------------------------------------
	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Every customer must resolve
	// --------------------------------------------------
	customers, err := uc.repo.GetCustomersByIDs(ctx, in.CustomerIDs)
	if err != nil {
		return nil, err
	}
	if len(customers) != len(uniqueIDs(in.CustomerIDs)) {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidAppointmentData,
			"one or more customers not found",
		)
	}

	// --------------------------------------------------
	// 4. Transactional reserve: re-check + insert + links.
	//    The unique index is the tie-break under races.
	// --------------------------------------------------
	ap := &models.Appointment{
		Reference:  uuid.NewString(),
		BusinessID: biz.ID,
		Date:       in.Date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap, uniqueIDs(in.CustomerIDs)); err != nil {
		if httperr.IsBusiness(err, httperr.CodeTimeSlotConflict) {
			metrics.IncBookingConflict()
			uc.audit.Dispatch(audit.Event{
				BusinessID: biz.ID,
				Action:     "appointment_conflict",
				Entity:     "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	metrics.IncBooking()
	uc.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
