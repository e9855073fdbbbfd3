package appointment

import (
	"context"

	"github.com/amdeilami/alicetant/internal/audit"
	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/metrics"
	"github.com/amdeilami/alicetant/internal/models"
	"github.com/amdeilami/alicetant/internal/timezone"
)

// Actor is the authenticated identity performing the operation, as resolved
// by the auth middleware. The usecase never authenticates by itself.
type Actor struct {
	UserID uint
	Role   string
}

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actor Actor,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(ap, actor); err != nil {
		return nil, err
	}

	// ACTIVE → CANCELLED é a única transição; repetir cancelamento falha.
	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.IncCancellation()
	uc.audit.Dispatch(audit.Event{
		BusinessID: ap.BusinessID,
		UserID:     &actor.UserID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}

func (uc *CancelAppointment) authorize(ap *models.Appointment, actor Actor) error {
	switch actor.Role {
	case models.RoleProvider:
		if ap.Business.ProviderID == actor.UserID {
			return nil
		}
	case models.RoleCustomer:
		if domain.HasCustomer(ap, actor.UserID) {
			return nil
		}
	}
	return httperr.ErrBusinessf(
		httperr.CodeUnauthorizedAccess,
		"actor is not allowed to cancel this appointment",
	)
}
