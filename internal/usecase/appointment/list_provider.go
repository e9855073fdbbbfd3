package appointment

import (
	"context"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/models"
	"github.com/amdeilami/alicetant/internal/timezone"
)

type ListProviderAppointments struct {
	repo domain.Repository
}

func NewListProviderAppointments(repo domain.Repository) *ListProviderAppointments {
	return &ListProviderAppointments{repo: repo}
}

func (uc *ListProviderAppointments) Execute(
	ctx context.Context,
	providerID uint,
	filter domain.ListProviderFilter,
) ([]models.Appointment, error) {

	// When filtering by a specific business, ownership is checked up front
	// so a provider cannot probe another tenant's appointments.
	if filter.BusinessID != nil {
		biz, err := uc.repo.GetBusinessByID(ctx, *filter.BusinessID)
		if err != nil {
			return nil, err
		}
		if biz.ProviderID != providerID {
			return nil, httperr.ErrBusinessf(
				httperr.CodeUnauthorizedAccess,
				"business is owned by another provider",
			)
		}
	}

	aps, err := uc.repo.ListAppointmentsForProvider(ctx, providerID, filter)
	if err != nil {
		return nil, err
	}

	return domain.SortForDisplay(aps, timezone.Now()), nil
}
