package appointment

import (
	"context"
	"time"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
)

type ListOpenSlots struct {
	repo domain.Repository
}

func NewListOpenSlots(repo domain.Repository) *ListOpenSlots {
	return &ListOpenSlots{repo: repo}
}

func (uc *ListOpenSlots) Execute(
	ctx context.Context,
	businessID uint,
	date string,
	slotMinutes int,
) ([]domain.TimeSlot, error) {

	day, err := time.ParseInLocation(domain.DateLayout, date, time.UTC)
	if err != nil {
		return nil, httperr.ErrBusinessf(
			httperr.CodeInvalidAppointmentData,
			"invalid date format",
		)
	}

	if _, err := uc.repo.GetBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}

	windows, err := uc.repo.ListAvailabilityForBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedTimes(ctx, businessID, date)
	if err != nil {
		return nil, err
	}

	return domain.OpenSlots(windows, booked, day, slotMinutes), nil
}
