package appointment

import (
	"context"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
)

type CheckSlotAvailability struct {
	repo domain.Repository
}

func NewCheckSlotAvailability(repo domain.Repository) *CheckSlotAvailability {
	return &CheckSlotAvailability{repo: repo}
}

func (uc *CheckSlotAvailability) Execute(
	ctx context.Context,
	businessID uint,
	date string,
	timeOfDay string,
) (bool, error) {

	if _, err := domain.CombineDateTime(date, timeOfDay); err != nil {
		return false, err
	}

	if _, err := uc.repo.GetBusinessByID(ctx, businessID); err != nil {
		return false, err
	}

	return uc.repo.IsSlotAvailable(ctx, businessID, date, timeOfDay)
}
