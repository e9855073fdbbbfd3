package appointment

import (
	"context"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/models"
	"github.com/amdeilami/alicetant/internal/timezone"
)

// GroupedAppointments is the customer-facing listing: upcoming first in
// ascending order, past/cancelled after in descending order.
type GroupedAppointments struct {
	Upcoming []models.Appointment `json:"upcoming"`
	Past     []models.Appointment `json:"past"`
}

type ListCustomerAppointments struct {
	repo domain.Repository
}

func NewListCustomerAppointments(repo domain.Repository) *ListCustomerAppointments {
	return &ListCustomerAppointments{repo: repo}
}

func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	customerID uint,
) (*GroupedAppointments, error) {

	aps, err := uc.repo.ListAppointmentsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	upcoming, past := domain.Partition(aps, timezone.Now())
	return &GroupedAppointments{
		Upcoming: upcoming,
		Past:     past,
	}, nil
}
