package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/models"
)

func TestListProviderAppointmentsOwnershipProbe(t *testing.T) {
	repo := newFakeRepo()
	repo.addBusiness(1, 10)

	uc := NewListProviderAppointments(repo)
	otherBiz := uint(1)

	// negócio existe, mas pertence ao provider 10
	_, err := uc.Execute(context.Background(), 99, domain.ListProviderFilter{BusinessID: &otherBiz})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorizedAccess))

	missing := uint(404)
	_, err = uc.Execute(context.Background(), 10, domain.ListProviderFilter{BusinessID: &missing})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBusinessNotFound))
}

func TestListProviderAppointmentsSorted(t *testing.T) {
	repo := newFakeRepo()
	repo.providerAps = []models.Appointment{
		{ID: 1, Date: "2000-01-01", Time: "09:00", Status: string(domain.StatusActive)},
		{ID: 2, Date: "2030-01-02", Time: "09:00", Status: string(domain.StatusActive)},
		{ID: 3, Date: "2030-01-01", Time: "09:00", Status: string(domain.StatusActive)},
	}

	uc := NewListProviderAppointments(repo)

	aps, err := uc.Execute(context.Background(), 10, domain.ListProviderFilter{})
	require.NoError(t, err)
	require.Len(t, aps, 3)

	// próximos em ordem crescente, passados por último
	assert.EqualValues(t, 3, aps[0].ID)
	assert.EqualValues(t, 2, aps[1].ID)
	assert.EqualValues(t, 1, aps[2].ID)
}

func TestListCustomerAppointmentsGrouping(t *testing.T) {
	repo := newFakeRepo()
	repo.customerAps = []models.Appointment{
		{ID: 1, Date: "2000-01-01", Time: "09:00", Status: string(domain.StatusActive)},
		{ID: 2, Date: "2030-01-01", Time: "09:00", Status: string(domain.StatusActive)},
		{ID: 3, Date: "2030-02-01", Time: "09:00", Status: string(domain.StatusCancelled)},
	}

	uc := NewListCustomerAppointments(repo)

	grouped, err := uc.Execute(context.Background(), 20)
	require.NoError(t, err)

	// cancelados nunca entram em upcoming, mesmo no futuro
	require.Len(t, grouped.Upcoming, 1)
	assert.EqualValues(t, 2, grouped.Upcoming[0].ID)

	require.Len(t, grouped.Past, 2)
	assert.EqualValues(t, 3, grouped.Past[0].ID)
	assert.EqualValues(t, 1, grouped.Past[1].ID)
}
