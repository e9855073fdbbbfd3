package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
	"github.com/amdeilami/alicetant/internal/models"
)

func seedActiveAppointment(repo *fakeRepo, providerID, customerID uint) *models.Appointment {
	biz := repo.addBusiness(1, providerID)
	ap := &models.Appointment{
		ID:         1,
		BusinessID: biz.ID,
		Business:   *biz,
		Date:       "2030-01-10",
		Time:       "09:30",
		Status:     string(domain.StatusActive),
		Customers: []models.AppointmentCustomer{
			{AppointmentID: 1, CustomerID: customerID},
		},
	}
	repo.appointments[ap.ID] = ap
	return ap
}

func TestCancelAppointmentByOwningProvider(t *testing.T) {
	repo := newFakeRepo()
	seedActiveAppointment(repo, 10, 20)

	uc := NewCancelAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, Actor{UserID: 10, Role: models.RoleProvider})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.WithinDuration(t, time.Now().UTC(), *ap.CancelledAt, time.Minute)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, string(domain.StatusCancelled), repo.updates[0].Status)
}

func TestCancelAppointmentByLinkedCustomer(t *testing.T) {
	repo := newFakeRepo()
	seedActiveAppointment(repo, 10, 20)

	uc := NewCancelAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, Actor{UserID: 20, Role: models.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
}

func TestCancelAppointmentForbidden(t *testing.T) {
	cases := []struct {
		name  string
		actor Actor
	}{
		{"outro provider", Actor{UserID: 99, Role: models.RoleProvider}},
		{"cliente sem vínculo", Actor{UserID: 99, Role: models.RoleCustomer}},
		{"role desconhecida", Actor{UserID: 10, Role: "ADMIN"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			seedActiveAppointment(repo, 10, 20)

			uc := NewCancelAppointment(repo, nil)

			_, err := uc.Execute(context.Background(), 1, tc.actor)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorizedAccess))
			assert.Empty(t, repo.updates)
		})
	}
}

func TestCancelAppointmentNotFound(t *testing.T) {
	uc := NewCancelAppointment(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), 42, Actor{UserID: 10, Role: models.RoleProvider})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestCancelAppointmentAlreadyCancelled(t *testing.T) {
	repo := newFakeRepo()
	ap := seedActiveAppointment(repo, 10, 20)
	now := time.Now().UTC()
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	uc := NewCancelAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), 1, Actor{UserID: 10, Role: models.RoleProvider})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidAppointmentData))
	assert.Empty(t, repo.updates)
}
