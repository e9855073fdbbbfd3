package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/amdeilami/alicetant/internal/domain/appointment"
	"github.com/amdeilami/alicetant/internal/httperr"
)

func TestBookAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addBusiness(1, 10)
	repo.addCustomer(20)
	repo.addCustomer(21)

	uc := NewBookAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		BusinessID:  1,
		CustomerIDs: []uint{20, 21},
		Date:        "2030-01-10",
		Time:        "09:30",
		Notes:       "corte e barba",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusActive), ap.Status)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, "2030-01-10", ap.Date)
	assert.Equal(t, "09:30", ap.Time)
	assert.Len(t, ap.Customers, 2)
}

func TestBookAppointmentRequiresCustomers(t *testing.T) {
	uc := NewBookAppointment(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		BusinessID: 1,
		Date:       "2030-01-10",
		Time:       "09:30",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidAppointmentData))
}

func TestBookAppointmentRejectsPastSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addBusiness(1, 10)
	repo.addCustomer(20)

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		BusinessID:  1,
		CustomerIDs: []uint{20},
		Date:        "2000-01-10",
		Time:        "09:30",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidAppointmentData))
	assert.Empty(t, repo.creates, "nada deve chegar ao banco")
}

func TestBookAppointmentBusinessNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.addCustomer(20)

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		BusinessID:  99,
		CustomerIDs: []uint{20},
		Date:        "2030-01-10",
		Time:        "09:30",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBusinessNotFound))
}

func TestBookAppointmentUnknownCustomer(t *testing.T) {
	repo := newFakeRepo()
	repo.addBusiness(1, 10)
	repo.addCustomer(20)

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		BusinessID:  1,
		CustomerIDs: []uint{20, 77},
		Date:        "2030-01-10",
		Time:        "09:30",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidAppointmentData))
	assert.Empty(t, repo.creates)
}

func TestBookAppointmentDeduplicatesCustomers(t *testing.T) {
	repo := newFakeRepo()
	repo.addBusiness(1, 10)
	repo.addCustomer(20)

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		BusinessID:  1,
		CustomerIDs: []uint{20, 20, 20},
		Date:        "2030-01-10",
		Time:        "09:30",
	})
	require.NoError(t, err)

	require.Len(t, repo.creates, 1)
	assert.Equal(t, []uint{20}, repo.creates[0].customerIDs)
}

func TestBookAppointmentPropagatesConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.addBusiness(1, 10)
	repo.addCustomer(20)
	repo.createErr = httperr.ErrBusiness(httperr.CodeTimeSlotConflict)

	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		BusinessID:  1,
		CustomerIDs: []uint{20},
		Date:        "2030-01-10",
		Time:        "09:30",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTimeSlotConflict))
}
