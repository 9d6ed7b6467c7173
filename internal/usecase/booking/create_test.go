package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathysbarber/agenda-api/internal/httperr"
)

func seedRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addUser(1, "João")
	repo.addUser(2, "Pedro")
	repo.addBarberUser(10, "Mathys")
	repo.addBarberUser(11, "Lucas")
	repo.addSlot("2025-06-02", "14:00")
	repo.addSlot("2025-06-02", "15:00")
	return repo
}

func bookingInput(userID, barberID uint) CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:   userID,
		BarberID: barberID,
		Date:     "2025-06-02",
		Time:     "14:00",
		CutType:  "Corte",
		Extras:   []string{"Sobrancelha"},
	}
}

func TestCreateAppointment(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), bookingInput(1, 10))
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "Corte", ap.CutType)

	slot, err := repo.GetSlot(context.Background(), "2025-06-02", "14:00")
	require.NoError(t, err)
	assert.Equal(t, "occupied", slot.Status)
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), bookingInput(1, 10))
	require.NoError(t, err)

	// mesma hora, mesmo barbeiro, outro cliente
	_, err = uc.Execute(context.Background(), bookingInput(2, 10))
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestCreateAppointmentOtherBarberSameTime(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), bookingInput(1, 10))
	require.NoError(t, err)

	// outra cadeira na mesma hora é uma reserva independente
	ap, err := uc.Execute(context.Background(), bookingInput(2, 11))
	require.NoError(t, err)
	assert.Equal(t, uint(11), ap.BarberID)
}

func TestCreateAppointmentClaimLimit(t *testing.T) {
	repo := seedRepo()
	repo.addBarberUser(12, "Rafa")
	repo.addBarberUser(13, "Nico")
	uc := NewCreateAppointment(repo, nil)

	for _, barberID := range []uint{10, 11, 12} {
		_, err := uc.Execute(context.Background(), bookingInput(1, barberID))
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), bookingInput(2, 13))
	assert.True(t, httperr.IsBusiness(err, "slot_claim_limit"))
}

func TestCreateAppointmentValidations(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	in := bookingInput(1, 10)
	in.Date = "02/06/2025"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	in = bookingInput(1, 10)
	in.Time = "14:30"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	_, err = uc.Execute(context.Background(), bookingInput(99, 10))
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))

	_, err = uc.Execute(context.Background(), bookingInput(1, 99))
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	// cliente não passa por barbeiro
	_, err = uc.Execute(context.Background(), bookingInput(1, 2))
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	in = bookingInput(1, 10)
	in.Date = "2025-06-09" // dia não gerado
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"))
}

func TestCreateAppointmentConcurrent(t *testing.T) {
	repo := seedRepo()
	uc := NewCreateAppointment(repo, nil)

	const attempts = 10

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), bookingInput(1, 10))
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.True(t, httperr.IsBusiness(err, "slot_taken"))
		}
	}
	assert.Equal(t, 1, ok, "exatamente uma reserva deve vencer a corrida")
}
