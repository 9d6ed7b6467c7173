package calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mathysbarber/agenda-api/internal/domain/calendar"
	"github.com/mathysbarber/agenda-api/internal/httperr"
)

func seedWeek(t *testing.T, repo *fakeRepo, days ...string) {
	t.Helper()
	for _, id := range days {
		require.NoError(t, repo.CreateDayWithSlots(context.Background(), id, domain.SlotTimes()))
	}
}

func TestAvailableDaysGroupsFreeSlots(t *testing.T) {
	repo := newFakeRepo()
	seedWeek(t, repo, "2025-06-02", "2025-06-03")
	repo.occupy("2025-06-02", "14:00")
	repo.occupy("2025-06-02", "11:00")

	out, err := NewAvailableDays(repo).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Len(t, out["2025-06-02"], 8)
	assert.NotContains(t, out["2025-06-02"], "14:00")
	assert.NotContains(t, out["2025-06-02"], "11:00")
	assert.Len(t, out["2025-06-03"], 10)
}

func TestAvailableDaysEmptyCalendar(t *testing.T) {
	repo := newFakeRepo()

	out, err := NewAvailableDays(repo).Execute(context.Background())
	require.NoError(t, err)

	// mapa vazio, nunca erro: "nada livre" é uma resposta válida
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestBarberAvailabilityExcludesClaimedTimes(t *testing.T) {
	repo := newFakeRepo()
	seedWeek(t, repo, "2025-06-02", "2025-06-03")
	repo.addBarber(7)
	repo.claim(7, "2025-06-02", "14:00", "15:00")

	// o status occupied de outra cadeira não afeta este barbeiro
	repo.occupy("2025-06-03", "11:00")

	out, err := NewBarberAvailability(repo).Execute(context.Background(), 7)
	require.NoError(t, err)

	assert.Len(t, out["2025-06-02"], 8)
	assert.NotContains(t, out["2025-06-02"], "14:00")
	assert.NotContains(t, out["2025-06-02"], "15:00")
	assert.Len(t, out["2025-06-03"], 10, "claim é por barbeiro, occupied é da loja")
}

func TestBarberAvailabilitySkipsCancelledDays(t *testing.T) {
	repo := newFakeRepo()
	seedWeek(t, repo, "2025-06-02", "2025-06-03")
	repo.addBarber(7)
	require.NoError(t, repo.CancelDayForBarber(context.Background(), "2025-06-02", 7))

	out, err := NewBarberAvailability(repo).Execute(context.Background(), 7)
	require.NoError(t, err)

	assert.NotContains(t, out, "2025-06-02")
	assert.Contains(t, out, "2025-06-03")
}

func TestBarberAvailabilityUnknownBarber(t *testing.T) {
	repo := newFakeRepo()
	seedWeek(t, repo, "2025-06-02")

	_, err := NewBarberAvailability(repo).Execute(context.Background(), 99)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestCancelDay(t *testing.T) {
	repo := newFakeRepo()
	seedWeek(t, repo, "2025-06-02")
	repo.addBarber(7)

	uc := NewCancelDay(repo, nil)

	require.NoError(t, uc.Execute(context.Background(), 7, "2025-06-02"))

	err := uc.Execute(context.Background(), 7, "2025-06-02")
	assert.True(t, httperr.IsBusiness(err, "day_already_cancelled"))
}

func TestCancelDayValidations(t *testing.T) {
	repo := newFakeRepo()
	seedWeek(t, repo, "2025-06-02")
	repo.addBarber(7)

	uc := NewCancelDay(repo, nil)

	err := uc.Execute(context.Background(), 7, "02/06/2025")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	err = uc.Execute(context.Background(), 99, "2025-06-02")
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	err = uc.Execute(context.Background(), 7, "2025-06-09")
	assert.True(t, httperr.IsBusiness(err, "day_not_found"))
}

func TestCancelDayLimit(t *testing.T) {
	repo := newFakeRepo()
	seedWeek(t, repo, "2025-06-02")
	for _, id := range []uint{1, 2, 3, 4} {
		repo.addBarber(id)
	}

	uc := NewCancelDay(repo, nil)

	for _, id := range []uint{1, 2, 3} {
		require.NoError(t, uc.Execute(context.Background(), id, "2025-06-02"))
	}

	err := uc.Execute(context.Background(), 4, "2025-06-02")
	assert.True(t, httperr.IsBusiness(err, "day_cancel_limit"))
}
