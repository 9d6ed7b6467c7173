package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(date string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02", date)
		return t
	}
}

func TestExtendWeekFromEmptyCalendar(t *testing.T) {
	repo := newFakeRepo()
	// quinta-feira 2025-05-29 → próxima segunda é 2025-06-02
	uc := NewExtendWeek(repo, nil).WithNow(fixedNow("2025-05-29"))

	created, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2025-06-02", "2025-06-03", "2025-06-04",
		"2025-06-05", "2025-06-06", "2025-06-07",
	}, created)

	// cada dia nasce com a grade completa, 11:00 até 20:00
	day, err := repo.GetDay(context.Background(), "2025-06-02")
	require.NoError(t, err)
	require.Len(t, day.Slots, 10)
	assert.Equal(t, "11:00", day.Slots[0].Time)
	assert.Equal(t, "20:00", day.Slots[9].Time)
	for _, s := range day.Slots {
		assert.Equal(t, "free", s.Status)
	}
}

func TestExtendWeekIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewExtendWeek(repo, nil).WithNow(fixedNow("2025-05-29"))

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 6)

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second, "segundo lote não deve criar nada")
	assert.Len(t, repo.days, 6)
}

func TestExtendWeekAnchorsOnLastDay(t *testing.T) {
	repo := newFakeRepo()
	// calendário já tem a semana que termina no sábado 2025-06-07
	for _, id := range []string{"2025-06-02", "2025-06-07"} {
		require.NoError(t, repo.CreateDayWithSlots(context.Background(), id, []string{"11:00"}))
	}

	uc := NewExtendWeek(repo, nil).WithNow(fixedNow("2025-06-04"))

	created, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// âncora é o sábado 06-07, rolada para a segunda 06-09
	assert.Equal(t, []string{
		"2025-06-09", "2025-06-10", "2025-06-11",
		"2025-06-12", "2025-06-13", "2025-06-14",
	}, created)
}

func TestExtendRollingWindow(t *testing.T) {
	repo := newFakeRepo()
	uc := NewExtendRolling(repo, nil).WithNow(fixedNow("2025-06-05"))

	created, err := uc.Execute(context.Background(), 0) // default: 8 dias
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2025-06-05", "2025-06-06", "2025-06-07", "2025-06-08",
		"2025-06-09", "2025-06-10", "2025-06-11", "2025-06-12",
	}, created)
}

func TestExtendRollingSkipsExistingDays(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, repo.CreateDayWithSlots(context.Background(), "2025-06-06", []string{"11:00"}))

	uc := NewExtendRolling(repo, nil).WithNow(fixedNow("2025-06-05"))

	created, err := uc.Execute(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-06-05", "2025-06-07"}, created)
}
