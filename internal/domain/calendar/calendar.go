package calendar

import "fmt"

// Grade fixa da barbearia: dez horas por dia, 11:00 até 20:00,
// segunda a sábado, três cadeiras de barbeiro.
const (
	OpeningHour = 11
	ClosingHour = 20

	WeekDays           = 6
	DefaultRollingDays = 8

	MaxBarbersPerDay = 3
)

const (
	SlotFree     = "free"
	SlotOccupied = "occupied"
)

func SlotTimes() []string {
	times := make([]string, 0, ClosingHour-OpeningHour+1)
	for hour := OpeningHour; hour <= ClosingHour; hour++ {
		times = append(times, fmt.Sprintf("%02d:00", hour))
	}
	return times
}

func IsSlotTime(t string) bool {
	for _, st := range SlotTimes() {
		if st == t {
			return true
		}
	}
	return false
}
