package clock

import "time"

// O calendário inteiro é operado em UTC, com dias identificados
// pelo formato YYYY-MM-DD (ordenável lexicograficamente).

const DateLayout = "2006-01-02"

func Now() time.Time {
	return time.Now().UTC()
}

// Today devolve a meia-noite UTC do dia atual.
func Today() time.Time {
	return Midnight(Now())
}

func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextMonday devolve t quando t já é segunda-feira; caso contrário,
// a próxima segunda-feira.
func NextMonday(t time.Time) time.Time {
	offset := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	return Midnight(t.AddDate(0, 0, offset))
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
