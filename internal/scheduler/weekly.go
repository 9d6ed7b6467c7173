package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/mathysbarber/agenda-api/internal/cache"
	"github.com/mathysbarber/agenda-api/internal/clock"
)

// ======================================================
// WEEKLY CALENDAR EXTENSION
// ======================================================

type weekExtender interface {
	Execute(ctx context.Context) ([]string, error)
}

// Weekly dispara a extensão semanal do calendário toda segunda-feira
// às 01:00 UTC. Semântica at-least-once: disparo duplicado é seguro
// porque a geração é idempotente; o lock em redis só evita que todas
// as réplicas façam o mesmo trabalho ao mesmo tempo.
type Weekly struct {
	extend weekExtender
	lock   cache.Lock
	now    func() time.Time
}

func NewWeekly(extend weekExtender, lock cache.Lock) *Weekly {
	return &Weekly{
		extend: extend,
		lock:   lock,
		now:    clock.Now,
	}
}

func (s *Weekly) WithNow(now func() time.Time) *Weekly {
	s.now = now
	return s
}

func (s *Weekly) Start(ctx context.Context) {
	log.Println("weekly calendar scheduler started")

	for {
		next := NextRun(s.now())
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("weekly calendar scheduler stopped")
			return
		case <-timer.C:
			s.Run(ctx)
		}
	}
}

// NextRun devolve a próxima segunda-feira 01:00 UTC estritamente
// depois de t.
func NextRun(t time.Time) time.Time {
	t = t.UTC()

	next := clock.NextMonday(t).Add(time.Hour)
	if !next.After(t) {
		// já passou da 01:00 desta segunda → semana que vem
		next = clock.NextMonday(t.AddDate(0, 0, 1)).Add(time.Hour)
	}
	return next
}

func (s *Weekly) Run(ctx context.Context) {
	key := "calendar:weekly_extend:" + clock.FormatDate(s.now())

	ok, err := s.lock.Acquire(ctx, key, time.Hour)
	if err != nil {
		// sem redis seguimos mesmo assim: rodar duas vezes não corrompe nada
		log.Printf("scheduler lock error (running anyway): %v", err)
	} else if !ok {
		log.Println("weekly extension skipped: another replica holds the lock")
		return
	}

	created, err := s.extend.Execute(ctx)
	if err != nil {
		log.Printf("weekly extension failed: %v", err)
		return
	}

	log.Printf("weekly extension done, %d day(s) created: %v", len(created), created)
}
