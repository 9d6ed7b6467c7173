package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mathysbarber/agenda-api/internal/audit"
	"github.com/mathysbarber/agenda-api/internal/cache"
	"github.com/mathysbarber/agenda-api/internal/config"
	dbpkg "github.com/mathysbarber/agenda-api/internal/db"
	infraRepo "github.com/mathysbarber/agenda-api/internal/infra/repository"
	"github.com/mathysbarber/agenda-api/internal/payments"
	"github.com/mathysbarber/agenda-api/internal/routes"
	"github.com/mathysbarber/agenda-api/internal/scheduler"
	ucCalendar "github.com/mathysbarber/agenda-api/internal/usecase/calendar"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	redisClient := cache.NewRedis(cfg)

	gateway, err := payments.NewMercadoPago(cfg.MPAccessToken, cfg.PaymentBackURL)
	if err != nil {
		log.Fatalf("failed to init payment gateway: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, gateway)

	// extensão semanal do calendário, toda segunda 01:00 UTC
	calendarRepo := infraRepo.NewCalendarGormRepository(db)
	auditDispatcher := audit.NewDispatcher(audit.New(db))
	extendWeekUC := ucCalendar.NewExtendWeek(calendarRepo, auditDispatcher)

	weekly := scheduler.NewWeekly(extendWeekUC, cache.NewRedisLock(redisClient))
	go weekly.Start(context.Background())

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
