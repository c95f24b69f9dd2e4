package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/D4rK14/Control-de-asistencia/internal/config"
	appHTTP "github.com/D4rK14/Control-de-asistencia/internal/handler/http"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/clock"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/cron"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/database"
	"github.com/D4rK14/Control-de-asistencia/internal/pkg/jwt"
	"github.com/D4rK14/Control-de-asistencia/internal/repository/postgresql"
	attendanceService "github.com/D4rK14/Control-de-asistencia/internal/service/attendance"
	authService "github.com/D4rK14/Control-de-asistencia/internal/service/auth"
	holidayService "github.com/D4rK14/Control-de-asistencia/internal/service/holiday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to apply migrations: ", err)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone: ", err)
	}
	appClock := clock.NewFixedZone(loc)

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	// The holiday dataset is static: load it once, a restart picks up changes
	calendar, err := holidayService.LoadCalendar(context.Background(), holidayRepo)
	if err != nil {
		log.Fatal("Failed to load holiday calendar: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.RefreshExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, userRepo, calendar, appClock)
	authSvc := authService.NewAuthService(userRepo, JWTService, appClock, cfg.AccessExpiration())

	scheduler := cron.NewScheduler(cron.NewHolidayJobs(attendanceSvc, appClock).Jobs()...)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, appClock)
	holidayHandler := appHTTP.NewHolidayHandler(calendar, appClock)

	router := appHTTP.NewRouter(
		JWTService,
		appClock,
		cfg.App.Env,
		authHandler,
		attendanceHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
