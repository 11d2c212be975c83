package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chamcong-app/chamcong-backend-go/internal/config"
	appHTTP "github.com/chamcong-app/chamcong-backend-go/internal/handler/http"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/cron"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/database"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/jwt"
	"github.com/chamcong-app/chamcong-backend-go/internal/repository/postgresql"
	attendanceService "github.com/chamcong-app/chamcong-backend-go/internal/service/attendance"
	authService "github.com/chamcong-app/chamcong-backend-go/internal/service/auth"
	reportService "github.com/chamcong-app/chamcong-backend-go/internal/service/report"
	settingsService "github.com/chamcong-app/chamcong-backend-go/internal/service/settings"
	shiftService "github.com/chamcong-app/chamcong-backend-go/internal/service/shift"
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

	shiftRepo := postgresql.NewShiftRepository(db)
	logRepo := postgresql.NewAttendanceLogRepository(db)
	statusRepo := postgresql.NewDayStatusRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(JWTService, cfg.Auth.PINHash)
	shiftSvc := shiftService.NewShiftService(shiftRepo, settingsRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, logRepo, statusRepo, shiftRepo, settingsRepo, holidayRepo)
	reportSvc := reportService.NewReportService(statusRepo, shiftRepo, settingsRepo, holidayRepo)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		JWTService:        JWTService,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc),
		ShiftHandler:      appHTTP.NewShiftHandler(shiftSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		StatusHandler:     appHTTP.NewStatusHandler(attendanceSvc),
		SettingsHandler:   appHTTP.NewSettingsHandler(settingsSvc),
		HolidayHandler:    appHTTP.NewHolidayHandler(holidayRepo),
		ReportHandler:     appHTTP.NewReportHandler(reportSvc),
		FrontendURL:       cfg.App.FrontendURL,
		Env:               cfg.App.Env,
	})

	scheduler := cron.NewScheduler()
	scheduler.AddJob("finalize_missed_days", time.Hour,
		cron.FinalizeMissedDays(attendanceSvc, logRepo, statusRepo, shiftRepo, settingsRepo))
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
