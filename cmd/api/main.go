package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SukaMajuu/hris2-sub001/internal/config"
	appHTTP "github.com/SukaMajuu/hris2-sub001/internal/handler/http"
	"github.com/SukaMajuu/hris2-sub001/internal/pkg/database"
	"github.com/SukaMajuu/hris2-sub001/internal/pkg/jwt"
	"github.com/SukaMajuu/hris2-sub001/internal/repository/postgresql"
	attendanceService "github.com/SukaMajuu/hris2-sub001/internal/service/attendance"
	employeeService "github.com/SukaMajuu/hris2-sub001/internal/service/employee"
	leaveService "github.com/SukaMajuu/hris2-sub001/internal/service/leave"
	scheduleService "github.com/SukaMajuu/hris2-sub001/internal/service/schedule"
	timelineService "github.com/SukaMajuu/hris2-sub001/internal/service/timeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	timelineSvc := timelineService.NewTimelineService(attendanceRepo, leaveRequestRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo, locationRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewTimelineHandler(timelineSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewScheduleHandler(scheduleSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
