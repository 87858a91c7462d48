package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/3digitdev/baas/internal/db"
	"github.com/3digitdev/baas/internal/repository"
	"github.com/3digitdev/baas/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatal(err)
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	boolRepo := repository.NewBoolRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo)
	boolSvc := services.NewBoolService(boolRepo)
	expirationSvc := services.NewExpirationService(userRepo)

	// ======================
	// SWEEPER
	// ======================
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go expirationSvc.Run(sweepCtx, 24*time.Hour)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerUserRoutes(e, authSvc)
	registerBoolRoutes(e, boolSvc, authSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
