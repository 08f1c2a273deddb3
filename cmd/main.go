package main

import (
	"flag"
	"strconv"

	httpAPI "reconciliation/internal/api/http"
	"reconciliation/internal/controllers"
	mongoRepo "reconciliation/internal/repository/mongo"
	"reconciliation/internal/repository/postgres"
	"reconciliation/internal/usecasees"
)

func main() {
	var app App
	var confFileName string

	app.Name = "reconciliation"

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	app.initLogger()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	if err := app.initLoki(); err != nil {
		app.Logger.Error(err)
	}

	app.InitMetrics()

	if err := postgres.InitSchema(app.DB); err != nil {
		panic(err)
	}

	orderRepo := postgres.NewOrderRepository(app.DB)
	executionRepo := postgres.NewExecutionRepository(app.DB)
	allocationRepo := postgres.NewAllocationRepository(app.DB)

	mappingRepo := mongoRepo.NewMappingRepository(app.Mongo)
	if err := mappingRepo.SetDefault(); err != nil {
		panic(err)
	}

	chatId, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
	if err != nil {
		panic(err)
	}

	tgmController := controllers.NewTgmController(
		app.TGM,
		chatId,
	)
	mailboxController := controllers.NewMailboxController(
		app.Config.EmlDir,
		app.Logger,
	)

	reconcileUseCase := usecasees.NewReconcileUseCase(
		mailboxController,
		tgmController,
		orderRepo,
		executionRepo,
		allocationRepo,
		mappingRepo,
		app.Config.ReportsDir,
		app.Metrics.Reconciliation,
		app.Logger,
	)

	ratingUseCase := usecasees.NewRatingUseCase(
		allocationRepo,
		app.Logger,
	)

	app.initFiber()

	httpAPI.NewMiddleware(app.Fiber).UseMetrics()
	httpAPI.RegisterHTTPEndpoints(app.Fiber, reconcileUseCase, ratingUseCase, app.Logger)

	if err := app.Fiber.Listen(app.Config.ListenAddr); err != nil {
		app.Logger.Fatal(err)
	}
}
