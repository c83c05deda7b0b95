package main

import (
	"parkwise/internal/parking/events"
	"parkwise/internal/parking/handler"
	"parkwise/internal/parking/repository"
	"parkwise/internal/parking/service"
	"parkwise/internal/parking/validator"
	"parkwise/pkg/app"
	"parkwise/pkg/config"
	mongotx "parkwise/pkg/db/mongo"
	"parkwise/pkg/kafka"
	kafkamiddleware "parkwise/pkg/kafka/middleware"
)

const ServiceName = "parking"

type services struct {
	lots            service.LotService
	recommendations service.RecommendationService
	bookings        service.BookingService
	diagnostics     service.DiagnosticsService
}

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Parking service")
	serverApp := app.NewApplication(cfg)
	svc := initServices(cfg, serverApp)

	serverApp.SetApp(
		handler.NewHealthHandler(svc.diagnostics, cfg.Log),
		handler.NewParkingHandler(svc.lots, svc.recommendations, cfg.Log),
		handler.NewBookingHandler(svc.bookings, cfg.Log),
		handler.NewDiagnosticsHandler(svc.diagnostics),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, serverApp *app.Application) services {
	parkingValidator := validator.NewParkingValidator(cfg.Log)

	store := repository.NewMongoStore(cfg)
	lotRepo := repository.NewLotRepository(store)
	spotRepo := repository.NewSpotRepository(store)
	bookingRepo := repository.NewBookingRepository(store)

	txManager := mongotx.NewTransactionManager(cfg.Client.Mongo, cfg.MongoTransactions)
	publisher := initPublisher(cfg, serverApp)

	cfg.Log.Info("Parking services initialized",
		"database", cfg.MongoDatabaseName,
		"transactional", txManager.Transactional(),
	)

	return services{
		lots:            service.NewLotService(lotRepo, spotRepo, parkingValidator, cfg),
		recommendations: service.NewRecommendationService(lotRepo, spotRepo, parkingValidator, cfg),
		bookings: service.NewBookingService(
			lotRepo,
			spotRepo,
			bookingRepo,
			txManager,
			publisher,
			parkingValidator,
			service.SystemClock{},
			cfg,
		),
		diagnostics: service.NewDiagnosticsService(store, cfg),
	}
}

// initPublisher returns a Kafka-backed publisher when brokers are configured
// and a no-op one otherwise.
func initPublisher(cfg *config.Config, serverApp *app.Application) events.BookingPublisher {
	if !cfg.Kafka.Enabled() {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return events.NewNoopBookingPublisher()
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafkamiddleware.LoggingProducerMiddleware(cfg.Log))
	producer.Use(kafkamiddleware.MetricsProducerMiddleware())
	serverApp.OnShutdown("kafka-producer", producer.Close)

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.Kafka.BookingTopic)
	return events.NewKafkaBookingPublisher(producer, ServiceName, cfg.Kafka.ProducerPublishTimeout)
}
