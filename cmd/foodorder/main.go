package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/kietsocola/foodorder/internal/pkg/config"
	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/models"
	nrpkg "github.com/kietsocola/foodorder/internal/pkg/newrelic"
	"github.com/kietsocola/foodorder/internal/pkg/realtime"
	catalogGW "github.com/kietsocola/foodorder/services/catalog/gateway/http"
	catalogUC "github.com/kietsocola/foodorder/services/catalog/usecase"
	orderGW "github.com/kietsocola/foodorder/services/order/gateway/http"
	orderUC "github.com/kietsocola/foodorder/services/order/usecase"
	trackingGW "github.com/kietsocola/foodorder/services/tracking/gateway"
	trackingUC "github.com/kietsocola/foodorder/services/tracking/usecase"
)

func main() {
	appName := "foodorder-client"
	configPath := ".env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	apiTimeout := time.Duration(configs.API.TimeoutSeconds) * time.Second

	// Catalog and order use cases over the HTTP boundary
	venueClient := catalogGW.NewVenueClient(configs.API.BaseURL, apiTimeout)
	catalog := catalogUC.NewCatalogUC(venueClient)

	orderClient := orderGW.NewOrderClient(configs.API.BaseURL, apiTimeout)
	orders := orderUC.NewOrderUC(orderClient, configs.Order)

	// Tracking session manager: one fresh channel per session
	sessionCfg := trackingUC.SessionConfig{
		ConnectTimeout:   time.Duration(configs.Tracking.ConnectTimeoutMs) * time.Millisecond,
		ReconnectDelay:   time.Duration(configs.Realtime.ReconnectSeconds) * time.Second,
		SimulateInterval: time.Duration(configs.Tracking.SimulateIntervalMs) * time.Millisecond,
	}
	manager := trackingUC.NewManager(func() (realtime.Channel, error) {
		return realtime.NewChannel(configs.Realtime)
	}, sessionCfg)
	defer manager.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, catalog, orders, manager); err != nil {
		logger.Error("Run failed", logger.Err(err))
		os.Exit(1)
	}

	logger.Info("Shutting down", logger.String("app", appName))
}

// run walks the full customer flow once: list venues, build a cart from
// the first venue, submit the order, then track the delivery until the
// process is interrupted.
func run(ctx context.Context, configs *models.Config, catalog *catalogUC.CatalogUC, orders *orderUC.OrderUC, manager *trackingUC.Manager) error {
	listing, err := catalog.GetVenues(ctx)
	if err != nil {
		return fmt.Errorf("failed to list venues: %w", err)
	}
	logger.Info("Loaded venue catalog",
		logger.Int("venues", len(listing.Venues)),
		logger.Bool("fallback", listing.Fallback))

	if len(listing.Venues) == 0 {
		return fmt.Errorf("venue catalog is empty")
	}
	venue := listing.Venues[0]
	if len(venue.Products) == 0 {
		return fmt.Errorf("venue %s has no products", venue.ID)
	}

	// Two of the first product, one of the second when available
	cart := models.Cart{}
	cart.Add(venue.Products[0])
	cart.Add(venue.Products[0])
	if len(venue.Products) > 1 {
		cart.Add(venue.Products[1])
	}

	customerID := uuid.New().String()
	req, err := orders.BuildOrderRequest(cart, venue.ID, customerID, configs.Order.DefaultAddress)
	if err != nil {
		return fmt.Errorf("failed to assemble order: %w", err)
	}

	resp, err := orders.SubmitOrder(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to submit order: %w", err)
	}
	logger.Info("Order placed",
		logger.String("order_id", resp.OrderID),
		logger.String("status", resp.Status),
		logger.Int64("total", req.TotalPrice()),
		logger.Bool("fallback", resp.Fallback()))

	session, err := manager.Open(resp.OrderID)
	if err != nil {
		return fmt.Errorf("failed to open tracking session: %w", err)
	}

	session.SubscribeObserver(func(event models.DeliveryEvent) {
		view := trackingUC.BuildMapView(event.OrderID, nil, &models.Coordinate{
			Latitude:  event.Latitude,
			Longitude: event.Longitude,
		})
		logger.Info("Delivery update",
			logger.String("order_id", event.OrderID),
			logger.String("status", event.Status),
			logger.String("position", trackingUC.FormatCoordinate(view.Center)),
			logger.Time("at", models.FromUnixMilli(event.Timestamp)))
	})

	// Publish the customer position back over the live channel
	publisher := trackingUC.NewPublisher(trackingGW.NewSimulatedSource(configs.Position), configs.Position)
	handle, err := publisher.Start(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to start location publishing: %w", err)
	}
	defer publisher.Stop(handle)

	<-ctx.Done()
	return nil
}
