package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dhababook/restro-backend/api/routes"
	"github.com/dhababook/restro-backend/internal/campaign"
	"github.com/dhababook/restro-backend/internal/config"
	"github.com/dhababook/restro-backend/internal/handlers"
	"github.com/dhababook/restro-backend/internal/repositories"
	mongorepo "github.com/dhababook/restro-backend/internal/repositories/mongodb"
	"github.com/dhababook/restro-backend/internal/services"
	"github.com/dhababook/restro-backend/pkg/mongodb"
	"github.com/dhababook/restro-backend/pkg/qrcode"
)

func main() {
	// A missing .env is fine, the environment takes over
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var customerRepo repositories.CustomerRepository = mongorepo.NewCustomerRepository(db)
	var campaignRepo repositories.CampaignRepository = mongorepo.NewCampaignRepository(db)
	var orderRepo repositories.OrderRepository = mongorepo.NewOrderRepository(db)
	var adminUserRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Campaign engine with production clock and randomness
	engine := campaign.NewEngine(
		time.Now,
		campaign.NewMathRandSource(rand.Int63()),
		cfg.Campaign.UnitPrice,
	)

	// Services
	authService := services.NewAuthService(adminUserRepo, cfg)
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo)
	campaignService := services.NewCampaignService(engine, campaignRepo, customerRepo)

	// External collaborators
	qrClient := qrcode.NewClient(cfg.QR.BaseURL, cfg.QR.APIKey, cfg.QR.MockAPI)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		CustomerHandler: handlers.NewCustomerHandler(customerService),
		OrderHandler:    handlers.NewOrderHandler(orderService),
		CampaignHandler: handlers.NewCampaignHandler(campaignService),
		TableHandler:    handlers.NewTableHandler(qrClient, cfg.QR.BaseURL),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
