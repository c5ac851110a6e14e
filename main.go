package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"bankledger/config"
	"bankledger/geo"
	"bankledger/handler"
	"bankledger/logger"
	"bankledger/storage"

	"github.com/gorilla/mux"
)

func main() {
	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.Log.Level, cfg.Log.Format)

	// All state is in-process; accounts and users live for the lifetime
	// of the server.
	store := storage.NewMemoryStore()

	geolocator := geo.NewGeolocator(geo.NewFreeIPAPIClient(cfg.Geo.BaseURL, cfg.Geo.Timeout))

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(store, logg)
	transactionHandler := handler.NewTransactionHandler(store, logg)
	userHandler := handler.NewUserHandler(store, logg)
	geoHandler := handler.NewGeoHandler(geolocator, logg)

	// Setup router
	r := mux.NewRouter()
	r.HandleFunc("/accounts", accountHandler.CreateAccountHandler).Methods("POST")
	r.HandleFunc("/accounts/{account_id}", accountHandler.GetAccountHandler).Methods("GET")
	r.HandleFunc("/accounts/{account_id}/deposit", accountHandler.DepositHandler).Methods("POST")
	r.HandleFunc("/accounts/{account_id}/withdraw", accountHandler.WithdrawHandler).Methods("POST")
	r.HandleFunc("/accounts/{account_id}/deactivate", accountHandler.DeactivateHandler).Methods("POST")
	r.HandleFunc("/transactions", transactionHandler.CreateTransactionHandler).Methods("POST")
	r.HandleFunc("/users", userHandler.CreateUserHandler).Methods("POST")
	r.HandleFunc("/users/{user_id}", userHandler.GetUserHandler).Methods("GET")
	r.HandleFunc("/users/{user_id}/accounts", userHandler.AttachAccountHandler).Methods("POST")
	r.HandleFunc("/geolocation/{ip}", geoHandler.LookupHandler).Methods("GET")

	// Create and start server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logg.WithField("addr", cfg.Server.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	logg.Info("shutting down server")

	// Create a context for shutdown with a timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.WithError(err).Fatal("server shutdown failed")
	}

	logg.Info("server gracefully stopped")
}
