package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/lmwlabs/api-agreements/internal/admin"
	"github.com/lmwlabs/api-agreements/internal/agreement"
	"github.com/lmwlabs/api-agreements/internal/auth"
	"github.com/lmwlabs/api-agreements/internal/checkout"
	"github.com/lmwlabs/api-agreements/internal/client"
	"github.com/lmwlabs/api-agreements/internal/config"
	"github.com/lmwlabs/api-agreements/internal/contact"
	"github.com/lmwlabs/api-agreements/internal/database"
	"github.com/lmwlabs/api-agreements/internal/document"
	"github.com/lmwlabs/api-agreements/internal/logger"
	"github.com/lmwlabs/api-agreements/internal/notification"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&agreement.Record{},
		&client.Client{},
		&contact.Lead{},
		&auth.User{},
	); err != nil {
		log.Fatal("auto-migration failed", zap.Error(err))
	}

	// Auth
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	policy := auth.NewAdminPolicy(cfg.AdminEmails)
	authHandler := auth.NewHandler(db, tokens, policy, log)

	// Repositories
	agreementStore := agreement.NewRepository(db)
	clientStore := client.NewRepository(db)
	contactStore := contact.NewRepository(db)

	// Handlers
	agreementHandler := agreement.NewHandler(
		agreement.NewSessionStore(),
		agreementStore,
		document.NewAssembler(),
		log,
	)
	checkoutHandler := checkout.NewHandler(
		checkout.NewStripeCreator(cfg.StripeSecretKey),
		cfg.BaseURL,
		log,
	)
	contactHandler := contact.NewHandler(
		contactStore,
		contact.NewFormspreeForwarder(cfg.FormspreeID),
		log,
	)
	notificationHandler := notification.NewHandler(
		notification.NewResendSender(cfg.ResendAPIKey),
		log,
	)
	clientHandler := client.NewHandler(clientStore)
	adminHandler := admin.NewHandler(agreementStore, clientStore, contactStore, cfg.BaseURL, log)

	// Router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Agreement signing flow
	api.HandleFunc("/agreements/drafts", agreementHandler.CreateDraft).Methods("POST")
	api.HandleFunc("/agreements/drafts/{id}", agreementHandler.GetDraft).Methods("GET")
	api.HandleFunc("/agreements/drafts/{id}/fields", agreementHandler.ApplyField).Methods("PATCH")
	api.HandleFunc("/agreements/drafts/{id}/signature/strokes", agreementHandler.AddStroke).Methods("POST")
	api.HandleFunc("/agreements/drafts/{id}/signature", agreementHandler.ClearSignature).Methods("DELETE")
	api.HandleFunc("/agreements/drafts/{id}/submit", agreementHandler.Submit).Methods("POST")

	// Checkout, contact and login
	api.HandleFunc("/checkout", checkoutHandler.Create).Methods("POST")
	api.HandleFunc("/contact", contactHandler.Submit).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Client portal
	portal := api.PathPrefix("/portal").Subrouter()
	portal.Use(auth.Middleware(tokens))
	portal.HandleFunc("/agreements", agreementHandler.ListMine).Methods("GET")

	// Admin dashboard and tooling
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(auth.Middleware(tokens), auth.RequireAdmin)
	adminRouter.HandleFunc("/agreements", adminHandler.ListAgreements).Methods("GET")
	adminRouter.HandleFunc("/contacts", adminHandler.ListContacts).Methods("GET")
	adminRouter.HandleFunc("/clients", adminHandler.ListClients).Methods("GET")
	adminRouter.HandleFunc("/clients", clientHandler.Create).Methods("POST")
	adminRouter.HandleFunc("/clients/{id}", clientHandler.Get).Methods("GET")
	adminRouter.HandleFunc("/clients/{id}", clientHandler.Update).Methods("PUT")
	adminRouter.HandleFunc("/clients/{id}", clientHandler.Delete).Methods("DELETE")
	adminRouter.HandleFunc("/clients/{id}/agreement-link", adminHandler.GenerateLink).Methods("GET")

	sendAgreement := auth.Middleware(tokens)(auth.RequireAdmin(http.HandlerFunc(notificationHandler.SendAgreement)))
	api.Handle("/send-agreement", sendAgreement).Methods("POST", "OPTIONS")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	log.Info("server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
