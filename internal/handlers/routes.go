package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/payment-gateway/pos/internal/api"
	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/benx421/payment-gateway/pos/internal/db"
	"github.com/benx421/payment-gateway/pos/internal/gateway"
	"github.com/benx421/payment-gateway/pos/internal/middleware"
	"github.com/benx421/payment-gateway/pos/internal/repository"
	"github.com/benx421/payment-gateway/pos/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	logger *slog.Logger,
) (http.Handler, error) {
	transactionRepo := repository.NewTransactionRepository(database)
	configurationRepo := repository.NewConfigurationRepository(database)

	codes, err := service.NewCodeGenerator(&cfg.App, transactionRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to create code generator: %w", err)
	}

	gatewayClient := gateway.NewHTTPClient(&cfg.Gateway, logger)
	transactionService := service.NewTransactionService(
		transactionRepo,
		configurationRepo,
		gatewayClient,
		codes,
		&cfg.Gateway,
		logger,
	)
	configurationService := service.NewConfigurationService(configurationRepo, logger)

	handler := NewHandler(transactionService, configurationService, database, logger)

	strictHandler := api.NewStrictHandlerWithOptions(handler, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: writeRequestError,
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("failed to write response",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", middleware.RequestIDFromContext(r.Context()),
				"error", err,
			)
			writeInternalError(w)
		},
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: writeRequestError,
	})

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	validator, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		return nil, err
	}

	var finalHandler http.Handler = mux

	finalHandler = validator(finalHandler)
	finalHandler = middleware.RequestLogger(logger)(finalHandler)
	finalHandler = middleware.CORS(&cfg.App)(finalHandler)

	return finalHandler, nil
}
