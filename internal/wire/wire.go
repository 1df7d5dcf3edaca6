package wire

import (
	"net/http"

	"service-booking/internal/adaptor"
	"service-booking/internal/data/repository"
	"service-booking/internal/usecase"
	"service-booking/pkg/middleware"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service, handler, and router graph.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	wireAuth(r, handler.Auth, repo, logger)
	wireCatalog(r, handler.Catalog, handler.Review, repo, logger)
	wireReservation(r, handler.Reservation, repo, logger)
	wireReview(r, handler.Review, repo, logger)
	wireFavorite(r, handler.Favorite, repo, logger)
	wireNotification(r, handler.Notification, repo, logger)
	wireAdmin(r, handler.Admin, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
