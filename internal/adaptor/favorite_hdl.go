package adaptor

import (
	"encoding/json"
	"net/http"

	"service-booking/internal/dto/request"
	"service-booking/internal/usecase"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log,
	}
}

// Add handles POST /api/favorites
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req request.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	favorite, err := h.service.Add(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add favorite")
		return
	}

	utils.ResponseCreated(w, "Favorite added successfully", favorite)
}

// Remove handles DELETE /api/favorites/{serviceID}
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), user, chi.URLParam(r, "serviceID")); err != nil {
		handleServiceError(w, h.log, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "Favorite removed successfully", nil)
}

// List handles GET /api/favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	favorites, err := h.service.List(r.Context(), user)
	if err != nil {
		handleServiceError(w, h.log, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "Favorites retrieved successfully", favorites)
}

// Check handles GET /api/favorites/{serviceID}/check
func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	result, err := h.service.IsFavorite(r.Context(), user, chi.URLParam(r, "serviceID"))
	if err != nil {
		handleServiceError(w, h.log, err, "check favorite")
		return
	}

	utils.ResponseSuccess(w, "Favorite status retrieved successfully", result)
}
