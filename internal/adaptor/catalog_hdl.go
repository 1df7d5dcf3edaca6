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

type CatalogHandler struct {
	service      usecase.CatalogService
	availability usecase.AvailabilityService
	log          *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, availability usecase.AvailabilityService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:      service,
		availability: availability,
		log:          log,
	}
}

// Search handles GET /api/services/search?name=&category=&date=
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := optionalQuery(r, "name")
	category := optionalQuery(r, "category")
	date := optionalQuery(r, "date")

	services, err := h.service.Search(r.Context(), name, category, date)
	if err != nil {
		handleServiceError(w, h.log, err, "search services")
		return
	}

	utils.ResponseSuccess(w, "Services retrieved successfully", services)
}

// List handles GET /api/services
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "Services retrieved successfully", services)
}

// Get handles GET /api/services/{id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	service, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get service")
		return
	}

	utils.ResponseSuccess(w, "Service retrieved successfully", service)
}

// AvailableSlots handles GET /api/services/{id}/slots?date=YYYY-MM-DD
func (h *CatalogHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	slots, err := h.availability.AvailableSlots(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		handleServiceError(w, h.log, err, "get available slots")
		return
	}

	utils.ResponseSuccess(w, "Available slots retrieved successfully", slots)
}

// ListMine handles GET /api/provider/services
func (h *CatalogHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	services, err := h.service.ListMine(r.Context(), user)
	if err != nil {
		handleServiceError(w, h.log, err, "list own services")
		return
	}

	utils.ResponseSuccess(w, "Services retrieved successfully", services)
}

// Create handles POST /api/provider/services
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	service, err := h.service.Create(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create service")
		return
	}

	utils.ResponseCreated(w, "Service created successfully", service)
}

// Update handles PUT /api/provider/services/{id}
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req request.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	service, err := h.service.Update(r.Context(), user, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "Service updated successfully", service)
}

// Delete handles DELETE /api/provider/services/{id}
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "Service deleted successfully", nil)
}

// SetAvailability handles PUT /api/provider/services/{id}/availability
func (h *CatalogHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req request.SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	service, err := h.service.SetAvailability(r.Context(), user, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set availability")
		return
	}

	utils.ResponseSuccess(w, "Availability updated successfully", service)
}
