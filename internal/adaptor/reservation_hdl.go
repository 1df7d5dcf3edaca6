package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"service-booking/internal/data/entity"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/internal/usecase"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.Create(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation created successfully", reservation)
}

// Get handles GET /api/reservations/{id}
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	reservation, err := h.service.Get(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation retrieved successfully", reservation)
}

// ListMine handles GET /api/reservations?status=
func (h *ReservationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	reservations, err := h.service.ListForCustomer(r.Context(), user, optionalQuery(r, "status"))
	if err != nil {
		handleServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

// ListReceived handles GET /api/provider/reservations?status=
func (h *ReservationHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	reservations, err := h.service.ListForProvider(r.Context(), user, optionalQuery(r, "status"))
	if err != nil {
		handleServiceError(w, h.log, err, "list received reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

// History handles GET /api/reservations/history?as=provider
func (h *ReservationHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	asProvider := r.URL.Query().Get("as") == "provider"
	history, err := h.service.History(r.Context(), user, asProvider)
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation history")
		return
	}

	utils.ResponseSuccess(w, "Reservation history retrieved successfully", history)
}

// Update handles PUT /api/reservations/{id}
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req request.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.Update(r.Context(), user, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation updated successfully", reservation)
}

// Cancel handles PUT /api/reservations/{id}/cancel
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "cancel reservation", h.service.Cancel)
}

// Confirm handles PUT /api/provider/reservations/{id}/confirm
func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "confirm reservation", h.service.Confirm)
}

// Reject handles PUT /api/provider/reservations/{id}/reject
func (h *ReservationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "reject reservation", h.service.Reject)
}

// Complete handles PUT /api/provider/reservations/{id}/complete
func (h *ReservationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "complete reservation", h.service.Complete)
}

func (h *ReservationHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	fn func(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error),
) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	reservation, err := fn(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "Reservation updated successfully", reservation)
}
