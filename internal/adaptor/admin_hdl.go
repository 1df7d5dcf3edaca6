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

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// ListUsers handles GET /api/admin/users?role=
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	users, err := h.service.ListUsers(r.Context(), user, optionalQuery(r, "role"))
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}

// ChangeRole handles PUT /api/admin/users/{id}/role
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req request.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.service.ChangeRole(r.Context(), user, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "change role")
		return
	}

	utils.ResponseSuccess(w, "Role updated successfully", updated)
}

// ListServices handles GET /api/admin/services?category=
func (h *AdminHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	services, err := h.service.ListServices(r.Context(), user, optionalQuery(r, "category"))
	if err != nil {
		handleServiceError(w, h.log, err, "list services")
		return
	}

	utils.ResponseSuccess(w, "Services retrieved successfully", services)
}

// DeleteService handles DELETE /api/admin/services/{id}
func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteService(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "Service deleted successfully", nil)
}

// ListReservations handles GET /api/admin/reservations?status=
func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	reservations, err := h.service.ListReservations(r.Context(), user, optionalQuery(r, "status"))
	if err != nil {
		handleServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

// DeleteReservation handles DELETE /api/admin/reservations/{id}
func (h *AdminHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReservation(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation deleted successfully", nil)
}

// ListReviews handles GET /api/admin/reviews
func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	reviews, err := h.service.ListReviews(r.Context(), user)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// DeleteReview handles DELETE /api/admin/reviews/{id}
func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

// ListCategories handles GET /api/admin/categories
func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	categories, err := h.service.ListCategories(r.Context(), user)
	if err != nil {
		handleServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// RenameCategory handles PUT /api/admin/categories
func (h *AdminHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req request.RenameCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.RenameCategory(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rename category")
		return
	}

	utils.ResponseSuccess(w, "Category renamed successfully", result)
}

// DeleteCategory handles DELETE /api/admin/categories/{name}
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	result, err := h.service.DeleteCategory(r.Context(), user, chi.URLParam(r, "name"))
	if err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted successfully", result)
}

// Statistics handles GET /api/admin/statistics
func (h *AdminHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(r.Context(), user)
	if err != nil {
		handleServiceError(w, h.log, err, "get statistics")
		return
	}

	utils.ResponseSuccess(w, "Statistics retrieved successfully", stats)
}
