package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory stub repositories. Each mirrors the filters its SQL counterpart
// applies so the services under test see the same behavior.

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindAll(_ context.Context, role *entity.UserRole) ([]*entity.User, error) {
	var result []*entity.User
	for _, user := range r.users {
		if role != nil && user.Role != *role {
			continue
		}
		clone := *user
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role entity.UserRole) error {
	user, ok := r.users[id]
	if !ok {
		return entity.ErrNotFound
	}
	user.Role = role
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context) (map[entity.UserRole]int64, error) {
	counts := make(map[entity.UserRole]int64)
	for _, user := range r.users {
		counts[user.Role]++
	}
	return counts, nil
}

type stubServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
}

func (r *stubServiceRepo) Create(_ context.Context, service *entity.Service) error {
	clone := *service
	r.services[service.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	clone := *service
	return &clone, nil
}

func (r *stubServiceRepo) FindAll(_ context.Context, category *string) ([]*entity.Service, error) {
	var result []*entity.Service
	for _, service := range r.services {
		if category != nil && service.Category != *category {
			continue
		}
		clone := *service
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubServiceRepo) FindByProviderID(_ context.Context, providerID uuid.UUID) ([]*entity.Service, error) {
	var result []*entity.Service
	for _, service := range r.services {
		if service.ProviderID != providerID {
			continue
		}
		clone := *service
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubServiceRepo) Search(_ context.Context, name, category *string) ([]*entity.Service, error) {
	var result []*entity.Service
	for _, service := range r.services {
		if name != nil && !strings.Contains(strings.ToLower(service.Name), strings.ToLower(*name)) {
			continue
		}
		if category != nil && !strings.Contains(strings.ToLower(service.Category), strings.ToLower(*category)) {
			continue
		}
		clone := *service
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubServiceRepo) Update(_ context.Context, service *entity.Service) error {
	if _, ok := r.services[service.ID]; !ok {
		return entity.ErrNotFound
	}
	clone := *service
	r.services[service.ID] = &clone
	return nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.services[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *stubServiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.services)), nil
}

func (r *stubServiceRepo) DistinctCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	for _, service := range r.services {
		seen[service.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *stubServiceRepo) RenameCategory(_ context.Context, from, to string) (int64, error) {
	var count int64
	for _, service := range r.services {
		if service.Category == from {
			service.Category = to
			count++
		}
	}
	return count, nil
}

func (r *stubServiceRepo) DeleteByCategory(_ context.Context, category string) (int64, error) {
	var count int64
	for id, service := range r.services {
		if service.Category == category {
			delete(r.services, id)
			count++
		}
	}
	return count, nil
}

type stubReservationRepo struct {
	reservations map[uuid.UUID]*entity.Reservation
}

func newStubReservationRepo() *stubReservationRepo {
	return &stubReservationRepo{reservations: make(map[uuid.UUID]*entity.Reservation)}
}

func (r *stubReservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	clone := *reservation
	r.reservations[reservation.ID] = &clone
	return nil
}

func (r *stubReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	clone := *reservation
	return &clone, nil
}

func (r *stubReservationRepo) FindAll(_ context.Context, status *entity.ReservationStatus) ([]*entity.Reservation, error) {
	var result []*entity.Reservation
	for _, reservation := range r.reservations {
		if status != nil && reservation.Status != *status {
			continue
		}
		clone := *reservation
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubReservationRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID, status *entity.ReservationStatus) ([]*entity.Reservation, error) {
	var result []*entity.Reservation
	for _, reservation := range r.reservations {
		if reservation.CustomerID != customerID {
			continue
		}
		if status != nil && reservation.Status != *status {
			continue
		}
		clone := *reservation
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubReservationRepo) FindByProviderID(_ context.Context, providerID uuid.UUID, status *entity.ReservationStatus) ([]*entity.Reservation, error) {
	var result []*entity.Reservation
	for _, reservation := range r.reservations {
		if reservation.ProviderID != providerID {
			continue
		}
		if status != nil && reservation.Status != *status {
			continue
		}
		clone := *reservation
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubReservationRepo) Update(_ context.Context, reservation *entity.Reservation) error {
	if _, ok := r.reservations[reservation.ID]; !ok {
		return entity.ErrNotFound
	}
	clone := *reservation
	r.reservations[reservation.ID] = &clone
	return nil
}

func (r *stubReservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	reservation, ok := r.reservations[id]
	if !ok {
		return entity.ErrNotFound
	}
	reservation.Status = status
	return nil
}

func (r *stubReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.reservations[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.reservations, id)
	return nil
}

func (r *stubReservationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.reservations)), nil
}

func (r *stubReservationRepo) CountByStatus(_ context.Context, status entity.ReservationStatus) (int64, error) {
	var count int64
	for _, reservation := range r.reservations {
		if reservation.Status == status {
			count++
		}
	}
	return count, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *stubReservationRepo) FindActiveByServiceAndDate(_ context.Context, serviceID uuid.UUID, day time.Time) ([]*entity.Reservation, error) {
	var result []*entity.Reservation
	for _, reservation := range r.reservations {
		if reservation.ServiceID != serviceID {
			continue
		}
		if !reservation.Status.IsActive() {
			continue
		}
		if !sameDay(reservation.ScheduledAt, day) {
			continue
		}
		clone := *reservation
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubReservationRepo) ActiveServiceIDsOnDate(_ context.Context, day time.Time) (map[uuid.UUID]struct{}, error) {
	booked := make(map[uuid.UUID]struct{})
	for _, reservation := range r.reservations {
		if reservation.Status.IsActive() && sameDay(reservation.ScheduledAt, day) {
			booked[reservation.ServiceID] = struct{}{}
		}
	}
	return booked, nil
}

type stubReviewRepo struct {
	reviews  map[uuid.UUID]*entity.Review
	services *stubServiceRepo
}

func newStubReviewRepo(services *stubServiceRepo) *stubReviewRepo {
	return &stubReviewRepo{
		reviews:  make(map[uuid.UUID]*entity.Review),
		services: services,
	}
}

func (r *stubReviewRepo) Create(_ context.Context, review *entity.Review) error {
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	clone := *review
	return &clone, nil
}

func (r *stubReviewRepo) FindAll(_ context.Context) ([]*entity.Review, error) {
	var result []*entity.Review
	for _, review := range r.reviews {
		clone := *review
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubReviewRepo) FindByServiceID(_ context.Context, serviceID uuid.UUID) ([]*entity.Review, error) {
	var result []*entity.Review
	for _, review := range r.reviews {
		if review.ServiceID != serviceID {
			continue
		}
		clone := *review
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubReviewRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var result []*entity.Review
	for _, review := range r.reviews {
		if review.UserID != userID {
			continue
		}
		clone := *review
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.reviews[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *stubReviewRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.reviews)), nil
}

func average(ratings []int) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	var sum int
	for _, rating := range ratings {
		sum += rating
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg
}

func (r *stubReviewRepo) AverageByServiceID(_ context.Context, serviceID uuid.UUID) (*float64, error) {
	var ratings []int
	for _, review := range r.reviews {
		if review.ServiceID == serviceID {
			ratings = append(ratings, review.Rating)
		}
	}
	return average(ratings), nil
}

func (r *stubReviewRepo) AverageByProviderID(_ context.Context, providerID uuid.UUID) (*float64, error) {
	var ratings []int
	for _, review := range r.reviews {
		service, ok := r.services.services[review.ServiceID]
		if !ok || service.ProviderID != providerID {
			continue
		}
		ratings = append(ratings, review.Rating)
	}
	return average(ratings), nil
}

type favoriteKey struct {
	userID    uuid.UUID
	serviceID uuid.UUID
}

type stubFavoriteRepo struct {
	favorites map[favoriteKey]*entity.Favorite
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{favorites: make(map[favoriteKey]*entity.Favorite)}
}

func (r *stubFavoriteRepo) Create(_ context.Context, favorite *entity.Favorite) error {
	key := favoriteKey{favorite.UserID, favorite.ServiceID}
	if _, ok := r.favorites[key]; ok {
		return entity.ErrDuplicate
	}
	clone := *favorite
	r.favorites[key] = &clone
	return nil
}

func (r *stubFavoriteRepo) FindByUserAndService(_ context.Context, userID, serviceID uuid.UUID) (*entity.Favorite, error) {
	favorite, ok := r.favorites[favoriteKey{userID, serviceID}]
	if !ok {
		return nil, nil
	}
	clone := *favorite
	return &clone, nil
}

func (r *stubFavoriteRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var result []*entity.Favorite
	for _, favorite := range r.favorites {
		if favorite.UserID != userID {
			continue
		}
		clone := *favorite
		result = append(result, &clone)
	}
	return result, nil
}

func (r *stubFavoriteRepo) Delete(_ context.Context, userID, serviceID uuid.UUID) error {
	key := favoriteKey{userID, serviceID}
	if _, ok := r.favorites[key]; !ok {
		return entity.ErrNotFound
	}
	delete(r.favorites, key)
	return nil
}

func (r *stubFavoriteRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, favorite := range r.favorites {
		if favorite.UserID == userID {
			count++
		}
	}
	return count, nil
}

type stubNotificationRepo struct {
	notifications map[uuid.UUID]*entity.Notification
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[uuid.UUID]*entity.Notification)}
}

func (r *stubNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	clone := *notification
	r.notifications[notification.ID] = &clone
	return nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	clone := *notification
	return &clone, nil
}

func (r *stubNotificationRepo) FindByUserID(_ context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	var result []*entity.Notification
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.IsRead {
			continue
		}
		clone := *notification
		result = append(result, &clone)
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *stubNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	notification, ok := r.notifications[id]
	if !ok {
		return entity.ErrNotFound
	}
	notification.IsRead = true
	return nil
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, notification := range r.notifications {
		if notification.UserID == userID && !notification.IsRead {
			notification.IsRead = true
			count++
		}
	}
	return count, nil
}

func (r *stubNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.notifications[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.notifications, id)
	return nil
}

// testEnv bundles the stub repositories behind the aggregate the services
// expect.
type testEnv struct {
	users         *stubUserRepo
	services      *stubServiceRepo
	reservations  *stubReservationRepo
	reviews       *stubReviewRepo
	favorites     *stubFavoriteRepo
	notifications *stubNotificationRepo
	repo          *repository.Repository
}

func newTestEnv() *testEnv {
	users := newStubUserRepo()
	services := newStubServiceRepo()
	reservations := newStubReservationRepo()
	reviews := newStubReviewRepo(services)
	favorites := newStubFavoriteRepo()
	notifications := newStubNotificationRepo()

	return &testEnv{
		users:         users,
		services:      services,
		reservations:  reservations,
		reviews:       reviews,
		favorites:     favorites,
		notifications: notifications,
		repo: &repository.Repository{
			User:         users,
			Service:      services,
			Reservation:  reservations,
			Review:       reviews,
			Favorite:     favorites,
			Notification: notifications,
		},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func (e *testEnv) addUser(role entity.UserRole) *entity.User {
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user-" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	e.users.users[user.ID] = user
	return user
}

func (e *testEnv) addService(provider *entity.User) *entity.Service {
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Pipe repair",
		Category:   "Plumbing",
		Price:      50,
		Duration:   60,
		ProviderID: provider.ID,
	}
	e.services.services[service.ID] = service
	return service
}

func (e *testEnv) addReservation(customer *entity.User, service *entity.Service, at time.Time, status entity.ReservationStatus) *entity.Reservation {
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScheduledAt: at,
		Status:      status,
		CustomerID:  customer.ID,
		ProviderID:  service.ProviderID,
		ServiceID:   service.ID,
	}
	e.reservations.reservations[reservation.ID] = reservation
	return reservation
}
