package response

type StatisticsResponse struct {
	TotalUsers          int64            `json:"total_users"`
	UsersByRole         map[string]int64 `json:"users_by_role"`
	TotalServices       int64            `json:"total_services"`
	TotalReservations   int64            `json:"total_reservations"`
	PendingReservations int64            `json:"pending_reservations"`
	TotalReviews        int64            `json:"total_reviews"`
}

type CategoryChangeResponse struct {
	// Services affected by the rename or cascade delete.
	Count int64 `json:"count"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
