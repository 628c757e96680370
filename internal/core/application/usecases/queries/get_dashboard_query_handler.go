package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler aggregates the tenant's fulfillment workload.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the aggregation.
// Statuses with no orders are absent from the map rather than zero-valued.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	response := GetDashboardQueryResponse{
		OrdersByStatus: make(map[order.Status]int64),
	}

	if err := query.Validate(); err != nil {
		return response, err
	}

	scope := query.Scope()
	if scope.MatchesNone() {
		return response, nil
	}

	statusSQL := `
		SELECT o.status, COUNT(*)
		FROM orders o
		JOIN sellers s ON s.id = o.seller_id
	`
	args := make([]any, 0, 1)
	if !scope.MatchesAll() {
		statusSQL += ` WHERE s.admin_id = ?`
		args = append(args, scope.AdminID().Bytes())
	}
	statusSQL += ` GROUP BY o.status`

	rows, err := h.db.WithContext(ctx).Raw(statusSQL, args...).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return response, err
		}
		response.OrdersByStatus[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return response, err
	}

	openSQL := `
		SELECT COUNT(*)
		FROM tasks t
		JOIN orders o ON o.id = t.order_id
		JOIN sellers s ON s.id = o.seller_id
		WHERE t.completed_at IS NULL
	`
	if !scope.MatchesAll() {
		openSQL += ` AND s.admin_id = ?`
	}

	if err = h.db.WithContext(ctx).Raw(openSQL, args...).
		Scan(&response.OpenTasks).Error; err != nil {
		return response, err
	}

	return response, nil
}
