package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentsQueryHandler retrieves tenant-scoped agent listings.
type GetAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentsQueryHandler creates a handler for agent listing queries.
// Requires a GORM database connection for query execution.
func NewGetAgentsQueryHandler(db *gorm.DB) GetAgentsQueryHandler {
	return GetAgentsQueryHandler{db: db}
}

// Handle executes the query and returns agents sorted by name.
// Only packaging and delivery agent roles appear; admins and reviewers are
// not assignable and stay out of the listing.
func (h GetAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentsQuery,
) ([]GetAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAgentsQueryResponse, 0)

	scope := query.Scope()
	if scope.MatchesNone() {
		return agents, nil
	}

	sql := `
		SELECT
			id,
			name,
			role,
			active
		FROM users
		WHERE role IN (?, ?)
	`
	args := []any{int(user.RolePackagingAgent), int(user.RoleDeliveryAgent)}
	if !scope.MatchesAll() {
		sql += ` AND created_by_id = ?`
		args = append(args, scope.AdminID().Bytes())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAgentsQueryResponse
		var id uuid.UUID
		var role int

		err = rows.Scan(
			&id,
			&resp.Name,
			&role,
			&resp.Active,
		)
		if err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = agentID
		resp.Role = user.Role(role)
		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
