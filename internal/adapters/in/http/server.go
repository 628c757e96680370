// Package http exposes the fulfillment API over echo.
//
// Authentication is external: the API gateway verifies credentials and
// forwards the acting user's id in the X-Actor-Id header. Everything else
// about the actor (role, creator link, active flag) is loaded from storage,
// never trusted from the request.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/tenancy"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/domain/model/tenant"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the authenticated user id set by the API gateway.
const ActorHeader = "X-Actor-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	assignAgentHandler  commands.AssignAgentCommandHandler

	getOrdersHandler    queries.GetOrdersQueryHandler
	getAgentsHandler    queries.GetAgentsQueryHandler
	getDashboardHandler queries.GetDashboardQueryHandler

	users ports.UserRepository
}

// NewServer creates a new HTTP server with the required command and query handlers.
// The user repository is read-only here; it backs actor loading and tenant
// scope resolution for the query endpoints.
func NewServer(
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getAgentsHandler queries.GetAgentsQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
	users ports.UserRepository,
) *Server {
	return &Server{
		updateStatusHandler: updateStatusHandler,
		assignAgentHandler:  assignAgentHandler,
		getOrdersHandler:    getOrdersHandler,
		getAgentsHandler:    getAgentsHandler,
		getDashboardHandler: getDashboardHandler,
		users:               users,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/assignment", s.AssignAgent)
	api.GET("/orders", s.GetOrders)
	api.GET("/agents", s.GetAgents)
	api.GET("/dashboard", s.GetDashboard)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// UpdateStatusRequest is the body of PATCH /orders/:orderId/status.
type UpdateStatusRequest struct {
	Status       string `json:"status"`
	ReceiverName string `json:"receiverName,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// AssignAgentRequest is the body of POST /orders/:orderId/assignment.
type AssignAgentRequest struct {
	AgentID string `json:"agentId"`
}

// OrderResponse is one row of the order listing.
type OrderResponse struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	CustomerName string `json:"customerName"`
	TotalAmount  int64  `json:"totalAmount"`
	Status       string `json:"status"`
}

// AgentResponse is one row of the agent listing.
type AgentResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// TaskResponse is the wire form of a packaging or delivery task.
type TaskResponse struct {
	ID           string     `json:"id"`
	Kind         string     `json:"kind"`
	OrderID      string     `json:"orderId"`
	AgentID      string     `json:"agentId"`
	AssignedAt   time.Time  `json:"assignedAt"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	ReceiverName string     `json:"receiverName,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// TransitionResponse is the body of both mutation endpoints: the order in its
// post-transition state plus the task the transition opened or closed, when
// the edge has a task effect.
type TransitionResponse struct {
	Order OrderResponse `json:"order"`
	Task  *TaskResponse `json:"task,omitempty"`
}

// DashboardResponse aggregates the tenant's workload.
type DashboardResponse struct {
	OrdersByStatus map[string]int64 `json:"ordersByStatus"`
	OpenTasks      int64            `json:"openTasks"`
}

func orderResponse(ord *order.Order) OrderResponse {
	return OrderResponse{
		ID:           ord.ID().String(),
		Number:       ord.Number(),
		CustomerName: ord.Customer().Name(),
		TotalAmount:  ord.TotalAmount(),
		Status:       ord.Status().String(),
	}
}

func taskResponse(tsk *task.Task) *TaskResponse {
	if tsk == nil {
		return nil
	}
	return &TaskResponse{
		ID:           tsk.ID().String(),
		Kind:         tsk.Kind().String(),
		OrderID:      tsk.OrderID().String(),
		AgentID:      tsk.AgentID().String(),
		AssignedAt:   tsk.AssignedAt(),
		StartedAt:    tsk.StartedAt(),
		CompletedAt:  tsk.CompletedAt(),
		ReceiverName: tsk.ReceiverName(),
		Notes:        tsk.Notes(),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actorID, err := s.actorID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or malformed "+ActorHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Malformed order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actorID, orderID, target, req.ReceiverName, req.Notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	ord, tsk, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{
		Order: orderResponse(ord),
		Task:  taskResponse(tsk),
	})
}

// AssignAgent handles POST /api/v1/orders/:orderId/assignment.
func (s *Server) AssignAgent(ctx echo.Context) error {
	actorID, err := s.actorID(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or malformed "+ActorHeader+" header")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Malformed order id")
	}

	var req AssignAgentRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Malformed agent id")
	}

	cmd, err := commands.NewAssignAgentCommand(actorID, orderID, agentID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	ord, tsk, err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TransitionResponse{
		Order: orderResponse(ord),
		Task:  taskResponse(tsk),
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	scope, ok, resp := s.resolveScope(ctx)
	if !ok {
		return resp
	}

	query, err := queries.NewGetOrdersQuery(scope)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to build query")
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:           o.ID.String(),
			Number:       o.Number,
			CustomerName: o.CustomerName,
			TotalAmount:  o.TotalAmount,
			Status:       o.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgents handles GET /api/v1/agents.
func (s *Server) GetAgents(ctx echo.Context) error {
	scope, ok, resp := s.resolveScope(ctx)
	if !ok {
		return resp
	}

	query, err := queries.NewGetAgentsQuery(scope)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to build query")
	}

	agents, err := s.getAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve agents")
	}

	response := make([]AgentResponse, len(agents))
	for i, a := range agents {
		response[i] = AgentResponse{
			ID:     a.ID.String(),
			Name:   a.Name,
			Role:   a.Role.String(),
			Active: a.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	scope, ok, resp := s.resolveScope(ctx)
	if !ok {
		return resp
	}

	query, err := queries.NewGetDashboardQuery(scope)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to build query")
	}

	dashboard, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve dashboard")
	}

	byStatus := make(map[string]int64, len(dashboard.OrdersByStatus))
	for status, count := range dashboard.OrdersByStatus {
		byStatus[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		OrdersByStatus: byStatus,
		OpenTasks:      dashboard.OpenTasks,
	})
}

func (s *Server) actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(ActorHeader))
}

// resolveScope loads the acting user and maps it to a tenant scope for the
// read endpoints. Unknown or deactivated actors are rejected outright rather
// than resolved to the fail-closed empty scope, so callers get a clear 403
// instead of silently empty listings. When ok is false the error response has
// already been written.
func (s *Server) resolveScope(ctx echo.Context) (scope tenant.Scope, ok bool, resp error) {
	actorID, err := s.actorID(ctx)
	if err != nil {
		return tenant.Scope{}, false, errorJSON(ctx, http.StatusUnauthorized,
			"Missing or malformed "+ActorHeader+" header")
	}

	reqCtx := ctx.Request().Context()

	actingUser, err := s.users.Get(reqCtx, actorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return tenant.Scope{}, false, errorJSON(ctx, http.StatusForbidden, "Unknown actor")
	}
	if err != nil {
		return tenant.Scope{}, false, errorJSON(ctx, http.StatusInternalServerError, "Failed to load actor")
	}
	if !actingUser.IsActive() {
		return tenant.Scope{}, false, errorJSON(ctx, http.StatusForbidden, "Actor is deactivated")
	}

	act, err := actor.ActorFromUser(actingUser)
	if err != nil {
		return tenant.Scope{}, false, errorJSON(ctx, http.StatusInternalServerError, "Failed to load actor")
	}

	return tenancy.ResolveScope(reqCtx, act, s.users), true, nil
}

func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, commands.ErrNotPermitted),
		errors.Is(err, commands.ErrNotAssigned):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, task.ErrTaskAlreadyOpen),
		errors.Is(err, commands.ErrNoOpenTask):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, task.ErrProofRequired),
		errors.Is(err, commands.ErrInvalidAgent),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
