package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/domain/model/tenant"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID, scope tenant.Scope) (*order.Order, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) GetOpenByOrderAndKind(
	ctx context.Context,
	orderID kernel.UUID,
	kind task.Kind,
) (*task.Task, error) {
	args := m.Called(ctx, orderID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAuditLogger struct{ mock.Mock }

func (m *MockAuditLogger) Log(ctx context.Context, entry ports.AuditEntry) {
	m.Called(ctx, entry)
}

// Test fixture helpers shared by the handler tests.

func newTestOrder(t *testing.T, sellerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("J. Smith", "+15550100", "12 Main St")
	require.NoError(t, err)
	ord, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1", sellerID, customer, 14900, status)
	require.NoError(t, err)
	return ord
}

func newTestUser(t *testing.T, role user.Role, createdByID *kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Test User", role, createdByID)
	require.NoError(t, err)
	return u
}

func newInactiveUser(t *testing.T, role user.Role, createdByID *kernel.UUID) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.NewUUID(), "Former Employee", role, createdByID, false)
	require.NoError(t, err)
	return u
}

func newOpenTask(t *testing.T, kind task.Kind, orderID, agentID kernel.UUID) *task.Task {
	t.Helper()
	tsk, err := task.NewTask(kernel.NewUUID(), kind, orderID, agentID, time.Now().UTC())
	require.NoError(t, err)
	return tsk
}
