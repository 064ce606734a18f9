package eshopapp

import (
	"context"
	"testing"
	"time"

	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockReturnRepository implements eshop.ReturnRepository for testing
type MockReturnRepository struct {
	mock.Mock
}

func (m *MockReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*eshop.Return, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eshop.Return), args.Error(1)
}

func (m *MockReturnRepository) FindByOrderID(ctx context.Context, orderID string) (*eshop.Return, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eshop.Return), args.Error(1)
}

func (m *MockReturnRepository) Save(ctx context.Context, ret *eshop.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

// MockOrderRepository implements eshop.OrderRepository for testing
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*eshop.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eshop.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*eshop.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eshop.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *eshop.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func newReturnService(returnRepo *MockReturnRepository, orderRepo *MockOrderRepository) *ReturnService {
	return NewReturnService(returnRepo, orderRepo, zap.NewNop())
}

func TestCreateFromOrderID_CreatesNewReturn(t *testing.T) {
	returnRepo := new(MockReturnRepository)
	orderRepo := new(MockOrderRepository)
	service := newReturnService(returnRepo, orderRepo)

	order, err := eshop.NewOrder("ORD-1001", eshop.OrderStatusSent, time.Now())
	require.NoError(t, err)
	order.SetCustomer(uuid.New())

	orderRepo.On("FindByOrderID", mock.Anything, "ORD-1001").Return(order, nil)
	returnRepo.On("FindByOrderID", mock.Anything, "ORD-1001").Return(nil, shared.ErrNotFound)
	returnRepo.On("Save", mock.Anything, mock.AnythingOfType("*eshop.Return")).Return(nil)

	ret, err := service.CreateFromOrderID(context.Background(), "ORD-1001")
	require.NoError(t, err)

	assert.Equal(t, "ORD-1001", ret.OrderID)
	assert.Equal(t, eshop.ReturnStatusUnconfirmed, ret.Status)
	assert.Equal(t, order.CustomerID, ret.CustomerID)
	assert.WithinDuration(t, time.Now(), ret.Date, time.Minute)
	returnRepo.AssertExpectations(t)
}

func TestCreateFromOrderID_ReturnsExistingReturn(t *testing.T) {
	returnRepo := new(MockReturnRepository)
	orderRepo := new(MockOrderRepository)
	service := newReturnService(returnRepo, orderRepo)

	order, err := eshop.NewOrder("ORD-1001", eshop.OrderStatusSent, time.Now())
	require.NoError(t, err)

	existing, err := eshop.NewReturn("ORD-1001", uuid.New())
	require.NoError(t, err)

	orderRepo.On("FindByOrderID", mock.Anything, "ORD-1001").Return(order, nil)
	returnRepo.On("FindByOrderID", mock.Anything, "ORD-1001").Return(existing, nil)

	ret, err := service.CreateFromOrderID(context.Background(), "ORD-1001")
	require.NoError(t, err)

	assert.Same(t, existing, ret)
	returnRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateFromOrderID_UnknownOrder(t *testing.T) {
	returnRepo := new(MockReturnRepository)
	orderRepo := new(MockOrderRepository)
	service := newReturnService(returnRepo, orderRepo)

	orderRepo.On("FindByOrderID", mock.Anything, "NOPE").Return(nil, shared.ErrNotFound)

	_, err := service.CreateFromOrderID(context.Background(), "NOPE")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	returnRepo.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
}

func TestGetReturn(t *testing.T) {
	returnRepo := new(MockReturnRepository)
	orderRepo := new(MockOrderRepository)
	service := newReturnService(returnRepo, orderRepo)

	existing, err := eshop.NewReturn("ORD-1001", uuid.New())
	require.NoError(t, err)

	returnRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	ret, err := service.GetReturn(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Same(t, existing, ret)
}
