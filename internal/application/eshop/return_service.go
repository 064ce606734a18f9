package eshopapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/euroweb/backoffice/internal/domain/eshop"
	"github.com/euroweb/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReturnService manages return requests for eshop orders
type ReturnService struct {
	returnRepo eshop.ReturnRepository
	orderRepo  eshop.OrderRepository
	logger     *zap.Logger
}

// NewReturnService creates a new ReturnService
func NewReturnService(returnRepo eshop.ReturnRepository, orderRepo eshop.OrderRepository, logger *zap.Logger) *ReturnService {
	return &ReturnService{
		returnRepo: returnRepo,
		orderRepo:  orderRepo,
		logger:     logger.Named("eshop-return"),
	}
}

// GetReturn fetches a return request by id
func (s *ReturnService) GetReturn(ctx context.Context, id uuid.UUID) (*eshop.Return, error) {
	return s.returnRepo.FindByID(ctx, id)
}

// CreateFromOrderID creates a return request for the given external order
// id, or returns the existing one. The order must exist; the new return
// starts UNCONFIRMED and belongs to the order's customer.
func (s *ReturnService) CreateFromOrderID(ctx context.Context, orderID string) (*eshop.Return, error) {
	order, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	ret, err := s.returnRepo.FindByOrderID(ctx, orderID)
	if err == nil {
		return ret, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	ret, err = eshop.NewReturn(orderID, order.CustomerID)
	if err != nil {
		return nil, err
	}
	if err := s.returnRepo.Save(ctx, ret); err != nil {
		return nil, fmt.Errorf("save return: %w", err)
	}

	s.logger.Info("Created return request",
		zap.String("order_id", orderID),
		zap.String("return_id", ret.ID.String()))
	return ret, nil
}
