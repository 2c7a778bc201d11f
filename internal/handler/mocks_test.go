package handler

import (
	"context"
	"errors"

	"github.com/iliyamo/visitor-entry-system/internal/repository"
)

// Function-field fakes for the store interfaces. Each method delegates to
// its field when set and fails loudly otherwise, so a test only wires what
// it exercises.

type mockUserStore struct {
	createFunc        func(ctx context.Context, username, password, role string, buildingID uint64, cost int) (uint64, error)
	getByUsernameFunc func(ctx context.Context, username string) (repository.User, error)
	getByIDFunc       func(ctx context.Context, id uint64) (repository.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, username, password, role string, buildingID uint64, cost int) (uint64, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, username, password, role, buildingID, cost)
	}
	return 0, errors.New("not implemented")
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (repository.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return repository.User{}, errors.New("not implemented")
}

func (m *mockUserStore) GetByID(ctx context.Context, id uint64) (repository.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return repository.User{}, errors.New("not implemented")
}

type mockBuildingStore struct {
	createFunc  func(ctx context.Context, name, address string) (uint64, error)
	listAllFunc func(ctx context.Context) ([]*repository.Building, error)
}

func (m *mockBuildingStore) Create(ctx context.Context, name, address string) (uint64, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, name, address)
	}
	return 0, errors.New("not implemented")
}

func (m *mockBuildingStore) ListAll(ctx context.Context) ([]*repository.Building, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

type mockVisitorStore struct {
	createFunc         func(ctx context.Context, v *repository.Visitor) error
	listByBuildingFunc func(ctx context.Context, buildingID uint64) ([]*repository.Visitor, error)
	checkoutFunc       func(ctx context.Context, id, buildingID uint64) error
}

func (m *mockVisitorStore) Create(ctx context.Context, v *repository.Visitor) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, v)
	}
	return errors.New("not implemented")
}

func (m *mockVisitorStore) ListByBuilding(ctx context.Context, buildingID uint64) ([]*repository.Visitor, error) {
	if m.listByBuildingFunc != nil {
		return m.listByBuildingFunc(ctx, buildingID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockVisitorStore) Checkout(ctx context.Context, id, buildingID uint64) error {
	if m.checkoutFunc != nil {
		return m.checkoutFunc(ctx, id, buildingID)
	}
	return errors.New("not implemented")
}
