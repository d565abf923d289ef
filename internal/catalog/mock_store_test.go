package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftingDB_Go/internal/crafting"
)

// MockStore is a testify mock of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (*crafting.Database, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crafting.Database), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, db *crafting.Database) error {
	args := m.Called(ctx, db)
	return args.Error(0)
}

func (m *MockStore) Location() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
