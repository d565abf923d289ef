package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftingDB_Go/internal/catalog"
	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
	"github.com/osse101/CraftingDB_Go/internal/naming"
)

// MockService is a testify mock of catalog.Service
type MockService struct {
	mock.Mock
}

var _ catalog.Service = (*MockService)(nil)

func (m *MockService) ListItems(ctx context.Context) []*domain.Item {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.Item)
}

func (m *MockService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockService) SearchItems(ctx context.Context, query string) []naming.Match {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]naming.Match)
}

func (m *MockService) ResolveItem(ctx context.Context, ref string) (string, bool) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Bool(1)
}

func (m *MockService) AddItem(ctx context.Context, item *domain.Item) (domain.Result, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockService) EditItem(ctx context.Context, id string, edit crafting.ItemEdit) (domain.Result, error) {
	args := m.Called(ctx, id, edit)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockService) RemoveItem(ctx context.Context, id string, cascade bool) (domain.Result, error) {
	args := m.Called(ctx, id, cascade)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockService) ListRecipes(ctx context.Context, key crafting.SortKey, dir crafting.SortDirection) []catalog.RecipeView {
	args := m.Called(ctx, key, dir)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]catalog.RecipeView)
}

func (m *MockService) RecipesUsing(ctx context.Context, id string) []catalog.RecipeView {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]catalog.RecipeView)
}

func (m *MockService) Profit(ctx context.Context, recipe *domain.Recipe) catalog.RecipeView {
	args := m.Called(ctx, recipe)
	return args.Get(0).(catalog.RecipeView)
}

func (m *MockService) Suggestions(ctx context.Context, recipe *domain.Recipe) map[string][]string {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string][]string)
}

func (m *MockService) AddRecipe(ctx context.Context, recipe *domain.Recipe) (domain.Result, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockService) EditRecipe(ctx context.Context, old, replacement *domain.Recipe) (domain.Result, error) {
	args := m.Called(ctx, old, replacement)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockService) RemoveRecipe(ctx context.Context, recipe *domain.Recipe) (domain.Result, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(domain.Result), args.Error(1)
}

func (m *MockService) Info(ctx context.Context) catalog.Info {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Info)
}

func (m *MockService) Snapshot(ctx context.Context) crafting.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(crafting.Snapshot)
}

func (m *MockService) Rename(ctx context.Context, name string) (catalog.Info, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(catalog.Info), args.Error(1)
}

func (m *MockService) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockService) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
