package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/CraftingDB_Go/internal/crafting"
	"github.com/osse101/CraftingDB_Go/internal/domain"
	"github.com/osse101/CraftingDB_Go/internal/naming"
)

// ListItems returns copies of every item, sorted by name then id
func (s *service) ListItems(_ context.Context) []*domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Items()
}

// GetItem returns a copy of one item or domain.ErrItemNotFound
func (s *service) GetItem(_ context.Context, id string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.db.Item(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// SearchItems ranks items by how well their id or name matches query
func (s *service) SearchItems(_ context.Context, query string) []naming.Match {
	return s.resolver.Search(query)
}

// ResolveItem accepts an item id or display name and returns the id
func (s *service) ResolveItem(_ context.Context, ref string) (string, bool) {
	return s.resolver.Resolve(ref)
}

func (s *service) AddItem(ctx context.Context, item *domain.Item) (domain.Result, error) {
	if item == nil {
		return domain.Result{}, domain.InvalidType("item", ErrMsgNilItem)
	}
	return s.apply(ctx, OpAddItem, func(db *crafting.Database) domain.Result {
		res := db.AddItem(item)
		if res.OK() {
			s.resolver.RegisterItem(item.ID(), item.Name)
		}
		return res
	}, "item", item.ID())
}

func (s *service) EditItem(ctx context.Context, id string, edit crafting.ItemEdit) (domain.Result, error) {
	return s.apply(ctx, OpEditItem, func(db *crafting.Database) domain.Result {
		res := db.EditItem(id, edit)
		if res.OK() {
			if item, ok := db.Item(id); ok {
				s.resolver.RegisterItem(id, item.Name)
			}
		}
		return res
	}, "item", id)
}

func (s *service) RemoveItem(ctx context.Context, id string, cascade bool) (domain.Result, error) {
	return s.apply(ctx, OpRemoveItem, func(db *crafting.Database) domain.Result {
		res := db.RemoveItem(id, cascade)
		if res.OK() {
			s.resolver.UnregisterItem(id)
		}
		return res
	}, "item", id, "cascade", cascade)
}
