package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"Care-Crumbs/domain"
	"Care-Crumbs/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockFoodRepository struct {
	items map[string]*entities.FoodItem
}

func newMockFoodRepository() *mockFoodRepository {
	return &mockFoodRepository{items: make(map[string]*entities.FoodItem)}
}

func (m *mockFoodRepository) AddFoodItem(ctx context.Context, item *entities.FoodItem) error {
	m.items[item.ID.String()] = item
	return nil
}

func (m *mockFoodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockFoodRepository) UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	m.items[item.ID.String()] = item
	return nil
}

func (m *mockFoodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockFoodRepository) GetInventory(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	for _, item := range m.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *mockFoodRepository) GetAvailableFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	for _, item := range m.items {
		if item.Stock > 0 && item.ExpiryDate.After(time.Now()) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *mockFoodRepository) AdjustStock(ctx context.Context, id string, delta int) (int64, error) {
	item, ok := m.items[id]
	if !ok {
		return 0, nil
	}
	next := item.Stock + delta
	if next < 0 || next > item.Quantity {
		return 0, nil
	}
	item.Stock = next
	return 1, nil
}

func (m *mockFoodRepository) DeleteExpiredFoodItems(ctx context.Context, now time.Time) (int64, error) {
	var deleted int64
	for id, item := range m.items {
		if item.ExpiryDate.Before(now) {
			delete(m.items, id)
			deleted++
		}
	}
	return deleted, nil
}

type mockCartRepository struct {
	items map[string]*entities.CartItem
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{items: make(map[string]*entities.CartItem)}
}

func (m *mockCartRepository) CreateCartItem(ctx context.Context, item *entities.CartItem) error {
	m.items[item.ID.String()] = item
	return nil
}

func (m *mockCartRepository) GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (m *mockCartRepository) GetCartItemByFood(ctx context.Context, userID string, foodItemID string) (*entities.CartItem, error) {
	for _, item := range m.items {
		if item.UserID.String() == userID && item.FoodItemID.String() == foodItemID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCartRepository) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	for _, item := range m.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *mockCartRepository) UpdateCartItemQuantity(ctx context.Context, id string, quantity int) error {
	item, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	return nil
}

func (m *mockCartRepository) DeleteCartItem(ctx context.Context, id string) error {
	delete(m.items, id)
	return nil
}

func (m *mockCartRepository) ClearCart(ctx context.Context, userID string) (int64, error) {
	var deleted int64
	for id, item := range m.items {
		if item.UserID.String() == userID {
			delete(m.items, id)
			deleted++
		}
	}
	return deleted, nil
}

func seedFoodItem(repo *mockFoodRepository, owner uuid.UUID, quantity int) *entities.FoodItem {
	item := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     owner,
		Name:       "Rice",
		Quantity:   quantity,
		Stock:      quantity,
		ExpiryDate: time.Now().Add(48 * time.Hour),
	}
	repo.items[item.ID.String()] = item
	return item
}

func TestAddToCartDecrementsStock(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	owner := uuid.New()
	item := seedFoodItem(foodRepo, owner, 10)
	userID := uuid.New().String()

	err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   4,
	}, userID)
	if err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}

	if item.Stock != 6 {
		t.Errorf("expected stock 6 after staging 4, got %d", item.Stock)
	}

	entry, err := cartRepo.GetCartItemByFood(context.Background(), userID, item.ID.String())
	if err != nil {
		t.Fatalf("expected cart entry, got %v", err)
	}
	if entry.Quantity != 4 {
		t.Errorf("expected cart quantity 4, got %d", entry.Quantity)
	}
	if entry.Name != "Rice" {
		t.Errorf("expected snapshot name Rice, got %q", entry.Name)
	}
}

func TestAddToCartExistingEntryAccumulates(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 10)
	userID := uuid.New().String()

	for _, q := range []int{3, 2} {
		if err := service.AddToCart(context.Background(), domain.AddToCartRequest{
			FoodItemID: item.ID.String(),
			Quantity:   q,
		}, userID); err != nil {
			t.Fatalf("AddToCart failed: %v", err)
		}
	}

	if len(cartRepo.items) != 1 {
		t.Fatalf("expected a single cart entry, got %d", len(cartRepo.items))
	}
	entry, _ := cartRepo.GetCartItemByFood(context.Background(), userID, item.ID.String())
	if entry.Quantity != 5 {
		t.Errorf("expected accumulated quantity 5, got %d", entry.Quantity)
	}
	if item.Stock != 5 {
		t.Errorf("expected stock 5, got %d", item.Stock)
	}
}

func TestAddToCartInsufficientStock(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 3)
	userID := uuid.New().String()

	err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   5,
	}, userID)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
	if item.Stock != 3 {
		t.Errorf("stock should be untouched, got %d", item.Stock)
	}
	if len(cartRepo.items) != 0 {
		t.Errorf("no cart entry should exist, got %d", len(cartRepo.items))
	}
}

func TestAddToCartUnknownFoodItem(t *testing.T) {
	service := NewCartService(newMockCartRepository(), newMockFoodRepository())

	err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: uuid.New().String(),
		Quantity:   1,
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrFoodItemNotFound) {
		t.Errorf("expected ErrFoodItemNotFound, got %v", err)
	}
}

func TestUpdateCartItemMirrorsDiffOntoStock(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 10)
	userID := uuid.New().String()

	if err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   4,
	}, userID); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	entry, _ := cartRepo.GetCartItemByFood(context.Background(), userID, item.ID.String())

	// raise 4 -> 7: consumes 3 more
	if err := service.UpdateCartItem(context.Background(), entry.ID.String(), domain.UpdateCartItemRequest{Quantity: 7}, userID); err != nil {
		t.Fatalf("UpdateCartItem failed: %v", err)
	}
	if item.Stock != 3 {
		t.Errorf("expected stock 3 after raising to 7, got %d", item.Stock)
	}

	// lower 7 -> 2: restores 5
	if err := service.UpdateCartItem(context.Background(), entry.ID.String(), domain.UpdateCartItemRequest{Quantity: 2}, userID); err != nil {
		t.Fatalf("UpdateCartItem failed: %v", err)
	}
	if item.Stock != 8 {
		t.Errorf("expected stock 8 after lowering to 2, got %d", item.Stock)
	}
	if entry.Quantity != 2 {
		t.Errorf("expected entry quantity 2, got %d", entry.Quantity)
	}
}

func TestUpdateCartItemToZeroRemovesEntry(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 10)
	userID := uuid.New().String()

	if err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   4,
	}, userID); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	entry, _ := cartRepo.GetCartItemByFood(context.Background(), userID, item.ID.String())

	if err := service.UpdateCartItem(context.Background(), entry.ID.String(), domain.UpdateCartItemRequest{Quantity: 0}, userID); err != nil {
		t.Fatalf("UpdateCartItem failed: %v", err)
	}
	if len(cartRepo.items) != 0 {
		t.Errorf("expected entry removed, got %d entries", len(cartRepo.items))
	}
	if item.Stock != 10 {
		t.Errorf("expected full stock restored, got %d", item.Stock)
	}
}

func TestUpdateCartItemInsufficientStock(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 5)
	userID := uuid.New().String()

	if err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   3,
	}, userID); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	entry, _ := cartRepo.GetCartItemByFood(context.Background(), userID, item.ID.String())

	err := service.UpdateCartItem(context.Background(), entry.ID.String(), domain.UpdateCartItemRequest{Quantity: 9}, userID)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
	if entry.Quantity != 3 {
		t.Errorf("entry quantity should be unchanged, got %d", entry.Quantity)
	}
}

func TestUpdateCartItemWrongOwner(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 5)
	userID := uuid.New().String()

	if err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   2,
	}, userID); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	entry, _ := cartRepo.GetCartItemByFood(context.Background(), userID, item.ID.String())

	err := service.UpdateCartItem(context.Background(), entry.ID.String(), domain.UpdateCartItemRequest{Quantity: 1}, uuid.New().String())
	if !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound for foreign entry, got %v", err)
	}
}

func TestRemoveFromCartRestoresStock(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 10)
	userID := uuid.New().String()

	if err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   6,
	}, userID); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	entry, _ := cartRepo.GetCartItemByFood(context.Background(), userID, item.ID.String())

	if err := service.RemoveFromCart(context.Background(), entry.ID.String(), userID); err != nil {
		t.Fatalf("RemoveFromCart failed: %v", err)
	}
	if item.Stock != 10 {
		t.Errorf("expected stock restored to 10, got %d", item.Stock)
	}

	// removing again reports the entry as gone
	err := service.RemoveFromCart(context.Background(), entry.ID.String(), userID)
	if !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound on second removal, got %v", err)
	}
	if item.Stock != 10 {
		t.Errorf("stock must not change on failed removal, got %d", item.Stock)
	}
}

func TestRemoveFromCartDanglingFoodItem(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 5)
	userID := uuid.New().String()

	if err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   2,
	}, userID); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	entry, _ := cartRepo.GetCartItemByFood(context.Background(), userID, item.ID.String())

	// the referenced inventory row disappears
	delete(foodRepo.items, item.ID.String())

	if err := service.RemoveFromCart(context.Background(), entry.ID.String(), userID); err != nil {
		t.Fatalf("removal should tolerate a missing referent: %v", err)
	}
	if len(cartRepo.items) != 0 {
		t.Errorf("expected dangling entry removed, got %d entries", len(cartRepo.items))
	}
}

func TestClearCartDoesNotRestoreStock(t *testing.T) {
	foodRepo := newMockFoodRepository()
	cartRepo := newMockCartRepository()
	service := NewCartService(cartRepo, foodRepo)

	item := seedFoodItem(foodRepo, uuid.New(), 10)
	userID := uuid.New().String()

	if err := service.AddToCart(context.Background(), domain.AddToCartRequest{
		FoodItemID: item.ID.String(),
		Quantity:   7,
	}, userID); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}

	deleted, err := service.ClearCart(context.Background(), userID)
	if err != nil {
		t.Fatalf("ClearCart failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted entry, got %d", deleted)
	}
	if item.Stock != 3 {
		t.Errorf("clearing must not restore stock, got %d", item.Stock)
	}

	// clearing an already empty cart is a no-op
	deleted, err = service.ClearCart(context.Background(), userID)
	if err != nil {
		t.Fatalf("second ClearCart failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted entries, got %d", deleted)
	}
}
