package cart

import (
	"Care-Crumbs/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CartRepository interface {
		CreateCartItem(ctx context.Context, cartItem *entities.CartItem) error
		GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error)
		GetCartItemByFood(ctx context.Context, userID string, foodItemID string) (*entities.CartItem, error)
		GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error)
		UpdateCartItemQuantity(ctx context.Context, id string, quantity int) error
		DeleteCartItem(ctx context.Context, id string) error
		ClearCart(ctx context.Context, userID string) (int64, error)
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) CreateCartItem(ctx context.Context, cartItem *entities.CartItem) error {
	return r.db.WithContext(ctx).Create(cartItem).Error
}

func (r *cartRepository) GetCartItemByID(ctx context.Context, id string) (*entities.CartItem, error) {
	var cartItem entities.CartItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cartItem).Error; err != nil {
		return nil, err
	}
	return &cartItem, nil
}

func (r *cartRepository) GetCartItemByFood(ctx context.Context, userID string, foodItemID string) (*entities.CartItem, error) {
	var cartItem entities.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND food_item_id = ?", userID, foodItemID).
		First(&cartItem).Error; err != nil {
		return nil, err
	}
	return &cartItem, nil
}

func (r *cartRepository) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	var cartItems []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cartItems).Error; err != nil {
		return nil, err
	}
	return cartItems, nil
}

func (r *cartRepository) UpdateCartItemQuantity(ctx context.Context, id string, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&entities.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CartItem{}).Error
}

// ClearCart deletes every entry for the user. Clearing an already-empty cart
// affects zero rows and is not an error.
func (r *cartRepository) ClearCart(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.CartItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
