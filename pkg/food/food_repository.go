package food

import (
	"Care-Crumbs/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetInventory(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		GetAvailableFoodItems(ctx context.Context) ([]*entities.FoodItem, error)

		// AdjustStock applies delta to the item's stock in a single conditional
		// update, refusing any change that would leave stock outside
		// [0, quantity]. Returns the number of rows changed: 0 means the item
		// is missing or the adjustment would violate the invariant.
		AdjustStock(ctx context.Context, id string, delta int) (int64, error)

		DeleteExpiredFoodItems(ctx context.Context, now time.Time) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

// DeleteFoodItem removes the item together with any cart entries that still
// reference it, so deleting inventory never leaves dangling cart rows.
func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_item_id = ?", id).Delete(&entities.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.FoodItem{}).Error
	})
}

func (r *foodRepository) GetInventory(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetAvailableFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("expiry_date > ? AND stock > 0", time.Now()).
		Order("created_at DESC").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) AdjustStock(ctx context.Context, id string, delta int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Where("id = ? AND stock + ? >= 0 AND stock + ? <= quantity", id, delta, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *foodRepository) DeleteExpiredFoodItems(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expiry_date <= ?", now).
		Delete(&entities.FoodItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
