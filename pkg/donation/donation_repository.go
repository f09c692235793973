package donation

import (
	"Care-Crumbs/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		// CreateDonationRecords persists the whole batch in one transaction;
		// either every record lands in the ledger or none do.
		CreateDonationRecords(ctx context.Context, records []*entities.DonatedFood) error

		// DonateFoodItem records a single-item donation and removes the donated
		// item from inventory, atomically. Cart entries referencing the item are
		// removed with it.
		DonateFoodItem(ctx context.Context, record *entities.DonatedFood, foodItemID string) error

		GetDonatedFood(ctx context.Context, userID string) ([]*entities.DonatedFood, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonationRecords(ctx context.Context, records []*entities.DonatedFood) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *donationRepository) DonateFoodItem(ctx context.Context, record *entities.DonatedFood, foodItemID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		if err := tx.Where("food_item_id = ?", foodItemID).Delete(&entities.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", foodItemID).Delete(&entities.FoodItem{}).Error
	})
}

func (r *donationRepository) GetDonatedFood(ctx context.Context, userID string) ([]*entities.DonatedFood, error) {
	var records []*entities.DonatedFood
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("donation_date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
