package food

import (
	"Care-Crumbs/domain"
	"Care-Crumbs/entities"
	"Care-Crumbs/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.AddFoodItemResponse, error)
		GetInventory(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetAvailableFoodItems(ctx context.Context) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error

		RunExpirySweeper(ctx context.Context, interval time.Duration)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.AddFoodItemResponse, error) {
	manufactureDate, err := time.Parse("2006-01-02", req.ManufactureDate)
	if err != nil {
		return domain.AddFoodItemResponse{}, domain.ErrInvalidManufactureDate
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.AddFoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.AddFoodItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddFoodItemResponse{}, domain.ErrParseUUID
	}

	foodItem := &entities.FoodItem{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            req.Name,
		Quantity:        req.Quantity,
		Stock:           req.Quantity,
		ManufactureDate: manufactureDate,
		ExpiryDate:      expiryDate,
		DaysUntilExpiry: daysUntilExpiry(expiryDate),
		Description:     req.Description,
		ImageURL:        req.ImageURL,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.AddFoodItemResponse{}, err
	}

	return domain.AddFoodItemResponse{
		ID:              foodItem.ID.String(),
		Name:            foodItem.Name,
		Quantity:        foodItem.Quantity,
		Stock:           foodItem.Stock,
		ManufactureDate: foodItem.ManufactureDate,
		ExpiryDate:      foodItem.ExpiryDate,
		DaysUntilExpiry: foodItem.DaysUntilExpiry,
		ImageURL:        foodItem.ImageURL,
	}, nil
}

func (s *foodService) GetInventory(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetInventory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(foodItems), nil
}

// GetAvailableFoodItems is the cross-user catalog: every unexpired item that
// still has stock, regardless of owner.
func (s *foodService) GetAvailableFoodItems(ctx context.Context) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetAvailableFoodItems(ctx)
	if err != nil {
		return nil, err
	}
	return toFoodItemResponses(foodItems), nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

// RunExpirySweeper periodically purges expired inventory. It replaces the
// per-request TTL index checks the legacy system performed and runs until ctx
// is cancelled.
func (s *foodService) RunExpirySweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.foodRepository.DeleteExpiredFoodItems(ctx, time.Now())
			if err != nil {
				log.Printf("expiry sweep failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("expiry sweep removed %d food items", deleted)
			}
		}
	}
}

func daysUntilExpiry(expiryDate time.Time) int {
	days := int(time.Until(expiryDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:              item.ID.String(),
		UserID:          item.UserID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Stock:           item.Stock,
		ManufactureDate: item.ManufactureDate,
		ExpiryDate:      item.ExpiryDate,
		DaysUntilExpiry: item.DaysUntilExpiry,
		Description:     item.Description,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}

func toFoodItemResponses(items []*entities.FoodItem) []domain.FoodItemResponse {
	response := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toFoodItemResponse(item))
	}
	return response
}
