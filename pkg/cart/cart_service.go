package cart

import (
	"Care-Crumbs/domain"
	"Care-Crumbs/entities"
	"Care-Crumbs/pkg/food"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) error
		UpdateCartItem(ctx context.Context, id string, req domain.UpdateCartItemRequest, userID string) error
		RemoveFromCart(ctx context.Context, id string, userID string) error
		GetCartItems(ctx context.Context, userID string) ([]domain.CartItemResponse, error)
		ClearCart(ctx context.Context, userID string) (int64, error)
	}

	cartService struct {
		cartRepository CartRepository
		foodRepository food.FoodRepository
	}
)

func NewCartService(cartRepository CartRepository, foodRepository food.FoodRepository) CartService {
	return &cartService{
		cartRepository: cartRepository,
		foodRepository: foodRepository,
	}
}

// AddToCart stages quantity units of a food item. Stock is consumed with a
// conditional decrement, so two requests racing on the same item can never
// drive stock negative.
func (s *cartService) AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) error {
	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	affected, err := s.foodRepository.AdjustStock(ctx, req.FoodItemID, -req.Quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInsufficientStock
	}

	existing, err := s.cartRepository.GetCartItemByFood(ctx, userID, req.FoodItemID)
	if err == nil {
		return s.cartRepository.UpdateCartItemQuantity(ctx, existing.ID.String(), existing.Quantity+req.Quantity)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	cartItem := &entities.CartItem{
		ID:         uuid.New(),
		UserID:     userUUID,
		FoodItemID: foodItem.ID,
		Name:       foodItem.Name,
		ImageURL:   foodItem.ImageURL,
		Quantity:   req.Quantity,
	}

	return s.cartRepository.CreateCartItem(ctx, cartItem)
}

// UpdateCartItem sets the entry to a new quantity. The difference is mirrored
// onto the food item's stock: raising the cart quantity consumes stock,
// lowering it restores stock. A target of zero or less removes the entry.
func (s *cartService) UpdateCartItem(ctx context.Context, id string, req domain.UpdateCartItemRequest, userID string) error {
	if req.Quantity <= 0 {
		return s.RemoveFromCart(ctx, id, userID)
	}

	cartItem, err := s.cartRepository.GetCartItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	if cartItem.UserID.String() != userID {
		return domain.ErrCartItemNotFound
	}

	diff := req.Quantity - cartItem.Quantity
	if diff != 0 {
		affected, err := s.foodRepository.AdjustStock(ctx, cartItem.FoodItemID.String(), -diff)
		if err != nil {
			return err
		}
		if affected == 0 && diff > 0 {
			return domain.ErrInsufficientStock
		}
	}

	return s.cartRepository.UpdateCartItemQuantity(ctx, id, req.Quantity)
}

func (s *cartService) RemoveFromCart(ctx context.Context, id string, userID string) error {
	cartItem, err := s.cartRepository.GetCartItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	if cartItem.UserID.String() != userID {
		return domain.ErrCartItemNotFound
	}

	// Restore the reserved stock. The referenced item may be gone if the
	// owner deleted it; the entry is removed regardless.
	if _, err := s.foodRepository.AdjustStock(ctx, cartItem.FoodItemID.String(), cartItem.Quantity); err != nil {
		return err
	}

	return s.cartRepository.DeleteCartItem(ctx, id)
}

func (s *cartService) GetCartItems(ctx context.Context, userID string) ([]domain.CartItemResponse, error) {
	cartItems, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CartItemResponse, 0, len(cartItems))
	for _, item := range cartItems {
		response = append(response, domain.CartItemResponse{
			ID:         item.ID.String(),
			FoodItemID: item.FoodItemID.String(),
			Name:       item.Name,
			ImageURL:   item.ImageURL,
			Quantity:   item.Quantity,
			CreatedAt:  item.CreatedAt,
		})
	}

	return response, nil
}

// ClearCart empties the cart without restoring stock. It runs after a
// donation, where the staged stock has been permanently consumed.
func (s *cartService) ClearCart(ctx context.Context, userID string) (int64, error) {
	return s.cartRepository.ClearCart(ctx, userID)
}
