package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddToCart      = "item added to cart successfully"
	MessageSuccessUpdateCartItem = "cart item updated successfully"
	MessageSuccessRemoveFromCart = "item removed from cart successfully"
	MessageSuccessGetCartItems   = "cart items retrieved successfully"
	MessageSuccessClearCart      = "cart cleared successfully"

	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveFromCart = "failed to remove item from cart"
	MessageFailedGetCartItems   = "failed to retrieve cart items"
	MessageFailedClearCart      = "failed to clear cart"

	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
)

type (
	AddToCartRequest struct {
		FoodItemID string `json:"food_item_id" validate:"required,uuid"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity"`
	}

	CartItemResponse struct {
		ID         string    `json:"id"`
		FoodItemID string    `json:"food_item_id"`
		Name       string    `json:"name"`
		ImageURL   string    `json:"image_url,omitempty"`
		Quantity   int       `json:"quantity"`
		CreatedAt  time.Time `json:"created_at"`
	}

	ClearCartResponse struct {
		DeletedCount int64 `json:"deleted_count"`
	}
)
