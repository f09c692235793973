package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem     = "food item added successfully"
	MessageSuccessDeleteFoodItem  = "food item deleted successfully"
	MessageSuccessGetFoodItems    = "food items retrieved successfully"
	MessageSuccessGetInventory    = "inventory retrieved successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"

	MessageFailedAddFoodItem     = "failed to add food item"
	MessageFailedDeleteFoodItem  = "failed to delete food item"
	MessageFailedGetFoodItems    = "failed to retrieve food items"
	MessageFailedGetInventory    = "failed to retrieve inventory"
	MessageFailedUploadFoodImage = "failed to upload food image"

	ErrFoodItemNotFound       = errors.New("food item not found")
	ErrInvalidExpiryDate      = errors.New("invalid expiry date")
	ErrInvalidManufactureDate = errors.New("invalid manufacture date")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrUnauthorizedAccess     = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name            string `json:"name" validate:"required"`
		Quantity        int    `json:"quantity" validate:"required,min=1"`
		ManufactureDate string `json:"manufacture_date" validate:"required"`
		ExpiryDate      string `json:"expiry_date" validate:"required"`
		ImageURL        string `json:"image_url" validate:"required"`
		Description     string `json:"description" validate:"omitempty"`
	}

	AddFoodItemResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Quantity        int       `json:"quantity"`
		Stock           int       `json:"stock"`
		ManufactureDate time.Time `json:"manufacture_date"`
		ExpiryDate      time.Time `json:"expiry_date"`
		DaysUntilExpiry int       `json:"days_until_expiry"`
		ImageURL        string    `json:"image_url"`
	}

	FoodItemResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		Name            string    `json:"name"`
		Quantity        int       `json:"quantity"`
		Stock           int       `json:"stock"`
		ManufactureDate time.Time `json:"manufacture_date"`
		ExpiryDate      time.Time `json:"expiry_date"`
		DaysUntilExpiry int       `json:"days_until_expiry"`
		Description     string    `json:"description,omitempty"`
		ImageURL        string    `json:"image_url,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
