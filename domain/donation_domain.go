package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDonation  = "donation processed successfully"
	MessageSuccessDonateFoodItem  = "food donated successfully"
	MessageSuccessGetDonations    = "donated food retrieved successfully"
	MessageSuccessDonationReport  = "donation report generated successfully"

	MessageFailedCreateDonation = "failed to process donation"
	MessageFailedDonateFoodItem = "failed to donate food"
	MessageFailedGetDonations   = "failed to retrieve donated food"
	MessageFailedDonationReport = "failed to generate donation report"

	ErrEmptyCart              = errors.New("cart is empty")
	ErrDonationNotFound       = errors.New("donation not found")
	ErrMissingDonationDetails = errors.New("city, area and foundation are required")
)

type (
	DonateCartRequest struct {
		City       string `json:"city" validate:"required"`
		Area       string `json:"area" validate:"required"`
		Foundation string `json:"foundation" validate:"required"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	DonateCartResponse struct {
		DonationIDs []string `json:"donation_ids"`
		Location    string   `json:"location"`
	}

	DonateSingleItemRequest struct {
		FoodItemID   string `json:"food_item_id" validate:"required,uuid"`
		Organization string `json:"organization" validate:"omitempty"`
		Location     string `json:"location" validate:"omitempty"`
		Notes        string `json:"notes" validate:"omitempty"`
	}

	DonateSingleItemResponse struct {
		DonationID string `json:"donation_id"`
	}

	DonatedFoodResponse struct {
		ID           string    `json:"id"`
		DonorName    string    `json:"donor_name"`
		Name         string    `json:"name"`
		Quantity     int       `json:"quantity"`
		ImageURL     string    `json:"image_url,omitempty"`
		DonationDate time.Time `json:"donation_date"`
		Location     string    `json:"location"`
		Organization string    `json:"organization"`
		Notes        string    `json:"notes,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
