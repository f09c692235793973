package handlers

import (
	"errors"

	"Care-Crumbs/domain"
	"Care-Crumbs/internal/api/presenters"
	"Care-Crumbs/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		DonateCart(c *fiber.Ctx) error
		DonateSingleItem(c *fiber.Ctx) error
		GetDonatedFood(c *fiber.Ctx) error
		DownloadDonationReport(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) DonateCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DonateCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.DonateCart(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) DonateSingleItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DonateSingleItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDonateFoodItem, err)
	}

	res, err := h.donationService.DonateSingleItem(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDonateFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDonateFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessDonateFoodItem)
}

func (h *donationHandler) GetDonatedFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	records, err := h.donationService.GetDonatedFood(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, records, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) DownloadDonationReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	report, err := h.donationService.GenerateDonationReport(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDonationReport, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="donation-report.pdf"`)
	return c.Status(fiber.StatusOK).Send(report)
}
