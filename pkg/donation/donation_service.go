package donation

import (
	"Care-Crumbs/domain"
	"Care-Crumbs/entities"
	"Care-Crumbs/pkg/cart"
	"Care-Crumbs/pkg/food"
	"Care-Crumbs/pkg/user"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		DonateCart(ctx context.Context, req domain.DonateCartRequest, userID string) (domain.DonateCartResponse, error)
		DonateSingleItem(ctx context.Context, req domain.DonateSingleItemRequest, userID string) (domain.DonateSingleItemResponse, error)
		GetDonatedFood(ctx context.Context, userID string) ([]domain.DonatedFoodResponse, error)
		GenerateDonationReport(ctx context.Context, userID string) ([]byte, error)
	}

	donationService struct {
		donationRepository DonationRepository
		cartRepository     cart.CartRepository
		foodRepository     food.FoodRepository
		userRepository     user.UserRepository
	}
)

func NewDonationService(
	donationRepository DonationRepository,
	cartRepository cart.CartRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		cartRepository:     cartRepository,
		foodRepository:     foodRepository,
		userRepository:     userRepository,
	}
}

// DonateCart turns every cart entry into a ledger record and clears the cart.
// Stock is not touched here: it was already consumed when entries were added
// to the cart. Records are written in one transaction; a failed cart clear
// leaves them intact and is safe to retry since clearing an empty cart is a
// no-op.
func (s *donationService) DonateCart(ctx context.Context, req domain.DonateCartRequest, userID string) (domain.DonateCartResponse, error) {
	cartItems, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		return domain.DonateCartResponse{}, err
	}

	if len(cartItems) == 0 {
		return domain.DonateCartResponse{}, domain.ErrEmptyCart
	}

	if req.City == "" || req.Area == "" || req.Foundation == "" {
		return domain.DonateCartResponse{}, domain.ErrMissingDonationDetails
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DonateCartResponse{}, domain.ErrParseUUID
	}

	donorName := s.resolveDonorName(ctx, userID)
	location := joinLocation(req.City, req.Area)
	donationDate := time.Now()

	records := make([]*entities.DonatedFood, 0, len(cartItems))
	for _, item := range cartItems {
		foodItemID := item.FoodItemID
		records = append(records, &entities.DonatedFood{
			ID:             uuid.New(),
			UserID:         userUUID,
			DonorName:      donorName,
			Name:           item.Name,
			Quantity:       item.Quantity,
			ImageURL:       item.ImageURL,
			DonationDate:   donationDate,
			Location:       location,
			Organization:   req.Foundation,
			Notes:          req.Notes,
			OriginalFoodID: &foodItemID,
		})
	}

	if err := s.donationRepository.CreateDonationRecords(ctx, records); err != nil {
		return domain.DonateCartResponse{}, err
	}

	if _, err := s.cartRepository.ClearCart(ctx, userID); err != nil {
		// The donation is recorded; the cart can be cleared on retry.
		log.Printf("cart clear after donation failed for user %s: %v", userID, err)
	}

	donationIDs := make([]string, 0, len(records))
	for _, record := range records {
		donationIDs = append(donationIDs, record.ID.String())
	}

	return domain.DonateCartResponse{
		DonationIDs: donationIDs,
		Location:    location,
	}, nil
}

// DonateSingleItem donates one inventory item directly, bypassing the cart.
// The item is removed from inventory outright rather than having its stock
// zeroed.
func (s *donationService) DonateSingleItem(ctx context.Context, req domain.DonateSingleItemRequest, userID string) (domain.DonateSingleItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DonateSingleItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.DonateSingleItemResponse{}, err
	}

	if foodItem.UserID.String() != userID {
		return domain.DonateSingleItemResponse{}, domain.ErrFoodItemNotFound
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DonateSingleItemResponse{}, domain.ErrParseUUID
	}

	foodItemID := foodItem.ID
	record := &entities.DonatedFood{
		ID:             uuid.New(),
		UserID:         userUUID,
		DonorName:      s.resolveDonorName(ctx, userID),
		Name:           foodItem.Name,
		Quantity:       foodItem.Quantity,
		ImageURL:       foodItem.ImageURL,
		DonationDate:   time.Now(),
		Location:       req.Location,
		Organization:   req.Organization,
		Notes:          req.Notes,
		OriginalFoodID: &foodItemID,
	}

	if err := s.donationRepository.DonateFoodItem(ctx, record, req.FoodItemID); err != nil {
		return domain.DonateSingleItemResponse{}, err
	}

	return domain.DonateSingleItemResponse{DonationID: record.ID.String()}, nil
}

func (s *donationService) GetDonatedFood(ctx context.Context, userID string) ([]domain.DonatedFoodResponse, error) {
	records, err := s.donationRepository.GetDonatedFood(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DonatedFoodResponse, 0, len(records))
	for _, record := range records {
		response = append(response, domain.DonatedFoodResponse{
			ID:           record.ID.String(),
			DonorName:    record.DonorName,
			Name:         record.Name,
			Quantity:     record.Quantity,
			ImageURL:     record.ImageURL,
			DonationDate: record.DonationDate,
			Location:     record.Location,
			Organization: record.Organization,
			Notes:        record.Notes,
			CreatedAt:    record.CreatedAt,
		})
	}

	return response, nil
}

func (s *donationService) GenerateDonationReport(ctx context.Context, userID string) ([]byte, error) {
	records, err := s.donationRepository.GetDonatedFood(ctx, userID)
	if err != nil {
		return nil, err
	}

	donorName := s.resolveDonorName(ctx, userID)
	return renderDonationReport(donorName, records)
}

func (s *donationService) resolveDonorName(ctx context.Context, userID string) string {
	donor, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil || donor.Name == "" {
		return "Anonymous"
	}
	return donor.Name
}

// joinLocation combines city and area into a display string, dropping the
// separator when either part is blank.
func joinLocation(city, area string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if area != "" {
		parts = append(parts, area)
	}
	return strings.Join(parts, ", ")
}
