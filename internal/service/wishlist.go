package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
)

type WishlistService struct {
	repo        ports.WishlistRepo
	listingRepo ports.ListingRepo
}

func NewWishlistService(repo ports.WishlistRepo, listingRepo ports.ListingRepo) *WishlistService {
	return &WishlistService{
		repo:        repo,
		listingRepo: listingRepo,
	}
}

// Add is idempotent: adding a listing twice keeps a single entry.
func (s *WishlistService) Add(ctx context.Context, userID, listingID string) error {
	if userID == "" || listingID == "" {
		return fmt.Errorf("%w: user_id and listing_id are required", domain.ErrValidation)
	}

	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return fmt.Errorf("get listing: %w", err)
	}

	item := &domain.WishlistItem{
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Add(ctx, item); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}

	return nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, listingID string) error {
	if err := s.repo.Remove(ctx, userID, listingID); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}

func (s *WishlistService) Clear(ctx context.Context, userID string) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}
	return nil
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]*domain.WishlistItem, error) {
	return s.repo.List(ctx, userID)
}
