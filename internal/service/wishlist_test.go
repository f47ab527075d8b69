package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_Add(t *testing.T) {
	repo := mocks.NewMockWishlistRepo(t)
	listings := mocks.NewMockListingRepo(t)
	svc := NewWishlistService(repo, listings)

	listings.EXPECT().GetByID(mock.Anything, "l1").Return(&domain.Listing{ID: "l1"}, nil)
	repo.EXPECT().Add(mock.Anything, mock.MatchedBy(func(i *domain.WishlistItem) bool {
		return i.UserID == "u1" && i.ListingID == "l1"
	})).Return(nil)

	require.NoError(t, svc.Add(context.Background(), "u1", "l1"))
}

func TestWishlistService_Add_UnknownListing(t *testing.T) {
	repo := mocks.NewMockWishlistRepo(t)
	listings := mocks.NewMockListingRepo(t)
	svc := NewWishlistService(repo, listings)

	listings.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrListingNotFound)

	err := svc.Add(context.Background(), "u1", "missing")

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestWishlistService_Add_Validation(t *testing.T) {
	svc := NewWishlistService(nil, nil)

	assert.ErrorIs(t, svc.Add(context.Background(), "", "l1"), domain.ErrValidation)
}

func TestWishlistService_RemoveAndClear(t *testing.T) {
	repo := mocks.NewMockWishlistRepo(t)
	svc := NewWishlistService(repo, nil)

	repo.EXPECT().Remove(mock.Anything, "u1", "l1").Return(nil)
	repo.EXPECT().Clear(mock.Anything, "u1").Return(errors.New("db error"))

	assert.NoError(t, svc.Remove(context.Background(), "u1", "l1"))
	assert.Error(t, svc.Clear(context.Background(), "u1"))
}
