package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type GlobalRoleVerifier struct {
	userRepo repository.UserRepository
}

func NewGlobalRoleVerifier(userRepo repository.UserRepository) *GlobalRoleVerifier {
	return &GlobalRoleVerifier{userRepo: userRepo}
}

func (verifier *GlobalRoleVerifier) Verify(ctx context.Context, requiredRoles ...entity.GlobalRole) error {
	userID := xcontext.RequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if !slices.Contains(requiredRoles, u.Role) {
		return errors.New("user role does not have permission")
	}

	return nil
}

// SponsorOwnershipVerifier checks that the requesting user owns a sponsor
// profile. Admins pass unconditionally.
type SponsorOwnershipVerifier struct {
	sponsorProfileRepo repository.SponsorProfileRepository
	userRepo           repository.UserRepository
}

func NewSponsorOwnershipVerifier(
	sponsorProfileRepo repository.SponsorProfileRepository,
	userRepo repository.UserRepository,
) *SponsorOwnershipVerifier {
	return &SponsorOwnershipVerifier{
		sponsorProfileRepo: sponsorProfileRepo,
		userRepo:           userRepo,
	}
}

func (verifier *SponsorOwnershipVerifier) Verify(ctx context.Context, sponsorProfileID string) error {
	userID := xcontext.RequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if slices.Contains(entity.GlobalAdminRoles, u.Role) {
		return nil
	}

	profile, err := verifier.sponsorProfileRepo.GetByID(ctx, sponsorProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("sponsor profile not found")
		}

		return err
	}

	if profile.UserID != userID {
		return errors.New("user does not own this sponsor profile")
	}

	return nil
}

type CreatorOwnershipVerifier struct {
	creatorProfileRepo repository.CreatorProfileRepository
	userRepo           repository.UserRepository
}

func NewCreatorOwnershipVerifier(
	creatorProfileRepo repository.CreatorProfileRepository,
	userRepo repository.UserRepository,
) *CreatorOwnershipVerifier {
	return &CreatorOwnershipVerifier{
		creatorProfileRepo: creatorProfileRepo,
		userRepo:           userRepo,
	}
}

func (verifier *CreatorOwnershipVerifier) Verify(ctx context.Context, creatorProfileID string) error {
	userID := xcontext.RequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if slices.Contains(entity.GlobalAdminRoles, u.Role) {
		return nil
	}

	profile, err := verifier.creatorProfileRepo.GetByID(ctx, creatorProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("creator profile not found")
		}

		return err
	}

	if profile.UserID != userID {
		return errors.New("user does not own this creator profile")
	}

	return nil
}
