package testutil

import (
	"context"
	"database/sql"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/repository"
)

// Fixture users. User1 owns the sponsor profile, User2 owns the creator
// profile, User3 has no profile at all.
var (
	User1 = entity.User{
		Base:        entity.Base{ID: "user1"},
		ExternalID:  "external-user1",
		Username:    "brewandbloom",
		DisplayName: "Brew & Bloom",
		Role:        entity.RoleUser,
	}

	User2 = entity.User{
		Base:        entity.Base{ID: "user2"},
		ExternalID:  "external-user2",
		Username:    "janedoe",
		DisplayName: "Jane Doe",
		Role:        entity.RoleUser,
	}

	User3 = entity.User{
		Base:        entity.Base{ID: "user3"},
		ExternalID:  "external-user3",
		Username:    "stranger",
		DisplayName: "Stranger",
		Role:        entity.RoleUser,
	}

	AdminUser = entity.User{
		Base:        entity.Base{ID: "admin"},
		ExternalID:  "external-admin",
		Username:    "admin",
		DisplayName: "Admin",
		Role:        entity.RoleAdmin,
	}
)

var (
	SponsorProfile1 = entity.SponsorProfile{
		Base:          entity.Base{ID: "sponsor_profile1"},
		UserID:        User1.ID,
		BusinessName:  "Brew & Bloom Cafe",
		Industry:      "hospitality",
		Location:      "Springfield",
		BudgetMin:     100,
		BudgetMax:     1000,
		PaymentMethod: entity.PaymentTraditional,
		Active:        true,
	}

	CreatorProfile1 = entity.CreatorProfile{
		Base:            entity.Base{ID: "creator_profile1"},
		UserID:          User2.ID,
		DisplayName:     "Jane Doe",
		Bio:             "Local food photographer",
		Specialties:     []string{"photography", "short-form video"},
		Communities:     []string{"springfield-foodies"},
		ReputationScore: 50,
		PayoutMethod:    entity.PaymentWallet,
		Active:          true,
	}

	Offering1 = entity.Offering{
		Base:              entity.Base{ID: "offering1"},
		CreatorProfileID:  CreatorProfile1.ID,
		Title:             "Instagram content bundle",
		Description:       "Three posts and one reel",
		DeliverableTypes:  []string{"content_post"},
		BasePrice:         150,
		EstimatedDuration: "2 weeks",
		Active:            true,
	}
)

// Campaign1 is active and assigned to CreatorProfile1 with two pending
// deliverables. Campaign2 is still a draft without a creator.
var (
	Campaign1 = entity.Campaign{
		Base:             entity.Base{ID: "campaign1"},
		SponsorProfileID: SponsorProfile1.ID,
		CreatorProfileID: sql.NullString{Valid: true, String: CreatorProfile1.ID},
		Title:            "Summer menu launch",
		Status:           entity.CampaignActive,
		CompensationType: entity.CompensationCash,
		CashAmount:       500,
	}

	Campaign2 = entity.Campaign{
		Base:             entity.Base{ID: "campaign2"},
		SponsorProfileID: SponsorProfile1.ID,
		Title:            "Fall opening party",
		Status:           entity.CampaignDraft,
		CompensationType: entity.CompensationCredit,
		CreditAmount:     200,
	}

	Deliverable1 = entity.Deliverable{
		Base:               entity.Base{ID: "deliverable1"},
		CampaignID:         Campaign1.ID,
		Type:               entity.DeliverableContentPost,
		Title:              "Launch announcement post",
		VerificationMethod: entity.VerificationManualUpload,
		Status:             entity.DeliverablePending,
	}

	Deliverable2 = entity.Deliverable{
		Base:               entity.Base{ID: "deliverable2"},
		CampaignID:         Campaign1.ID,
		Type:               entity.DeliverableContentPost,
		Title:              "Behind the scenes reel",
		VerificationMethod: entity.VerificationLinkSubmission,
		Status:             entity.DeliverablePending,
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertProfiles(ctx)
	InsertOfferings(ctx)
	InsertCampaigns(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3, AdminUser} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func InsertProfiles(ctx context.Context) {
	sponsorProfile := SponsorProfile1
	if err := repository.NewSponsorProfileRepository().Create(ctx, &sponsorProfile); err != nil {
		panic(err)
	}

	creatorProfile := CreatorProfile1
	if err := repository.NewCreatorProfileRepository().Create(ctx, &creatorProfile); err != nil {
		panic(err)
	}
}

func InsertOfferings(ctx context.Context) {
	offering := Offering1
	if err := repository.NewOfferingRepository().Create(ctx, &offering); err != nil {
		panic(err)
	}
}

func InsertCampaigns(ctx context.Context) {
	campaignRepo := repository.NewCampaignRepository()
	for _, campaign := range []entity.Campaign{Campaign1, Campaign2} {
		campaign := campaign
		if err := campaignRepo.Create(ctx, &campaign); err != nil {
			panic(err)
		}
	}

	deliverableRepo := repository.NewDeliverableRepository()
	for _, deliverable := range []entity.Deliverable{Deliverable1, Deliverable2} {
		deliverable := deliverable
		if err := deliverableRepo.Create(ctx, &deliverable); err != nil {
			panic(err)
		}
	}
}
