package model

import (
	"database/sql"
	"time"

	"github.com/localboost/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func formatNullTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}

	return t.Time.Format(DefaultTimeLayout)
}

func ConvertUser(user *entity.User, includeSensitive bool) User {
	if user == nil {
		return User{}
	}

	u := User{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}

	if includeSensitive {
		u.ExternalID = user.ExternalID
		u.Role = string(user.Role)
	}

	return u
}

func ConvertSponsorProfile(profile *entity.SponsorProfile) SponsorProfile {
	if profile == nil {
		return SponsorProfile{}
	}

	return SponsorProfile{
		ID:            profile.ID,
		UserID:        profile.UserID,
		BusinessName:  profile.BusinessName,
		Industry:      profile.Industry,
		Description:   profile.Description,
		Location:      profile.Location,
		WebsiteURL:    profile.WebsiteURL,
		LogoURL:       profile.LogoURL,
		BudgetMin:     profile.BudgetMin,
		BudgetMax:     profile.BudgetMax,
		PaymentMethod: string(profile.PaymentMethod),
		Active:        profile.Active,
	}
}

func ConvertCreatorProfile(profile *entity.CreatorProfile) CreatorProfile {
	if profile == nil {
		return CreatorProfile{}
	}

	return CreatorProfile{
		ID:                 profile.ID,
		UserID:             profile.UserID,
		DisplayName:        profile.DisplayName,
		Bio:                profile.Bio,
		Specialties:        profile.Specialties,
		Communities:        profile.Communities,
		PortfolioURL:       profile.PortfolioURL,
		SocialLinks:        profile.SocialLinks,
		ReputationScore:    profile.ReputationScore,
		CompletedCampaigns: profile.CompletedCampaigns,
		PayoutMethod:       string(profile.PayoutMethod),
		WalletAddress:      profile.WalletAddress,
		Active:             profile.Active,
	}
}

func ConvertOffering(offering *entity.Offering) Offering {
	if offering == nil {
		return Offering{}
	}

	return Offering{
		ID:                offering.ID,
		CreatorProfileID:  offering.CreatorProfileID,
		Title:             offering.Title,
		Description:       offering.Description,
		DeliverableTypes:  offering.DeliverableTypes,
		BasePrice:         offering.BasePrice,
		EstimatedDuration: offering.EstimatedDuration,
		Active:            offering.Active,
	}
}

func ConvertCampaign(campaign *entity.Campaign) Campaign {
	if campaign == nil {
		return Campaign{}
	}

	return Campaign{
		ID:               campaign.ID,
		SponsorProfileID: campaign.SponsorProfileID,
		CreatorProfileID: campaign.CreatorProfileID.String,
		Title:            campaign.Title,
		Description:      campaign.Description,
		Status:           string(campaign.Status),
		StartDate:        formatNullTime(campaign.StartDate),
		EndDate:          formatNullTime(campaign.EndDate),
		CompensationType: string(campaign.CompensationType),
		CashAmount:       campaign.CashAmount,
		CreditAmount:     campaign.CreditAmount,
		Notes:            campaign.Notes,
	}
}

func ConvertDeliverable(deliverable *entity.Deliverable) Deliverable {
	if deliverable == nil {
		return Deliverable{}
	}

	return Deliverable{
		ID:                 deliverable.ID,
		CampaignID:         deliverable.CampaignID,
		Type:               string(deliverable.Type),
		Title:              deliverable.Title,
		Description:        deliverable.Description,
		Deadline:           formatNullTime(deliverable.Deadline),
		VerificationMethod: string(deliverable.VerificationMethod),
		Status:             string(deliverable.Status),
		CompletedAt:        formatNullTime(deliverable.CompletedAt),
	}
}

func ConvertProof(proof *entity.Proof) Proof {
	if proof == nil {
		return Proof{}
	}

	return Proof{
		ID:            proof.ID,
		DeliverableID: proof.DeliverableID,
		UserID:        proof.UserID,
		Type:          string(proof.Type),
		Content:       proof.Content,
		Metadata:      proof.Metadata,
		Status:        string(proof.Status),
		ReviewerID:    proof.ReviewerID.String,
		ReviewedAt:    formatNullTime(proof.ReviewedAt),
		ReviewNotes:   proof.ReviewNotes,
	}
}

func ConvertCredit(credit *entity.Credit) Credit {
	if credit == nil {
		return Credit{}
	}

	return Credit{
		ID:               credit.ID,
		SponsorProfileID: credit.SponsorProfileID,
		CampaignID:       credit.CampaignID.String,
		RecipientUserID:  credit.RecipientUserID.String,
		Title:            credit.Title,
		Description:      credit.Description,
		Value:            credit.Value,
		RedemptionRules:  credit.RedemptionRules,
		Status:           string(credit.Status),
		ExpiresAt:        formatNullTime(credit.ExpiresAt),
		RedeemedAt:       formatNullTime(credit.RedeemedAt),
	}
}
