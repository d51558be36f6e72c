package entity

import (
	"testing"

	"github.com/localboost/backend/pkg/enum"
	"github.com/stretchr/testify/require"
)

func Test_CheckCampaignTransition(t *testing.T) {
	require.NoError(t, CheckCampaignTransition(CampaignDraft, CampaignActive))
	require.NoError(t, CheckCampaignTransition(CampaignDraft, CampaignCancelled))
	require.NoError(t, CheckCampaignTransition(CampaignActive, CampaignCompleted))
	require.NoError(t, CheckCampaignTransition(CampaignActive, CampaignDisputed))
	require.NoError(t, CheckCampaignTransition(CampaignActive, CampaignCancelled))

	require.Error(t, CheckCampaignTransition(CampaignDraft, CampaignCompleted))
	require.Error(t, CheckCampaignTransition(CampaignCompleted, CampaignActive))
	require.Error(t, CheckCampaignTransition(CampaignDisputed, CampaignActive))
	require.Error(t, CheckCampaignTransition(CampaignCancelled, CampaignDraft))
	require.Error(t, CheckCampaignTransition(CampaignStatus("bogus"), CampaignActive))
}

func Test_CheckDeliverableTransition(t *testing.T) {
	require.NoError(t, CheckDeliverableTransition(DeliverablePending, DeliverableInProgress))
	require.NoError(t, CheckDeliverableTransition(DeliverablePending, DeliverableSubmitted))
	require.NoError(t, CheckDeliverableTransition(DeliverableInProgress, DeliverableSubmitted))
	require.NoError(t, CheckDeliverableTransition(DeliverableSubmitted, DeliverableVerified))
	require.NoError(t, CheckDeliverableTransition(DeliverableSubmitted, DeliverableRejected))
	require.NoError(t, CheckDeliverableTransition(DeliverableRejected, DeliverablePending))
	require.NoError(t, CheckDeliverableTransition(DeliverableRejected, DeliverableSubmitted))

	require.Error(t, CheckDeliverableTransition(DeliverableVerified, DeliverableSubmitted))
	require.Error(t, CheckDeliverableTransition(DeliverableVerified, DeliverableRejected))
	require.Error(t, CheckDeliverableTransition(DeliverableInProgress, DeliverableVerified))
}

func Test_CheckProofTransition(t *testing.T) {
	require.NoError(t, CheckProofTransition(ProofPending, ProofApproved))
	require.NoError(t, CheckProofTransition(ProofPending, ProofRejected))

	require.Error(t, CheckProofTransition(ProofApproved, ProofRejected))
	require.Error(t, CheckProofTransition(ProofRejected, ProofApproved))
	require.Error(t, CheckProofTransition(ProofRejected, ProofPending))
}

func Test_CheckCreditTransition(t *testing.T) {
	require.NoError(t, CheckCreditTransition(CreditActive, CreditRedeemed))
	require.NoError(t, CheckCreditTransition(CreditActive, CreditExpired))
	require.NoError(t, CheckCreditTransition(CreditActive, CreditCancelled))

	require.Error(t, CheckCreditTransition(CreditRedeemed, CreditActive))
	require.Error(t, CheckCreditTransition(CreditExpired, CreditRedeemed))
	require.Error(t, CheckCreditTransition(CreditCancelled, CreditActive))
}

func Test_statusEnumRegistration(t *testing.T) {
	status, err := enum.ToEnum[CampaignStatus]("active")
	require.NoError(t, err)
	require.Equal(t, CampaignActive, status)

	_, err = enum.ToEnum[CampaignStatus]("archived")
	require.Error(t, err)

	proofType, err := enum.ToEnum[ProofType]("qr_scan")
	require.NoError(t, err)
	require.Equal(t, ProofQRScan, proofType)
}

func Test_CompensationType(t *testing.T) {
	require.True(t, CompensationCash.IncludesCash())
	require.False(t, CompensationCash.IncludesCredit())
	require.True(t, CompensationCredit.IncludesCredit())
	require.False(t, CompensationCredit.IncludesCash())
	require.True(t, CompensationHybrid.IncludesCash())
	require.True(t, CompensationHybrid.IncludesCredit())
}
