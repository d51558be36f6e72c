package domain

import (
	"testing"

	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/errorx"
	"github.com/localboost/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestOfferingDomain() *offeringDomain {
	return NewOfferingDomain(
		repository.NewOfferingRepository(),
		repository.NewCreatorProfileRepository(),
		repository.NewUserRepository(),
	)
}

func Test_offeringDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestOfferingDomain()

	creatorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := domain.Create(creatorCtx, &model.CreateOfferingRequest{
		CreatorProfileID: testutil.CreatorProfile1.ID,
		Title:            "Event coverage",
		DeliverableTypes: []string{"event_appearance", "content_post"},
		BasePrice:        250,
	})
	require.NoError(t, err)

	got, err := domain.Get(ctx, &model.GetOfferingRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, "Event coverage", got.Title)
}

func Test_offeringDomain_Create_InvalidDeliverableType(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestOfferingDomain()

	creatorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := domain.Create(creatorCtx, &model.CreateOfferingRequest{
		CreatorProfileID: testutil.CreatorProfile1.ID,
		Title:            "Event coverage",
		DeliverableTypes: []string{"skywriting"},
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_offeringDomain_Delete_HidesFromList(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestOfferingDomain()

	list, err := domain.GetList(ctx, &model.GetListOfferingRequest{
		CreatorProfileID: testutil.CreatorProfile1.ID,
	})
	require.NoError(t, err)
	require.Len(t, list.Offerings, 1)

	creatorCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err = domain.Delete(creatorCtx, &model.DeleteOfferingRequest{ID: testutil.Offering1.ID})
	require.NoError(t, err)

	list, err = domain.GetList(ctx, &model.GetListOfferingRequest{
		CreatorProfileID: testutil.CreatorProfile1.ID,
	})
	require.NoError(t, err)
	require.Empty(t, list.Offerings)
}

func Test_offeringDomain_Update_NotOwner(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestOfferingDomain()

	strangerCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err := domain.Update(strangerCtx, &model.UpdateOfferingRequest{
		ID:    testutil.Offering1.ID,
		Title: "Hijacked",
	})

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}
