package domain

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/localboost/backend/internal/entity"
	"github.com/localboost/backend/internal/model"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/testutil"
	"github.com/localboost/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestUserDomain() *userDomain {
	return NewUserDomain(
		repository.NewUserRepository(),
		repository.NewFileRepository(),
		&testutil.MockStorage{},
	)
}

func Test_userDomain_GetMe(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestUserDomain()

	userCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := domain.GetMe(userCtx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, resp.ID)
	require.Equal(t, testutil.User1.Username, resp.Username)
	require.Equal(t, testutil.User1.ExternalID, resp.ExternalID)
}

func Test_userDomain_Update(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestUserDomain()

	userCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := domain.Update(userCtx, &model.UpdateUserRequest{DisplayName: "Fresh Name"})
	require.NoError(t, err)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, "Fresh Name", user.DisplayName)
	require.Equal(t, testutil.User1.Username, user.Username)
}

func Test_userDomain_UploadAvatar(t *testing.T) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(fw, image.NewRGBA(image.Rect(0, 0, 64, 64))))
	require.NoError(t, writer.Close())

	request := httptest.NewRequest("POST", "/uploadAvatar", body)
	request.Header.Add("Content-Type", writer.FormDataContentType())

	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	userCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	userCtx = testutil.NewMockContextWith(userCtx, request)

	domain := newTestUserDomain()
	resp, err := domain.UploadAvatar(userCtx, &model.UploadAvatarRequest{})
	require.NoError(t, err)
	require.Equal(t, "512x512-avatar.png", resp.URL)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, resp.URL, user.AvatarURL)

	var count int64
	err = xcontext.DB(ctx).Model(&entity.File{}).Count(&count).Error
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}
