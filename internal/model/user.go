package model

type GetMeRequest struct{}

type GetMeResponse User

type UpdateUserRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type UpdateUserResponse struct{}

type UploadAvatarRequest struct{}

type UploadAvatarResponse struct {
	URL string `json:"url"`
}
