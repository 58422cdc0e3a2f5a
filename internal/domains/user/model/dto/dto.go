package dto

import (
	"flightbook/internal/domains/user/model"
	gDto "flightbook/shared/dto"
)

type ProfileResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Age        *int    `json:"age,omitempty"`
	ProfilePic *string `json:"profilePic,omitempty"`
	Role       string  `json:"role"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.Name = user.Name
	r.Phone = user.Phone
	r.Age = user.Age
	r.ProfilePic = user.ProfilePic
	r.Role = user.Role
	r.Metadata.FromModel(user.Metadata)
}

// UpdateProfileRequest only touches the user row. Existing booking snapshots keep the old values.
type UpdateProfileRequest struct {
	Name  *string `db:"name"  json:"name,omitempty"  validate:"omitempty,min=2,max=100"`
	Phone *string `db:"phone" json:"phone,omitempty" validate:"omitempty,max=20"`
	Age   *int    `db:"age"   json:"age,omitempty"   validate:"omitempty,gte=0,lte=130"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil && r.Age == nil
}

type UpdateProfilePicRequest struct {
	ProfilePic string `db:"profile_pic"`
}

type UploadPhotoRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType" validate:"required,oneof=image/png image/jpeg image/webp"`
	Size        int64  `json:"size"        validate:"gt=0,lte=5242880"`
}

type UploadPhotoResponse struct {
	ProfilePic string `json:"profilePic"`
}
