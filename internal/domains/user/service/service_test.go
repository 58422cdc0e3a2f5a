package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flightbook/config"
	"flightbook/infras/otel/mocks"
	s3Mocks "flightbook/infras/s3/mocks"
	userMocks "flightbook/internal/domains/user/mocks"
	"flightbook/internal/domains/user/model"
	"flightbook/internal/domains/user/model/dto"
	"flightbook/internal/domains/user/service"
	cacheMocks "flightbook/shared/cache/mocks"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

type fixture struct {
	repo    *userMocks.MockUser
	storage *s3Mocks.MockS3
	cache   *cacheMocks.MockRedisCache
	svc     service.User
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    userMocks.NewMockUser(ctrl),
		storage: s3Mocks.NewMockS3(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.storage, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestUserService_Profile(t *testing.T) {
	user := model.User{
		ID:    "user-1",
		Email: "jane@example.com",
		Name:  "Jane",
		Phone: stringPtr("+62811"),
		Role:  constant.RoleUser,
	}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), "user:get:user-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res := value.(*dto.ProfileResponse)
						res.FromModel(user)

						return nil
					})
			},
		},
		{
			name: "cache miss loads from repository",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.cache.EXPECT().Save(gomock.Any(), "user:get:user-1", gomock.Any(), 60).Return(nil).AnyTimes()
			},
		},
		{
			name: "user not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Profile(context.Background(), "user-1")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", res.ID)
			assert.Equal(t, "Jane", res.Name)
			assert.Equal(t, "+62811", *res.Phone)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	user := model.User{ID: "user-1", Email: "jane@example.com", Name: "Jane", Role: constant.RoleUser}

	tests := []struct {
		name      string
		req       dto.UpdateProfileRequest
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateProfileRequest{Name: stringPtr("Jane Doe"), Age: intPtr(31)},
			setupMock: func(f fixture) {
				updated := user
				updated.Name = "Jane Doe"
				updated.Age = intPtr(31)

				gomock.InOrder(
					f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil),
					f.repo.EXPECT().
						Update(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
							assert.Equal(t, "Jane Doe", req[model.FieldName])
							assert.Equal(t, 31, req[model.FieldAge])
							assert.NotContains(t, req, model.FieldPhone)

							return nil
						}),
					f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
				)
				f.cache.EXPECT().Save(gomock.Any(), "generation:user:get:user-1", gomock.Any(), 0).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), "user:get:user-1*").Return(nil)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateProfileRequest{},
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "user not found",
			req:  dto.UpdateProfileRequest{Name: stringPtr("Jane Doe")},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			req:  dto.UpdateProfileRequest{Phone: stringPtr("+62812")},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.UpdateProfile(context.Background(), "user-1", tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Jane Doe", res.Name)
			assert.Equal(t, 31, *res.Age)
		})
	}
}

func TestUserService_UploadPhoto(t *testing.T) {
	const newURL = "https://cdn.example.com/profiles/user-1-abc.png"

	req := dto.UploadPhotoRequest{FileName: "Me.PNG", ContentType: "image/png", Size: 1024}

	tests := []struct {
		name      string
		user      model.User
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "first upload",
			user: model.User{ID: "user-1"},
			setupMock: func(f fixture) {
				f.storage.EXPECT().
					Upload(gomock.Any(), "profiles", gomock.Any(), "image/png", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, fileName, _ string, _ any) (string, error) {
						assert.True(t, strings.HasPrefix(fileName, "user-1-"))
						assert.True(t, strings.HasSuffix(fileName, ".png"))

						return newURL, nil
					})
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 0).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "replaces previous picture",
			user: model.User{ID: "user-1", ProfilePic: stringPtr("https://cdn.example.com/profiles/old.png")},
			setupMock: func(f fixture) {
				f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(newURL, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 0).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.storage.EXPECT().ObjectKeyFromURL("https://cdn.example.com/profiles/old.png").Return("profiles/old.png")
				f.storage.EXPECT().Delete(gomock.Any(), "profiles/old.png").Return(nil).AnyTimes()
			},
		},
		{
			name: "upload error",
			user: model.User{ID: "user-1"},
			setupMock: func(f fixture) {
				f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(constant.Empty, errors.New("bucket missing"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user, nil)
			tt.setupMock(f)

			res, err := f.svc.UploadPhoto(context.Background(), "user-1", req, strings.NewReader("png-bytes"))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, newURL, res.ProfilePic)
		})
	}
}
