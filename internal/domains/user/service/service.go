package service

import (
	"context"
	"flightbook/config"
	"flightbook/infras/otel"
	"flightbook/infras/s3"
	"flightbook/internal/domains/user/model"
	"flightbook/internal/domains/user/model/dto"
	"flightbook/internal/domains/user/repository"
	"flightbook/shared"
	"flightbook/shared/cache"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser     = "user:get"
	profilePicFolder = "profiles"
)

var errUserNotFound = failure.NotFound("User not found")

type User interface {
	Profile(ctx context.Context, id string) (dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, id string, req dto.UpdateProfileRequest) (dto.ProfileResponse, error)
	UploadPhoto(ctx context.Context, id string, req dto.UploadPhotoRequest, body io.Reader) (dto.UploadPhotoResponse, error)
}

type serviceImpl struct {
	repo    repository.User
	storage s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.User, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Profile(ctx context.Context, id string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	generation := shared.CacheGeneration(ctx, s.cache, cacheKey)

	user, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	shared.SaveIfCurrent(ctx, s.cache, cacheKey, generation, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, id string, req dto.UpdateProfileRequest) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if _, err = s.get(ctx, id); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, id), repository.ByID(id)); err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	s.invalidate(ctx, id)

	user, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

// UploadPhoto stores the picture under a fresh key and removes the previous one once the row points at the new URL.
func (s *serviceImpl) UploadPhoto(ctx context.Context, id string, req dto.UploadPhotoRequest, body io.Reader) (res dto.UploadPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UploadPhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	fileName := id + "-" + uuid.NewString() + strings.ToLower(path.Ext(req.FileName))

	url, err := s.storage.Upload(ctx, profilePicFolder, fileName, req.ContentType, body)
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to upload profile picture")

		return res, fmt.Errorf("failed to upload profile picture: %w", err)
	}

	update := dto.UpdateProfilePicRequest{ProfilePic: url}
	if err = s.repo.Update(ctx, shared.TransformFields(update, id), repository.ByID(id)); err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to save profile picture")

		return res, fmt.Errorf("failed to save profile picture: %w", err)
	}

	s.invalidate(ctx, id)

	if user.ProfilePic != nil {
		if key := s.storage.ObjectKeyFromURL(*user.ProfilePic); key != constant.Empty {
			go func() {
				if err := s.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("failed to delete previous profile picture")
				}
			}()
		}
	}

	res.ProfilePic = url

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, repository.ByID(id))
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, errUserNotFound
	}

	return user, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.InvalidateGeneration(ctx, s.cache, shared.BuildCacheKey(cacheGetUser, id))
}
