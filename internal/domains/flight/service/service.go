package service

import (
	"context"
	"flightbook/config"
	"flightbook/infras/otel"
	"flightbook/internal/domains/flight/model/dto"
	"flightbook/internal/domains/flight/repository"
	"flightbook/shared"
	"flightbook/shared/cache"
	"flightbook/shared/constant"
	gDto "flightbook/shared/dto"
	"flightbook/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errFlightNotFound = failure.NotFound("Flight not found")

type Flight interface {
	GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListFlightsRequest) (dto.GetFlightsResponse, error)
	Count(ctx context.Context, req dto.ListFlightsRequest) (int, error)
	Get(ctx context.Context, id string) (dto.FlightResponse, error)
}

type serviceImpl struct {
	repo  repository.Flight
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Flight, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Flight {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, req dto.ListFlightsRequest) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(constant.CacheFlightList, params, req.From, req.To)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for flights")

		return res, nil
	}

	generation := shared.CacheGeneration(ctx, s.cache, constant.CacheFlight)

	total, err := s.Count(ctx, req)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, repository.Route(req.From, req.To))
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights")

		return res, fmt.Errorf("failed to get flights: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	shared.SaveIfCurrent(ctx, s.cache, constant.CacheFlight, generation, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req dto.ListFlightsRequest) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CacheFlightCount, req.From, req.To)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for flight count")

		return res, nil
	}

	generation := shared.CacheGeneration(ctx, s.cache, constant.CacheFlight)

	total, err := s.repo.Count(ctx, repository.Route(req.From, req.To))
	if err != nil {
		log.Error().Err(err).Msg("failed to count flights")

		return res, fmt.Errorf("failed to count flights: %w", err)
	}

	res = int(total)

	shared.SaveIfCurrent(ctx, s.cache, constant.CacheFlight, generation, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return res, errFlightNotFound
	}

	cacheKey := shared.BuildCacheKey(constant.CacheFlightGet, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for flight")

		return res, nil
	}

	generation := shared.CacheGeneration(ctx, s.cache, constant.CacheFlight)

	flight, err := s.repo.Get(ctx, objectID)
	if err != nil {
		log.Error().Err(err).Str("flight_id", id).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID.IsZero() {
		return res, errFlightNotFound
	}

	res.FromModel(flight)

	shared.SaveIfCurrent(ctx, s.cache, constant.CacheFlight, generation, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}
