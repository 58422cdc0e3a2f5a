package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"flightbook/config"
	"flightbook/infras/otel/mocks"
	flightMocks "flightbook/internal/domains/flight/mocks"
	"flightbook/internal/domains/flight/model"
	"flightbook/internal/domains/flight/model/dto"
	"flightbook/internal/domains/flight/repository"
	"flightbook/internal/domains/flight/service"
	"flightbook/shared"
	cacheMocks "flightbook/shared/cache/mocks"
	"flightbook/shared/constant"
	gDto "flightbook/shared/dto"
	"flightbook/shared/failure"
)

func newService(t *testing.T) (*flightMocks.MockFlight, *cacheMocks.MockRedisCache, service.Flight) {
	ctrl := gomock.NewController(t)

	repo := flightMocks.NewMockFlight(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return repo, redisCache, service.New(repo, cfg, redisCache, mocks.NewOtel())
}

func TestFlightService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 2}
	req := dto.ListFlightsRequest{From: "Jakarta", To: "Denpasar"}

	tests := []struct {
		name      string
		setupMock func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "loads page and total",
			setupMock: func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
				redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()

				repo.EXPECT().Count(gomock.Any(), repository.Route("Jakarta", "Denpasar")).Return(int64(5), nil)
				repo.EXPECT().
					GetAll(gomock.Any(), params, repository.Route("Jakarta", "Denpasar")).
					Return([]model.Flight{{ID: primitive.NewObjectID()}, {ID: primitive.NewObjectID()}}, nil)
			},
			wantTotal: 5,
		},
		{
			name: "count error",
			setupMock: func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name: "list error",
			setupMock: func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
				redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(5), nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, redisCache, svc := newService(t)
			tt.setupMock(repo, redisCache)

			res, err := svc.GetAll(context.Background(), params, req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Equal(t, 3, res.TotalPage)
			assert.Len(t, res.Flights, 2)
		})
	}
}

func TestFlightService_Get(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name      string
		id        string
		setupMock func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "found",
			id:   id.Hex(),
			setupMock: func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), "flight:get:"+id.Hex(), gomock.Any()).Return(errors.New("miss"))
				redisCache.EXPECT().Get(gomock.Any(), "generation:flight", gomock.Any()).Return(errors.New("miss")).Times(2)
				redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()
				repo.EXPECT().Get(gomock.Any(), id).Return(model.Flight{ID: id, TotalSeats: 10, BookedSeats: []string{"1A"}}, nil)
			},
		},
		{
			name:      "malformed id",
			id:        "GA-404",
			setupMock: func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusNotFound,
		},
		{
			name: "missing",
			id:   id.Hex(),
			setupMock: func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
				repo.EXPECT().Get(gomock.Any(), id).Return(model.Flight{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   id.Hex(),
			setupMock: func(repo *flightMocks.MockFlight, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
				repo.EXPECT().Get(gomock.Any(), id).Return(model.Flight{}, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, redisCache, svc := newService(t)
			tt.setupMock(repo, redisCache)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, id.Hex(), res.ID)
			assert.Equal(t, 9, res.AvailableSeats)
		})
	}
}

func TestFlightService_GetDuringSeatChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := flightMocks.NewMockFlight(ctrl)
	mem := cacheMocks.NewMemory()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(repo, cfg, mem, mocks.NewOtel())
	id := primitive.NewObjectID()
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), id).Return(model.Flight{ID: id, TotalSeats: 10, BookedSeats: []string{"1A"}}, nil),
		repo.EXPECT().Get(gomock.Any(), id).Return(model.Flight{ID: id, TotalSeats: 10}, nil),
	)

	mem.BeforeSave = func(string) {
		shared.InvalidateGeneration(ctx, mem, constant.CacheFlight)
	}

	first, err := svc.Get(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, 9, first.AvailableSeats)
	assert.False(t, mem.Has("flight:get:"+id.Hex()))

	second, err := svc.Get(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, 10, second.AvailableSeats)
	assert.True(t, mem.Has("flight:get:"+id.Hex()))
}
