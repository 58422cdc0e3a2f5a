package repository_test

import (
	"context"
	"flightbook/infras/mongo"
	"flightbook/infras/otel/mocks"
	"flightbook/internal/domains/flight/repository"
	gDto "flightbook/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRoute(t *testing.T) {
	assert.Empty(t, repository.Route("", ""))

	filter := repository.Route("Jakarta", "")
	require.Len(t, filter, 1)
	assert.Equal(t, "from", filter[0].Key)
	assert.Equal(t, primitive.Regex{Pattern: "^Jakarta$", Options: "i"}, filter[0].Value)

	filter = repository.Route("Kuala Lumpur (KUL)", "Denpasar")
	require.Len(t, filter, 2)
	assert.Equal(t, primitive.Regex{Pattern: `^Kuala Lumpur \(KUL\)$`, Options: "i"}, filter[0].Value)
	assert.Equal(t, "to", filter[1].Key)
}

func TestSortField(t *testing.T) {
	assert.Equal(t, "price", repository.SortField("price"))
	assert.Equal(t, "departure", repository.SortField("created_at"))
	assert.Equal(t, "departure", repository.SortField(""))
}

func TestFlightRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	newRepo := func(mt *mtest.T) repository.Flight {
		return repository.New(&mongo.Connection{Client: mt.Client, DB: mt.DB}, mocks.NewOtel())
	}

	mt.Run("get all", func(mt *mtest.T) {
		repo := newRepo(mt)
		ns := mt.DB.Name() + "." + mongo.CollectionFlights

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "airline", Value: "Garuda"}, {Key: "bookedSeats", Value: bson.A{"1A"}}},
			),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		flights, err := repo.GetAll(context.Background(), gDto.QueryParams{Page: 2, Limit: 10}, repository.Route("Jakarta", ""))

		require.NoError(mt, err)
		require.Len(mt, flights, 1)
		assert.Equal(mt, []string{"1A"}, flights[0].BookedSeats)
	})

	mt.Run("release seats", func(mt *mtest.T) {
		repo := newRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		assert.NoError(mt, repo.ReleaseSeats(context.Background(), primitive.NewObjectID(), []string{"1A", "1B"}))
	})

	mt.Run("reserve seats error", func(mt *mtest.T) {
		repo := newRepo(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 91, Message: "shutdown in progress"}))

		assert.Error(mt, repo.ReserveSeats(context.Background(), primitive.NewObjectID(), []string{"1A"}))
	})
}
