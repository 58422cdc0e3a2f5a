package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flightbook/infras/mongo"
	"flightbook/infras/otel"
	"flightbook/internal/domains/flight/model"
	"flightbook/shared/constant"
	gDto "flightbook/shared/dto"
	gRepo "flightbook/shared/repository"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	goMongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Flight interface {
	Get(ctx context.Context, id primitive.ObjectID) (model.Flight, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter bson.D) ([]model.Flight, error)
	Count(ctx context.Context, filter bson.D) (int64, error)
	ReleaseSeats(ctx context.Context, id primitive.ObjectID, seats []string) error
	ReserveSeats(ctx context.Context, id primitive.ObjectID, seats []string) error
}

type repositoryImpl struct {
	gRepo.MongoRepository[model.Flight]
}

func New(conn *mongo.Connection, otel otel.Otel) Flight {
	return &repositoryImpl{
		MongoRepository: gRepo.NewMongoRepository[model.Flight](model.EntityName, mongo.CollectionFlights, conn, otel),
	}
}

func Indexes() []goMongo.IndexModel {
	return []goMongo.IndexModel{
		mongo.Index(bson.D{{Key: model.FieldFrom, Value: 1}, {Key: model.FieldTo, Value: 1}, {Key: model.FieldDeparture, Value: -1}}, false),
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id primitive.ObjectID) (model.Flight, error) {
	return r.FindOne(ctx, bson.D{{Key: model.FieldID, Value: id}})
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter bson.D) ([]model.Flight, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: SortField(params.SortBy), Value: params.SortOrder()}}).
		SetSkip(params.Offset())

	if params.Limit > 0 {
		opts.SetLimit(int64(params.Limit))
	}

	return r.Find(ctx, filter, opts)
}

// ReleaseSeats frees the given seat ids. A missing flight is not an error.
func (r *repositoryImpl) ReleaseSeats(ctx context.Context, id primitive.ObjectID, seats []string) error {
	_, err := r.UpdateOne(ctx, bson.D{{Key: model.FieldID, Value: id}}, bson.D{
		{Key: "$pull", Value: bson.D{{Key: model.FieldBookedSeats, Value: bson.D{{Key: "$in", Value: seats}}}}},
	})

	return err
}

func (r *repositoryImpl) ReserveSeats(ctx context.Context, id primitive.ObjectID, seats []string) error {
	_, err := r.UpdateOne(ctx, bson.D{{Key: model.FieldID, Value: id}}, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: model.FieldBookedSeats, Value: bson.D{{Key: "$each", Value: seats}}}}},
	})

	return err
}

// Route filters by origin and destination, case-insensitively. Empty values match everything.
func Route(from, to string) bson.D {
	filter := bson.D{}

	if from != constant.Empty {
		filter = append(filter, bson.E{Key: model.FieldFrom, Value: exactFold(from)})
	}

	if to != constant.Empty {
		filter = append(filter, bson.E{Key: model.FieldTo, Value: exactFold(to)})
	}

	return filter
}

// SortField whitelists the sortable fields; anything else sorts by departure.
func SortField(sortBy string) string {
	if sortBy == model.FieldPrice {
		return model.FieldPrice
	}

	return model.FieldDeparture
}

func exactFold(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}
