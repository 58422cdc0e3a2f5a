package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flightbook/infras/mongo"
	"flightbook/infras/otel"
	bookingModel "flightbook/internal/domains/booking/model"
	bookingRepo "flightbook/internal/domains/booking/repository"
	"flightbook/internal/domains/legacy/model"
	gRepo "flightbook/shared/repository"
	"flightbook/shared/timezone"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	goMongo "go.mongodb.org/mongo-driver/mongo"
)

// Legacy works on the booking collection as a whole: partition counts and bulk flag changes.
type Legacy interface {
	Stats(ctx context.Context) (model.Stats, error)
	CountCandidates(ctx context.Context, before *time.Time) (int64, error)
	Flag(ctx context.Context, before *time.Time) (int64, error)
	Unflag(ctx context.Context, id primitive.ObjectID) (bookingModel.Booking, error)
}

type repositoryImpl struct {
	gRepo.MongoRepository[bookingModel.Booking]
}

func New(conn *mongo.Connection, otel otel.Otel) Legacy {
	return &repositoryImpl{
		MongoRepository: gRepo.NewMongoRepository[bookingModel.Booking](model.EntityName, mongo.CollectionSimpleBookings, conn, otel),
	}
}

// Stats counts every bucket in one pass over the collection.
func (r *repositoryImpl) Stats(ctx context.Context) (model.Stats, error) {
	var rows []model.Stats

	if err := r.Aggregate(ctx, StatsPipeline(), &rows); err != nil {
		return model.Stats{}, err
	}

	if len(rows) == 0 {
		return model.Stats{}, nil
	}

	return rows[0], nil
}

func (r *repositoryImpl) CountCandidates(ctx context.Context, before *time.Time) (int64, error) {
	return r.Count(ctx, bookingRepo.LegacyCandidates(before))
}

// Flag marks every candidate as legacy and returns how many records changed.
func (r *repositoryImpl) Flag(ctx context.Context, before *time.Time) (int64, error) {
	return r.UpdateMany(ctx, bookingRepo.LegacyCandidates(before), setLegacy(true))
}

// Unflag sets legacy=false whatever the current value. The zero booking means the id did not resolve.
func (r *repositoryImpl) Unflag(ctx context.Context, id primitive.ObjectID) (bookingModel.Booking, error) {
	return r.FindOneAndUpdate(ctx, bookingRepo.ByID(id), setLegacy(false))
}

func setLegacy(legacy bool) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{
		{Key: bookingModel.FieldLegacy, Value: legacy},
		{Key: bookingModel.FieldUpdatedAt, Value: timezone.Now()},
	}}}
}

func StatsPipeline() goMongo.Pipeline {
	legacy := "$" + bookingModel.FieldLegacy
	status := "$" + bookingModel.FieldStatus

	return goMongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "legacy", Value: countIf(bson.D{{Key: "$eq", Value: bson.A{legacy, true}}})},
			{Key: "nonLegacy", Value: countIf(bson.D{{Key: "$eq", Value: bson.A{legacy, false}}})},
			{Key: "unflagged", Value: countIf(bson.D{{Key: "$eq", Value: bson.A{bson.D{{Key: "$type", Value: legacy}}, "missing"}}})},
			{Key: "cancelled", Value: countIf(bson.D{{Key: "$eq", Value: bson.A{status, bookingModel.StatusCancelled}}})},
			{Key: "activeNonLegacy", Value: countIf(bson.D{{Key: "$and", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{legacy, false}}},
				bson.D{{Key: "$eq", Value: bson.A{status, bookingModel.StatusActive}}},
			}}})},
		}}},
	}
}

func countIf(condition bson.D) bson.D {
	return bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{condition, 1, 0}}}}}
}
