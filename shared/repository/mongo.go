package repository

import (
	"context"
	"errors"
	"flightbook/infras/mongo"
	"flightbook/infras/otel"
	"flightbook/shared/constant"
	"flightbook/shared/logger"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	goMongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const otelCollectionAttributeKey = "collection"

// MongoRepository is the document counterpart of Repository: one collection, decoded into T.
// Lookups that match nothing return the zero value of T and a nil error.
type MongoRepository[T any] struct {
	collection *goMongo.Collection
	otel       otel.Otel
	entity     string
}

func NewMongoRepository[T any](entityName, collectionName string, conn *mongo.Connection, otl otel.Otel) MongoRepository[T] {
	return MongoRepository[T]{
		collection: conn.DB.Collection(collectionName),
		otel:       otl,
		entity:     entityName,
	}
}

func (repo *MongoRepository[T]) Collection() *goMongo.Collection {
	return repo.collection
}

func (repo *MongoRepository[T]) scope(ctx context.Context, method string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, method))
	scope.SetAttribute(otelCollectionAttributeKey, repo.collection.Name())

	return ctx, scope
}

func (repo *MongoRepository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// InsertOne stores doc and returns the generated id when the driver assigned one.
func (repo *MongoRepository[T]) InsertOne(ctx context.Context, doc T) (primitive.ObjectID, error) {
	ctx, scope := repo.scope(ctx, "InsertOne")
	defer scope.End()

	result, err := repo.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, repo.fail(scope, "insert document", err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)

	return id, nil
}

func (repo *MongoRepository[T]) InsertMany(ctx context.Context, docs []T) error {
	if len(docs) == 0 {
		return nil
	}

	ctx, scope := repo.scope(ctx, "InsertMany")
	defer scope.End()

	payload := make([]any, len(docs))
	for i, doc := range docs {
		payload[i] = doc
	}

	if _, err := repo.collection.InsertMany(ctx, payload); err != nil {
		return repo.fail(scope, "insert documents", err)
	}

	return nil
}

func (repo *MongoRepository[T]) FindOne(ctx context.Context, filter bson.D) (T, error) {
	ctx, scope := repo.scope(ctx, "FindOne")
	defer scope.End()

	var doc T

	err := repo.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, goMongo.ErrNoDocuments) {
		return doc, nil
	}

	if err != nil {
		return doc, repo.fail(scope, "find document", err)
	}

	return doc, nil
}

func (repo *MongoRepository[T]) Find(ctx context.Context, filter bson.D, opts ...*options.FindOptions) ([]T, error) {
	ctx, scope := repo.scope(ctx, "Find")
	defer scope.End()

	cursor, err := repo.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, repo.fail(scope, "find documents", err)
	}

	docs := make([]T, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, repo.fail(scope, "decode documents", err)
	}

	return docs, nil
}

// Aggregate runs pipeline and decodes every result into out, a pointer to a slice.
func (repo *MongoRepository[T]) Aggregate(ctx context.Context, pipeline goMongo.Pipeline, out any) error {
	ctx, scope := repo.scope(ctx, "Aggregate")
	defer scope.End()

	cursor, err := repo.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return repo.fail(scope, "aggregate documents", err)
	}

	if err = cursor.All(ctx, out); err != nil {
		return repo.fail(scope, "decode aggregation", err)
	}

	return nil
}

func (repo *MongoRepository[T]) Count(ctx context.Context, filter bson.D) (int64, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	count, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, repo.fail(scope, "count documents", err)
	}

	return count, nil
}

// FindOneAndUpdate applies update to the first match and returns the document after the change.
func (repo *MongoRepository[T]) FindOneAndUpdate(ctx context.Context, filter, update bson.D) (T, error) {
	ctx, scope := repo.scope(ctx, "FindOneAndUpdate")
	defer scope.End()

	var doc T

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := repo.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, goMongo.ErrNoDocuments) {
		return doc, nil
	}

	if err != nil {
		return doc, repo.fail(scope, "update document", err)
	}

	return doc, nil
}

// UpdateOne returns the number of matched documents.
func (repo *MongoRepository[T]) UpdateOne(ctx context.Context, filter, update bson.D) (int64, error) {
	ctx, scope := repo.scope(ctx, "UpdateOne")
	defer scope.End()

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, repo.fail(scope, "update document", err)
	}

	return result.MatchedCount, nil
}

// UpdateMany returns the number of modified documents.
func (repo *MongoRepository[T]) UpdateMany(ctx context.Context, filter, update bson.D) (int64, error) {
	ctx, scope := repo.scope(ctx, "UpdateMany")
	defer scope.End()

	result, err := repo.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, repo.fail(scope, "update documents", err)
	}

	return result.ModifiedCount, nil
}

func (repo *MongoRepository[T]) DeleteOne(ctx context.Context, filter bson.D) (int64, error) {
	ctx, scope := repo.scope(ctx, "DeleteOne")
	defer scope.End()

	result, err := repo.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, repo.fail(scope, "delete document", err)
	}

	return result.DeletedCount, nil
}

func (repo *MongoRepository[T]) DeleteMany(ctx context.Context, filter bson.D) (int64, error) {
	ctx, scope := repo.scope(ctx, "DeleteMany")
	defer scope.End()

	result, err := repo.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, repo.fail(scope, "delete documents", err)
	}

	return result.DeletedCount, nil
}
