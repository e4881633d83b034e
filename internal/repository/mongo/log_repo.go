package mongo

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/logger"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	weightLogCollectionName    = "weight_logs"
	calorieLogCollectionName   = "calorie_logs"
	exerciseLogCollectionName  = "exercise_logs"
	hydrationLogCollectionName = "hydration_logs"
)

// LogCollections lists the progress log collections, all keyed by userId and date.
var LogCollections = []string{
	weightLogCollectionName,
	calorieLogCollectionName,
	exerciseLogCollectionName,
	hydrationLogCollectionName,
}

// --- Shared helpers ---

func insertLog(ctx context.Context, collection *mongo.Collection, doc interface{}) (primitive.ObjectID, error) {
	result, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted log ID")
	}
	return insertedID, nil
}

// listSince decodes the user's entries dated at or after since, oldest first.
func listSince[T any](ctx context.Context, collection *mongo.Collection, userID primitive.ObjectID, since time.Time) ([]T, error) {
	filter := bson.M{"userId": userID}
	if !since.IsZero() {
		filter["date"] = bson.M{"$gte": since.UTC()}
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func validateLog(userID primitive.ObjectID, date time.Time) error {
	if userID == primitive.NilObjectID || date.IsZero() {
		return errors.New("log entry requires userId and date")
	}
	return nil
}

// --- Weight ---

type mongoWeightLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWeightLogRepository creates a repository for weigh-ins.
func NewMongoWeightLogRepository(db *mongo.Database) repository.WeightLogRepository {
	return &mongoWeightLogRepository{collection: db.Collection(weightLogCollectionName)}
}

func (r *mongoWeightLogRepository) Create(ctx context.Context, entry *domain.WeightEntry) (primitive.ObjectID, error) {
	if err := validateLog(entry.UserID, entry.Date); err != nil {
		return primitive.NilObjectID, err
	}
	entry.ID = primitive.NewObjectID()
	return insertLog(ctx, r.collection, entry)
}

func (r *mongoWeightLogRepository) ListSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.WeightEntry, error) {
	return listSince[domain.WeightEntry](ctx, r.collection, userID, since)
}

// --- Calories ---

type mongoCalorieLogRepository struct {
	collection *mongo.Collection
}

// NewMongoCalorieLogRepository creates a repository for calorie logs.
func NewMongoCalorieLogRepository(db *mongo.Database) repository.CalorieLogRepository {
	return &mongoCalorieLogRepository{collection: db.Collection(calorieLogCollectionName)}
}

func (r *mongoCalorieLogRepository) Create(ctx context.Context, entry *domain.CalorieEntry) (primitive.ObjectID, error) {
	if err := validateLog(entry.UserID, entry.Date); err != nil {
		return primitive.NilObjectID, err
	}
	entry.ID = primitive.NewObjectID()
	return insertLog(ctx, r.collection, entry)
}

func (r *mongoCalorieLogRepository) ListSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.CalorieEntry, error) {
	return listSince[domain.CalorieEntry](ctx, r.collection, userID, since)
}

// --- Exercise ---

type mongoExerciseLogRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseLogRepository creates a repository for exercise sessions.
func NewMongoExerciseLogRepository(db *mongo.Database) repository.ExerciseLogRepository {
	return &mongoExerciseLogRepository{collection: db.Collection(exerciseLogCollectionName)}
}

func (r *mongoExerciseLogRepository) Create(ctx context.Context, entry *domain.ExerciseEntry) (primitive.ObjectID, error) {
	if err := validateLog(entry.UserID, entry.Date); err != nil {
		return primitive.NilObjectID, err
	}
	entry.ID = primitive.NewObjectID()
	return insertLog(ctx, r.collection, entry)
}

func (r *mongoExerciseLogRepository) ListSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.ExerciseEntry, error) {
	return listSince[domain.ExerciseEntry](ctx, r.collection, userID, since)
}

// --- Hydration ---

type mongoHydrationLogRepository struct {
	collection *mongo.Collection
}

// NewMongoHydrationLogRepository creates a repository for daily water intake.
func NewMongoHydrationLogRepository(db *mongo.Database) repository.HydrationLogRepository {
	return &mongoHydrationLogRepository{collection: db.Collection(hydrationLogCollectionName)}
}

// AddGlasses upserts the day's document and increments its glasses.
func (r *mongoHydrationLogRepository) AddGlasses(ctx context.Context, userID primitive.ObjectID, date time.Time, glasses int) (*domain.HydrationEntry, error) {
	if err := validateLog(userID, date); err != nil {
		return nil, err
	}
	filter := bson.M{"userId": userID, "date": domain.DayStart(date)}
	update := bson.M{"$inc": bson.M{"glasses": glasses}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var entry domain.HydrationEntry
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoHydrationLogRepository) ListSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.HydrationEntry, error) {
	if !since.IsZero() {
		since = domain.DayStart(since)
	}
	return listSince[domain.HydrationEntry](ctx, r.collection, userID, since)
}

// EnsureLogIndexes creates the userId/date index on a log collection. The
// hydration collection's index is unique so the per-day upsert cannot race
// into duplicates.
func EnsureLogIndexes(ctx context.Context, collection *mongo.Collection) {
	index := options.Index()
	if collection.Name() == hydrationLogCollectionName {
		index.SetUnique(true)
	}
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: index,
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("failed to create indexes", zap.String("collection", collection.Name()), zap.Error(err))
	}
}
