package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

// UsageRepo handles MongoDB operations for question-to-context links
type UsageRepo interface {
	Create(ctx context.Context, usage *model.QuestionUsage) error
	GetByID(ctx context.Context, id string) (*model.QuestionUsage, error)
	GetByContext(ctx context.Context, contextType, contextID string) ([]*model.QuestionUsage, error)
	GetByQuestion(ctx context.Context, questionID string) ([]*model.QuestionUsage, error)
	Delete(ctx context.Context, id string) error
}

type usageRepo struct {
	collection *mongo.Collection
}

// NewUsageRepo creates a new usage repository with indexes
func NewUsageRepo(db *mongo.Database) UsageRepo {
	repo := &usageRepo{
		collection: db.Collection("question_usages"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *usageRepo) ensureIndexes(ctx context.Context) {
	createIndex(ctx, r.collection, bson.D{
		{Key: "contextType", Value: 1},
		{Key: "contextId", Value: 1},
		{Key: "displayOrder", Value: 1},
	}, false)
	createIndex(ctx, r.collection, bson.D{{Key: "questionId", Value: 1}}, false)
}

func (r *usageRepo) Create(ctx context.Context, usage *model.QuestionUsage) error {
	if usage.ID == "" {
		usage.ID = uuid.NewString()
	}
	if usage.CreatedAt.IsZero() {
		usage.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, usage)
	return err
}

func (r *usageRepo) GetByID(ctx context.Context, id string) (*model.QuestionUsage, error) {
	var usage model.QuestionUsage
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&usage)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

func (r *usageRepo) GetByContext(ctx context.Context, contextType, contextID string) ([]*model.QuestionUsage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{
		"contextType": contextType,
		"contextId":   contextID,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var usages []*model.QuestionUsage
	if err := cursor.All(ctx, &usages); err != nil {
		return nil, err
	}
	return usages, nil
}

func (r *usageRepo) GetByQuestion(ctx context.Context, questionID string) ([]*model.QuestionUsage, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"questionId": questionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var usages []*model.QuestionUsage
	if err := cursor.All(ctx, &usages); err != nil {
		return nil, err
	}
	return usages, nil
}

func (r *usageRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
