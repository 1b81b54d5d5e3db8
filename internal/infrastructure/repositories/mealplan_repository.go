package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mealwise/mws/internal/domain/models"
	"github.com/mealwise/mws/internal/domain/repositories"
	"github.com/mealwise/mws/internal/infrastructure/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mealPlanRepository struct {
	collection *mongo.Collection
}

func NewMealPlanRepository(db *database.MongoDB) repositories.MealPlanRepository {
	return &mealPlanRepository{
		collection: db.Collection(database.CollectionMealPlans),
	}
}

func (r *mealPlanRepository) Create(ctx context.Context, plan *models.MealPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

func (r *mealPlanRepository) GetByID(ctx context.Context, userID, id string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) Update(ctx context.Context, plan *models.MealPlan) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID, "user_id": plan.UserID}, plan)
	return err
}

func (r *mealPlanRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	return err
}

func (r *mealPlanRepository) ListByUser(ctx context.Context, userID string, page, limit int) ([]*models.MealPlan, int64, error) {
	query := bson.M{"user_id": userID}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	skip := (page - 1) * limit

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var plans []*models.MealPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}
