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

type inventoryRepository struct {
	collection *mongo.Collection
}

func NewInventoryRepository(db *database.MongoDB) repositories.InventoryRepository {
	return &inventoryRepository{
		collection: db.Collection(database.CollectionInventoryItems),
	}
}

func (r *inventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *inventoryRepository) CreateMany(ctx context.Context, items []*models.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.CreatedAt = time.Now()
		item.UpdatedAt = time.Now()
		docs = append(docs, item)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *inventoryRepository) GetByID(ctx context.Context, userID, id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	item.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": item.ID, "user_id": item.UserID}, item)
	return err
}

func (r *inventoryRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	return err
}

func (r *inventoryRepository) ListByUser(ctx context.Context, userID, section string) ([]*models.InventoryItem, error) {
	query := bson.M{"user_id": userID}
	if section != "" {
		query["section"] = section
	}

	opts := options.Find().SetSort(bson.D{{Key: "section", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *inventoryRepository) ClearByUser(ctx context.Context, userID, section string) (int64, error) {
	query := bson.M{"user_id": userID}
	if section != "" {
		query["section"] = section
	}

	result, err := r.collection.DeleteMany(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
