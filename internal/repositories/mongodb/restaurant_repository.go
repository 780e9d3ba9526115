package mongodb

import (
	"context"
	"fmt"
	"time"

	"restrohub/internal/models"
	"restrohub/internal/repositories/interfaces"
	"restrohub/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CacheService is the subset of the redis cache the repositories use.
// A nil cache disables caching entirely.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const restaurantCacheTTL = 10 * time.Minute

type restaurantRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewRestaurantRepository(db *mongo.Database, cache CacheService) interfaces.RestaurantRepository {
	return &restaurantRepository{
		collection: db.Collection(utils.CollectionRestaurants),
		cache:      cache,
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	restaurant.ID = primitive.NewObjectID()
	restaurant.CreatedAt = time.Now()
	restaurant.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, restaurant)
	if err != nil {
		return utils.NewPersistenceError("failed to create restaurant", err)
	}

	r.invalidateNameCache(ctx, restaurant.Name)

	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
		}
		return nil, utils.NewPersistenceError("failed to get restaurant", err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindByName(ctx context.Context, name string) (*models.Restaurant, error) {
	cacheKey := nameCacheKey(name)
	if r.cache != nil {
		var cached models.Restaurant
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	var restaurant models.Restaurant
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&restaurant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
		}
		return nil, utils.NewPersistenceError("failed to find restaurant by name", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, &restaurant, restaurantCacheTTL)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindByCity(ctx context.Context, city string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.collection.FindOne(ctx, bson.M{"city": city}).Decode(&restaurant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
		}
		return nil, utils.NewPersistenceError("failed to find restaurant by city", err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]*models.Restaurant, error) {
	return r.findWithFilter(ctx, bson.M{})
}

func (r *restaurantRepository) FindByCuisine(ctx context.Context, cuisine models.Cuisine) ([]*models.Restaurant, error) {
	return r.findWithFilter(ctx, bson.M{"cuisine": cuisine})
}

func (r *restaurantRepository) FindByMinRating(ctx context.Context, minRating float64) ([]*models.Restaurant, error) {
	return r.findWithFilter(ctx, bson.M{"rating": bson.M{"$gte": minRating}})
}

func (r *restaurantRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Restaurant, error) {
	updates["updated_at"] = time.Now()

	// The pre-update document is decoded so a rename can drop the cache
	// entry filed under the old name, not just the new one.
	var before models.Restaurant
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&before)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
		}
		return nil, utils.NewPersistenceError("failed to update restaurant", err)
	}

	r.invalidateUpdateCache(ctx, before.Name, updates)

	return r.FindByID(ctx, id)
}

func (r *restaurantRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	var deleted models.Restaurant
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NewNotFoundError(utils.ResourceRestaurant)
		}
		return utils.NewPersistenceError("failed to delete restaurant", err)
	}

	r.invalidateNameCache(ctx, deleted.Name)

	return nil
}

// PushReview appends the review in a single atomic update so that two
// concurrent appends against the same document cannot lose entries.
// The post-append document is returned.
func (r *restaurantRepository) PushReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"reviews": review},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&restaurant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
		}
		return nil, utils.NewPersistenceError("failed to append review", err)
	}

	r.invalidateNameCache(ctx, restaurant.Name)

	return &restaurant, nil
}

// SetAverageRating persists a recomputed average under a version check:
// the write only applies while the review list still has reviewCount
// entries. A skipped write is not an error; the concurrent append that
// grew the list recomputes over the longer list and wins.
func (r *restaurantRepository) SetAverageRating(ctx context.Context, id primitive.ObjectID, name string, reviewCount int, average float64) error {
	filter := bson.M{
		"_id":     id,
		"reviews": bson.M{"$size": reviewCount},
	}

	_, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"average_rating": average,
			"updated_at":     time.Now(),
		},
	})
	if err != nil {
		return utils.NewPersistenceError("failed to set average rating", err)
	}

	// A by-name read between the review append and this write may have
	// re-cached the document with the old average.
	r.invalidateNameCache(ctx, name)

	return nil
}

func (r *restaurantRepository) PushDish(ctx context.Context, id primitive.ObjectID, dish models.Dish) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"menu": dish},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&restaurant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
		}
		return nil, utils.NewPersistenceError("failed to add dish", err)
	}

	r.invalidateNameCache(ctx, restaurant.Name)

	return &restaurant, nil
}

// PullDishByName removes every menu entry with the given name. Pulling a
// name with no matches leaves the document unchanged.
func (r *restaurantRepository) PullDishByName(ctx context.Context, id primitive.ObjectID, dishName string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{"menu": bson.M{"name": dishName}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&restaurant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
		}
		return nil, utils.NewPersistenceError("failed to remove dish", err)
	}

	r.invalidateNameCache(ctx, restaurant.Name)

	return &restaurant, nil
}

func (r *restaurantRepository) findWithFilter(ctx context.Context, filter bson.M) ([]*models.Restaurant, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, utils.NewPersistenceError("failed to find restaurants", err)
	}
	defer cursor.Close(ctx)

	var restaurants []*models.Restaurant
	for cursor.Next(ctx) {
		var restaurant models.Restaurant
		if err := cursor.Decode(&restaurant); err != nil {
			return nil, utils.NewPersistenceError("failed to decode restaurant", err)
		}
		restaurants = append(restaurants, &restaurant)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.NewPersistenceError("failed to iterate restaurants", err)
	}

	return restaurants, nil
}

// invalidateUpdateCache drops the cache entry for the document's
// pre-update name and, when the update renames it, the new name too.
func (r *restaurantRepository) invalidateUpdateCache(ctx context.Context, previousName string, updates map[string]interface{}) {
	r.invalidateNameCache(ctx, previousName)
	if newName, ok := updates["name"].(string); ok && newName != previousName {
		r.invalidateNameCache(ctx, newName)
	}
}

func (r *restaurantRepository) invalidateNameCache(ctx context.Context, name string) {
	if r.cache != nil && name != "" {
		r.cache.Delete(ctx, nameCacheKey(name))
	}
}

func nameCacheKey(name string) string {
	return fmt.Sprintf("restaurant_name_%s", name)
}
