package mongodb

import (
	"context"

	"restrohub/internal/models"
	"restrohub/internal/repositories/interfaces"
	"restrohub/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) interfaces.UserRepository {
	return &userRepository{
		collection: db.Collection(utils.CollectionUsers),
	}
}

// profileProjection limits user reads to the fields exposed next to reviews.
var profileProjection = bson.M{
	"username":            1,
	"profile_picture_url": 1,
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.collection.FindOne(
		ctx,
		bson.M{"_id": id},
		options.FindOne().SetProjection(profileProjection),
	).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError(utils.ResourceUser)
		}
		return nil, utils.NewPersistenceError("failed to get user", err)
	}

	return &profile, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserProfile, error) {
	profiles := make(map[primitive.ObjectID]*models.UserProfile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	cursor, err := r.collection.Find(
		ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(profileProjection),
	)
	if err != nil {
		return nil, utils.NewPersistenceError("failed to find users", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc struct {
			ID                primitive.ObjectID `bson:"_id"`
			Username          string             `bson:"username"`
			ProfilePictureURL string             `bson:"profile_picture_url"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, utils.NewPersistenceError("failed to decode user", err)
		}
		profiles[doc.ID] = &models.UserProfile{
			Username:          doc.Username,
			ProfilePictureURL: doc.ProfilePictureURL,
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.NewPersistenceError("failed to iterate users", err)
	}

	return profiles, nil
}
