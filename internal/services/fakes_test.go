package services_test

import (
	"context"
	"io"
	"sync"
	"time"

	"restrohub/internal/models"
	"restrohub/internal/utils"
	"restrohub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logger.Logger {
	l, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel})
	if err != nil {
		panic(err)
	}
	l.SetOutput(io.Discard)
	return l
}

// fakeRestaurantRepo is an in-memory stand-in for the mongo repository.
// Its mutations mirror the store's single-document atomicity: each method
// holds the lock for the whole read-modify-write, and the version check in
// SetAverageRating behaves like the $size-guarded update.
type fakeRestaurantRepo struct {
	mu          sync.Mutex
	restaurants map[primitive.ObjectID]*models.Restaurant

	// names passed to SetAverageRating, in call order
	averageNames []string
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{
		restaurants: make(map[primitive.ObjectID]*models.Restaurant),
	}
}

func copyRestaurant(r *models.Restaurant) *models.Restaurant {
	c := *r
	c.Cuisine = append([]models.Cuisine(nil), r.Cuisine...)
	c.Menu = append([]models.Dish(nil), r.Menu...)
	c.Reviews = append([]models.Review(nil), r.Reviews...)
	return &c
}

func (f *fakeRestaurantRepo) Create(ctx context.Context, restaurant *models.Restaurant) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	restaurant.ID = primitive.NewObjectID()
	restaurant.CreatedAt = time.Now()
	restaurant.UpdatedAt = time.Now()
	f.restaurants[restaurant.ID] = copyRestaurant(restaurant)
	return nil
}

func (f *fakeRestaurantRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
	}
	return copyRestaurant(restaurant), nil
}

func (f *fakeRestaurantRepo) FindByName(ctx context.Context, name string) (*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, restaurant := range f.restaurants {
		if restaurant.Name == name {
			return copyRestaurant(restaurant), nil
		}
	}
	return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
}

func (f *fakeRestaurantRepo) FindByCity(ctx context.Context, city string) (*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, restaurant := range f.restaurants {
		if restaurant.City == city {
			return copyRestaurant(restaurant), nil
		}
	}
	return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
}

func (f *fakeRestaurantRepo) FindAll(ctx context.Context) ([]*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []*models.Restaurant
	for _, restaurant := range f.restaurants {
		all = append(all, copyRestaurant(restaurant))
	}
	return all, nil
}

func (f *fakeRestaurantRepo) FindByCuisine(ctx context.Context, cuisine models.Cuisine) ([]*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matches []*models.Restaurant
	for _, restaurant := range f.restaurants {
		for _, tag := range restaurant.Cuisine {
			if tag == cuisine {
				matches = append(matches, copyRestaurant(restaurant))
				break
			}
		}
	}
	return matches, nil
}

func (f *fakeRestaurantRepo) FindByMinRating(ctx context.Context, minRating float64) ([]*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matches []*models.Restaurant
	for _, restaurant := range f.restaurants {
		if restaurant.Rating >= minRating {
			matches = append(matches, copyRestaurant(restaurant))
		}
	}
	return matches, nil
}

func (f *fakeRestaurantRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
	}

	for field, value := range updates {
		switch field {
		case "name":
			restaurant.Name = value.(string)
		case "address":
			restaurant.Address = value.(string)
		case "city":
			restaurant.City = value.(string)
		case "rating":
			restaurant.Rating = value.(float64)
		}
	}
	restaurant.UpdatedAt = time.Now()
	return copyRestaurant(restaurant), nil
}

func (f *fakeRestaurantRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.restaurants[id]; !ok {
		return utils.NewNotFoundError(utils.ResourceRestaurant)
	}
	delete(f.restaurants, id)
	return nil
}

func (f *fakeRestaurantRepo) PushReview(ctx context.Context, id primitive.ObjectID, review models.Review) (*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
	}
	restaurant.Reviews = append(restaurant.Reviews, review)
	return copyRestaurant(restaurant), nil
}

func (f *fakeRestaurantRepo) SetAverageRating(ctx context.Context, id primitive.ObjectID, name string, reviewCount int, average float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.averageNames = append(f.averageNames, name)

	restaurant, ok := f.restaurants[id]
	if !ok || len(restaurant.Reviews) != reviewCount {
		return nil
	}
	restaurant.AverageRating = average
	return nil
}

func (f *fakeRestaurantRepo) PushDish(ctx context.Context, id primitive.ObjectID, dish models.Dish) (*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
	}
	restaurant.Menu = append(restaurant.Menu, dish)
	return copyRestaurant(restaurant), nil
}

func (f *fakeRestaurantRepo) PullDishByName(ctx context.Context, id primitive.ObjectID, dishName string) (*models.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	restaurant, ok := f.restaurants[id]
	if !ok {
		return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
	}

	kept := restaurant.Menu[:0]
	for _, dish := range restaurant.Menu {
		if dish.Name != dishName {
			kept = append(kept, dish)
		}
	}
	restaurant.Menu = kept
	return copyRestaurant(restaurant), nil
}

// seed inserts a restaurant directly and returns its id.
func (f *fakeRestaurantRepo) seed(restaurant *models.Restaurant) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()

	if restaurant.ID.IsZero() {
		restaurant.ID = primitive.NewObjectID()
	}
	f.restaurants[restaurant.ID] = copyRestaurant(restaurant)
	return restaurant.ID
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[primitive.ObjectID]*models.UserProfile),
	}
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error) {
	profile, ok := f.users[id]
	if !ok {
		return nil, utils.NewNotFoundError(utils.ResourceUser)
	}
	return profile, nil
}

func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserProfile, error) {
	found := make(map[primitive.ObjectID]*models.UserProfile, len(ids))
	for _, id := range ids {
		if profile, ok := f.users[id]; ok {
			found[id] = profile
		}
	}
	return found, nil
}
