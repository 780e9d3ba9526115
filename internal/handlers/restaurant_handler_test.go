package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restrohub/internal/handlers"
	"restrohub/internal/models"
	"restrohub/internal/utils"
	"restrohub/routes"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubRestaurantService struct {
	create          func(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error)
	searchByCity    func(ctx context.Context, city string) (*models.Restaurant, error)
	getByName       func(ctx context.Context, name string) (*models.Restaurant, error)
	list            func(ctx context.Context) ([]*models.Restaurant, error)
	listByCuisine   func(ctx context.Context, cuisine string) ([]*models.Restaurant, error)
	listByMinRating func(ctx context.Context, minRating float64) ([]*models.Restaurant, error)
	update          func(ctx context.Context, id string, updates map[string]interface{}) (*models.Restaurant, error)
	delete          func(ctx context.Context, id string) ([]*models.Restaurant, error)
}

func (s *stubRestaurantService) Create(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	return s.create(ctx, restaurant)
}

func (s *stubRestaurantService) SearchByCity(ctx context.Context, city string) (*models.Restaurant, error) {
	return s.searchByCity(ctx, city)
}

func (s *stubRestaurantService) GetByName(ctx context.Context, name string) (*models.Restaurant, error) {
	return s.getByName(ctx, name)
}

func (s *stubRestaurantService) List(ctx context.Context) ([]*models.Restaurant, error) {
	return s.list(ctx)
}

func (s *stubRestaurantService) ListByCuisine(ctx context.Context, cuisine string) ([]*models.Restaurant, error) {
	return s.listByCuisine(ctx, cuisine)
}

func (s *stubRestaurantService) ListByMinRating(ctx context.Context, minRating float64) ([]*models.Restaurant, error) {
	return s.listByMinRating(ctx, minRating)
}

func (s *stubRestaurantService) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Restaurant, error) {
	return s.update(ctx, id, updates)
}

func (s *stubRestaurantService) Delete(ctx context.Context, id string) ([]*models.Restaurant, error) {
	return s.delete(ctx, id)
}

type stubMenuService struct {
	addDish    func(ctx context.Context, id string, dish models.Dish) (*models.Restaurant, error)
	removeDish func(ctx context.Context, id string, dishName string) (*models.Restaurant, error)
}

func (s *stubMenuService) AddDish(ctx context.Context, id string, dish models.Dish) (*models.Restaurant, error) {
	return s.addDish(ctx, id, dish)
}

func (s *stubMenuService) RemoveDish(ctx context.Context, id string, dishName string) (*models.Restaurant, error) {
	return s.removeDish(ctx, id, dishName)
}

type stubReviewService struct {
	addReview  func(ctx context.Context, id string, review models.Review) (*models.Restaurant, error)
	getReviews func(ctx context.Context, id string) ([]models.ReviewWithAuthor, error)
}

func (s *stubReviewService) AddReview(ctx context.Context, id string, review models.Review) (*models.Restaurant, error) {
	return s.addReview(ctx, id, review)
}

func (s *stubReviewService) GetReviews(ctx context.Context, id string) ([]models.ReviewWithAuthor, error) {
	return s.getReviews(ctx, id)
}

func newTestRouter(rs *stubRestaurantService, ms *stubMenuService, rvs *stubReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRestaurantRoutes(
		router,
		handlers.NewRestaurantHandler(rs),
		handlers.NewMenuHandler(ms),
		handlers.NewReviewHandler(rvs),
	)
	return router
}

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var decoded map[string]interface{}
	if len(recorder.Body.Bytes()) > 0 {
		if err := json.Unmarshal(recorder.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid json body %q: %v", recorder.Body.String(), err)
		}
	}
	return recorder, decoded
}

func TestCreateRestaurantEndpoint(t *testing.T) {
	rs := &stubRestaurantService{
		create: func(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
			restaurant.ID = primitive.NewObjectID()
			return restaurant, nil
		},
	}
	router := newTestRouter(rs, &stubMenuService{}, &stubReviewService{})

	recorder, body := perform(t, router, http.MethodPost, "/restaurants", gin.H{
		"restaurant": gin.H{"name": "Spice Garden", "cuisine": []string{"Indian"}},
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", recorder.Code, body)
	}
	if body["message"] != utils.MsgRestaurantCreated {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["restaurant"] == nil {
		t.Fatal("expected restaurant in response")
	}
}

func TestGetRestaurantByNameEndpoint(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		rs := &stubRestaurantService{
			getByName: func(ctx context.Context, name string) (*models.Restaurant, error) {
				return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
			},
		}
		router := newTestRouter(rs, &stubMenuService{}, &stubReviewService{})

		recorder, body := perform(t, router, http.MethodGet, "/restaurants/Nowhere", nil)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", recorder.Code)
		}
		if body["message"] != utils.MsgRestaurantNotFound {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("found", func(t *testing.T) {
		rs := &stubRestaurantService{
			getByName: func(ctx context.Context, name string) (*models.Restaurant, error) {
				return &models.Restaurant{Name: name}, nil
			},
		}
		router := newTestRouter(rs, &stubMenuService{}, &stubReviewService{})

		recorder, body := perform(t, router, http.MethodGet, "/restaurants/Spice%20Garden", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		if body["message"] != utils.MsgRestaurantFound {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})
}

func TestListRestaurantsEndpoint(t *testing.T) {
	t.Run("empty result maps to 404", func(t *testing.T) {
		rs := &stubRestaurantService{
			list: func(ctx context.Context) ([]*models.Restaurant, error) {
				return nil, nil
			},
		}
		router := newTestRouter(rs, &stubMenuService{}, &stubReviewService{})

		recorder, body := perform(t, router, http.MethodGet, "/restaurants", nil)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", recorder.Code)
		}
		if body["message"] != utils.MsgNoRestaurants {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSearchRestaurantsEndpoint(t *testing.T) {
	t.Run("missing location maps to 400", func(t *testing.T) {
		router := newTestRouter(&stubRestaurantService{}, &stubMenuService{}, &stubReviewService{})

		recorder, _ := perform(t, router, http.MethodGet, "/restaurants/search", nil)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", recorder.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		rs := &stubRestaurantService{
			searchByCity: func(ctx context.Context, city string) (*models.Restaurant, error) {
				return &models.Restaurant{Name: "Spice Garden", City: city}, nil
			},
		}
		router := newTestRouter(rs, &stubMenuService{}, &stubReviewService{})

		recorder, body := perform(t, router, http.MethodGet, "/restaurants/search?location=Mumbai", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		if body["restaurants"] == nil {
			t.Fatalf("expected restaurants field, got %v", body)
		}
	})
}

func TestMinRatingEndpoint(t *testing.T) {
	router := newTestRouter(&stubRestaurantService{}, &stubMenuService{}, &stubReviewService{})

	recorder, _ := perform(t, router, http.MethodGet, "/restaurants/rating/notanumber", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestDeleteRestaurantEndpoint(t *testing.T) {
	t.Run("missing restaurant maps to 404, not 500", func(t *testing.T) {
		rs := &stubRestaurantService{
			delete: func(ctx context.Context, id string) ([]*models.Restaurant, error) {
				return nil, utils.NewNotFoundError(utils.ResourceRestaurant)
			},
		}
		router := newTestRouter(rs, &stubMenuService{}, &stubReviewService{})

		recorder, _ := perform(t, router, http.MethodDelete, "/restaurants/"+primitive.NewObjectID().Hex(), nil)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", recorder.Code)
		}
	})

	t.Run("returns remaining list", func(t *testing.T) {
		rs := &stubRestaurantService{
			delete: func(ctx context.Context, id string) ([]*models.Restaurant, error) {
				return []*models.Restaurant{{Name: "Trattoria"}}, nil
			},
		}
		router := newTestRouter(rs, &stubMenuService{}, &stubReviewService{})

		recorder, body := perform(t, router, http.MethodDelete, "/restaurants/"+primitive.NewObjectID().Hex(), nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		if body["message"] != utils.MsgRestaurantDeleted {
			t.Fatalf("unexpected message: %v", body["message"])
		}
		if body["restaurant"] == nil {
			t.Fatal("expected remaining list under restaurant field")
		}
	})
}

func TestMenuEndpoints(t *testing.T) {
	t.Run("add dish", func(t *testing.T) {
		ms := &stubMenuService{
			addDish: func(ctx context.Context, id string, dish models.Dish) (*models.Restaurant, error) {
				return &models.Restaurant{Menu: []models.Dish{dish}}, nil
			},
		}
		router := newTestRouter(&stubRestaurantService{}, ms, &stubReviewService{})

		recorder, body := perform(t, router, http.MethodPost,
			"/restaurants/"+primitive.NewObjectID().Hex()+"/menu",
			gin.H{"dish": gin.H{"name": "Biryani", "price": 12}})
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %v", recorder.Code, body)
		}
		if body["message"] != utils.MsgDishAdded {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})

	t.Run("remove dish", func(t *testing.T) {
		ms := &stubMenuService{
			removeDish: func(ctx context.Context, id string, dishName string) (*models.Restaurant, error) {
				return &models.Restaurant{}, nil
			},
		}
		router := newTestRouter(&stubRestaurantService{}, ms, &stubReviewService{})

		recorder, body := perform(t, router, http.MethodDelete,
			"/restaurants/"+primitive.NewObjectID().Hex()+"/menu/Pasta", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		if body["message"] != utils.MsgDishRemoved {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})
}

func TestReviewEndpoints(t *testing.T) {
	t.Run("add review", func(t *testing.T) {
		rvs := &stubReviewService{
			addReview: func(ctx context.Context, id string, review models.Review) (*models.Restaurant, error) {
				return &models.Restaurant{Reviews: []models.Review{review}, AverageRating: review.Rating}, nil
			},
		}
		router := newTestRouter(&stubRestaurantService{}, &stubMenuService{}, rvs)

		recorder, body := perform(t, router, http.MethodPost,
			"/restaurants/"+primitive.NewObjectID().Hex()+"/reviews",
			gin.H{"reviewData": gin.H{"rating": 4, "text": "solid", "userId": primitive.NewObjectID().Hex()}})
		if recorder.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %v", recorder.Code, body)
		}
		if body["message"] != utils.MsgReviewAdded {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})

	t.Run("get reviews resolves route param", func(t *testing.T) {
		wantID := primitive.NewObjectID().Hex()
		var gotID string
		rvs := &stubReviewService{
			getReviews: func(ctx context.Context, id string) ([]models.ReviewWithAuthor, error) {
				gotID = id
				return []models.ReviewWithAuthor{
					{ReviewText: "amazing", User: &models.UserProfile{Username: "alice"}},
				}, nil
			},
		}
		router := newTestRouter(&stubRestaurantService{}, &stubMenuService{}, rvs)

		recorder, body := perform(t, router, http.MethodGet, "/restaurants/"+wantID+"/reviews", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		if gotID != wantID {
			t.Fatalf("expected id %q passed through, got %q", wantID, gotID)
		}
		if body["message"] != utils.MsgReviewsFound {
			t.Fatalf("unexpected message: %v", body["message"])
		}
		reviews, ok := body["reviews"].([]interface{})
		if !ok || len(reviews) != 1 {
			t.Fatalf("expected one review, got %v", body["reviews"])
		}
	})
}
