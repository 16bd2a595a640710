package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/battariah/storefront-api/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupRouter registers the real routes against an unreachable MongoDB so
// queries fail fast instead of hanging; handler param parsing still runs.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50*time.Millisecond))
	require.NoError(t, err)
	database.DB = client.Database("storefront_test")
	database.InitCollections()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func TestProductReviewsRouteParsesProductID(t *testing.T) {
	r := setupRouter(t)

	// a well-formed product id must reach the review query, not fail at
	// param parsing
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex()+"/reviews", nil)
	r.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "Invalid product ID")
}

func TestProductReviewsRouteRejectsMalformedID(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-an-id/reviews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid product ID")
}
