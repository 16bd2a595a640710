package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/battariah/storefront-api/cart"
	"github.com/battariah/storefront-api/config"
	"github.com/battariah/storefront-api/database"
	"github.com/battariah/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func guestCartKey(guestID string) string {
	return "cart:" + guestID
}

func guestCartTTL() time.Duration {
	return time.Duration(config.GetEnvInt("GUEST_CART_TTL_HOURS", 72)) * time.Hour
}

// loadGuestCart reads the Redis-held cart; a missing key is an empty cart.
func loadGuestCart(ctx context.Context, guestID string) (models.GuestCart, error) {
	raw, err := database.Redis.Get(ctx, guestCartKey(guestID)).Bytes()
	if err == redis.Nil {
		return models.GuestCart{GuestID: guestID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return models.GuestCart{}, err
	}
	var guestCart models.GuestCart
	if err := json.Unmarshal(raw, &guestCart); err != nil {
		return models.GuestCart{}, err
	}
	return guestCart, nil
}

// saveGuestCart writes the cart back and refreshes its TTL.
func saveGuestCart(ctx context.Context, guestCart models.GuestCart) error {
	guestCart.UpdatedAt = time.Now()
	raw, err := json.Marshal(guestCart)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, guestCartKey(guestCart.GuestID), raw, guestCartTTL()).Err()
}

// dropGuestCart discards a guest cart at login. Guest items are not merged;
// the server-side cart for the account wins.
func dropGuestCart(ctx context.Context, guestID string) error {
	return database.Redis.Del(ctx, guestCartKey(guestID)).Err()
}

func guestCartResponse(ctx context.Context, guestCart models.GuestCart) gin.H {
	resp := cartResponse(ctx, guestCart.Items)
	resp["guestId"] = guestCart.GuestID
	return resp
}

// AddToGuestCart mints a guest id when the request carries none and echoes it
// back so the client can persist it.
func AddToGuestCart(c *gin.Context) {
	var body struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	guestID := c.Query("guest_id")
	if guestID == "" {
		guestID = uuid.NewString()
	}

	objProductID, err := primitive.ObjectIDFromHex(body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product, err := fetchProduct(ctx, objProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	guestCart, err := loadGuestCart(ctx, guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	newQty := body.Quantity
	if existing := cart.Find(guestCart.Items, objProductID); existing != nil {
		newQty += existing.Quantity
	}
	if newQty > product.Stock {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity exceeds available stock"})
		return
	}

	guestCart.Items = cart.Add(guestCart.Items, snapshotItem(product, body.Quantity))

	if err := saveGuestCart(ctx, guestCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "data": guestCartResponse(ctx, guestCart)})
}

func GetGuestCart(c *gin.Context) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	guestCart, err := loadGuestCart(ctx, guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": guestCartResponse(ctx, guestCart)})
}

func UpdateGuestCart(c *gin.Context) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return
	}

	productId := c.Param("productId")
	productObjID, err := primitive.ObjectIDFromHex(productId)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	guestCart, err := loadGuestCart(ctx, guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	if *body.Quantity > 0 {
		product, err := fetchProduct(ctx, productObjID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if *body.Quantity > product.Stock {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity exceeds available stock"})
			return
		}
	}

	items, ok := cart.SetQuantity(guestCart.Items, productObjID, *body.Quantity)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		return
	}
	guestCart.Items = items

	if err := saveGuestCart(ctx, guestCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": guestCartResponse(ctx, guestCart)})
}

func RemoveFromGuestCart(c *gin.Context) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return
	}

	productId := c.Param("productId")
	productObjID, err := primitive.ObjectIDFromHex(productId)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	guestCart, err := loadGuestCart(ctx, guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	if cart.Find(guestCart.Items, productObjID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		return
	}

	guestCart.Items = cart.Remove(guestCart.Items, productObjID)

	if err := saveGuestCart(ctx, guestCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "data": guestCartResponse(ctx, guestCart)})
}

func ClearGuestCart(c *gin.Context) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.Redis.Del(ctx, guestCartKey(guestID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
