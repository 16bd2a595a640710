package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/battariah/storefront-api/cart"
	"github.com/battariah/storefront-api/database"
	"github.com/battariah/storefront-api/models"
	"github.com/battariah/storefront-api/pricing"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// loadUserCart reads the user's cart document, returning an empty cart when
// none exists yet.
func loadUserCart(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	var userCart models.Cart
	err := database.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&userCart)
	if err == mongo.ErrNoDocuments {
		return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	return userCart, err
}

func saveUserCart(ctx context.Context, userCart models.Cart) error {
	userCart.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := database.CartCollection.ReplaceOne(ctx, bson.M{"userId": userCart.UserID}, userCart, opts)
	return err
}

func cartResponse(ctx context.Context, items []models.CartItem) gin.H {
	resp := gin.H{
		"items":      items,
		"totalItems": cart.TotalItems(items),
		"totalPrice": cart.Subtotal(items),
	}
	if s, err := loadSettings(ctx); err == nil {
		resp["totalPriceDisplay"] = pricing.FormatPrice(cart.Subtotal(items), s)
	}
	return resp
}

func AddToCart(c *gin.Context) {
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

	userId, _ := c.Get("userId")
	objUserID, _ := primitive.ObjectIDFromHex(userId.(string))
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

	userCart, err := loadUserCart(ctx, objUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	// Stock is server-authoritative: the new line quantity may not exceed it.
	newQty := body.Quantity
	if existing := cart.Find(userCart.Items, objProductID); existing != nil {
		newQty += existing.Quantity
	}
	if newQty > product.Stock {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity exceeds available stock"})
		return
	}

	userCart.Items = cart.Add(userCart.Items, snapshotItem(product, body.Quantity))

	if err := saveUserCart(ctx, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "data": cartResponse(ctx, userCart.Items)})
}

func GetCart(c *gin.Context) {
	userId, _ := c.Get("userId")
	objUserID, _ := primitive.ObjectIDFromHex(userId.(string))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userCart, err := loadUserCart(ctx, objUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": cartResponse(ctx, userCart.Items)})
}

func UpdateCart(c *gin.Context) {
	userIDHex := c.MustGet("userId").(string)
	userID, _ := primitive.ObjectIDFromHex(userIDHex)

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

	userCart, err := loadUserCart(ctx, userID)
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

	items, ok := cart.SetQuantity(userCart.Items, productObjID, *body.Quantity)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		return
	}
	userCart.Items = items

	if err := saveUserCart(ctx, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	if *body.Quantity <= 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "data": cartResponse(ctx, userCart.Items)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": cartResponse(ctx, userCart.Items)})
}

func RemoveFromCart(c *gin.Context) {
	userIDHex := c.MustGet("userId").(string)
	userID, _ := primitive.ObjectIDFromHex(userIDHex)

	productId := c.Param("productId")
	productObjID, err := primitive.ObjectIDFromHex(productId)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userCart, err := loadUserCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	if cart.Find(userCart.Items, productObjID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		return
	}

	userCart.Items = cart.Remove(userCart.Items, productObjID)

	if err := saveUserCart(ctx, userCart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "data": cartResponse(ctx, userCart.Items)})
}

func ClearCart(c *gin.Context) {
	userIDHex := c.MustGet("userId").(string)
	userID, _ := primitive.ObjectIDFromHex(userIDHex)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.CartCollection.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
