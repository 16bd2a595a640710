package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/battariah/storefront-api/cart"
	"github.com/battariah/storefront-api/database"
	"github.com/battariah/storefront-api/models"
	"github.com/battariah/storefront-api/pricing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Checkout turns the user's cart into an order. Stock is validated for every
// line, decremented with rollback on failure, and tax is captured as an
// absolute amount from the settings snapshot. On any failure the cart is left
// intact so the user can retry.
func Checkout(c *gin.Context) {
	userId, _ := c.Get("userId")
	objUserID, _ := primitive.ObjectIDFromHex(userId.(string))

	var body struct {
		DeliveryAddress models.DeliveryAddress `json:"deliveryAddress" binding:"required"`
		Location        string                 `json:"location"`
		PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout details"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userCart, err := loadUserCart(ctx, objUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	if len(userCart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	settings, err := loadSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	for _, item := range userCart.Items {
		product, err := fetchProduct(ctx, item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Product %s is no longer available", item.Name)})
			return
		}
		if item.Quantity > product.Stock {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Not enough stock for %s, available: %d", product.Name, product.Stock),
			})
			return
		}
	}

	var orderItems []models.OrderItem
	var updatedProducts []struct {
		ProductID primitive.ObjectID
		Quantity  int
	}

	for _, item := range userCart.Items {
		result, err := database.ProductCollection.UpdateOne(
			ctx,
			bson.M{"_id": item.ProductID, "stock": bson.M{"$gte": item.Quantity}},
			bson.M{"$inc": bson.M{"stock": -item.Quantity}},
		)
		if err != nil || result.ModifiedCount == 0 {
			rollbackStock(ctx, updatedProducts)
			c.JSON(http.StatusConflict, gin.H{"error": "Failed to reserve stock"})
			return
		}

		updatedProducts = append(updatedProducts, struct {
			ProductID primitive.ObjectID
			Quantity  int
		}{ProductID: item.ProductID, Quantity: item.Quantity})

		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	subtotal := cart.Subtotal(userCart.Items)
	tax := pricing.CalculateTax(subtotal, settings)

	order := models.Order{
		ID:              primitive.NewObjectID(),
		Number:          newOrderNumber(),
		UserID:          objUserID,
		Items:           orderItems,
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingFee:     settings.ShippingFee,
		Total:           pricing.CheckoutTotal(subtotal, settings),
		DeliveryAddress: body.DeliveryAddress,
		Location:        body.Location,
		PaymentMethod:   body.PaymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	_, err = database.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		rollbackStock(ctx, updatedProducts)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	_, _ = database.CartCollection.DeleteOne(ctx, bson.M{"userId": objUserID})

	c.JSON(http.StatusOK, gin.H{"message": "Checkout success", "data": order})
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func GetOrders(c *gin.Context) {
	userId, _ := c.Get("userId")
	objUserID, _ := primitive.ObjectIDFromHex(userId.(string))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.OrderCollection.Find(ctx, bson.M{"userId": objUserID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var orders []models.Order = []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": orders})
}

func GetOrderByID(c *gin.Context) {
	userId, _ := c.Get("userId")
	objUserID, _ := primitive.ObjectIDFromHex(userId.(string))

	orderId := c.Param("id")
	orderObjID, err := primitive.ObjectIDFromHex(orderId)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	err = database.OrderCollection.FindOne(ctx, bson.M{"_id": orderObjID, "userId": objUserID}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": order})
}

// CancelOrder lets a user cancel their own order while it is still pending.
func CancelOrder(c *gin.Context) {
	userId, _ := c.Get("userId")
	objUserID, err := primitive.ObjectIDFromHex(userId.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	orderId := c.Param("id")
	orderObjID, err := primitive.ObjectIDFromHex(orderId)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":    orderObjID,
		"userId": objUserID,
		"status": models.OrderStatusPending,
	}
	update := bson.M{
		"$set": bson.M{"status": models.OrderStatusCancelled, "updatedAt": time.Now()},
	}

	result, err := database.OrderCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order not found or cannot be cancelled"})
		return
	}

	restoreOrderStock(ctx, orderObjID)

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

func rollbackStock(ctx context.Context, updated []struct {
	ProductID primitive.ObjectID
	Quantity  int
}) {
	for _, u := range updated {
		_, _ = database.ProductCollection.UpdateOne(
			ctx,
			bson.M{"_id": u.ProductID},
			bson.M{"$inc": bson.M{"stock": u.Quantity}},
		)
	}
}

// restoreOrderStock puts a cancelled order's quantities back on the shelf.
func restoreOrderStock(ctx context.Context, orderID primitive.ObjectID) {
	var order models.Order
	if err := database.OrderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		return
	}
	for _, item := range order.Items {
		_, _ = database.ProductCollection.UpdateOne(
			ctx,
			bson.M{"_id": item.ProductID},
			bson.M{"$inc": bson.M{"stock": item.Quantity}},
		)
	}
}
