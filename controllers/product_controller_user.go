package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/battariah/storefront-api/catalog"
	"github.com/battariah/storefront-api/database"
	"github.com/battariah/storefront-api/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetProductsPublic returns active products narrowed by the query params:
// search, brands, categories, min_price, max_price, sort. Filtering happens
// in memory over the full list; the catalog is small.
func GetProductsPublic(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, bson.M{"active": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var products []models.Product = []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	query := queryFromParams(c)
	filtered := query.Apply(products)

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "count": len(filtered), "data": filtered})
}

func queryFromParams(c *gin.Context) catalog.Query {
	q := catalog.Query{
		Search: c.Query("search"),
		Sort:   catalog.Sort(c.Query("sort")),
	}
	if brands := c.Query("brands"); brands != "" {
		q.Brands = strings.Split(brands, ",")
	}
	if categories := c.Query("categories"); categories != "" {
		for _, raw := range strings.Split(categories, ",") {
			if id, err := primitive.ObjectIDFromHex(raw); err == nil {
				q.Categories = append(q.Categories, id)
			}
		}
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		q.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		q.MaxPrice = v
	}
	return q
}

func GetProductByID(c *gin.Context) {
	id := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	product, err := fetchProduct(ctx, objID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": product})
}
