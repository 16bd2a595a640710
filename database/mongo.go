package database

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var Client *mongo.Client
var DB *mongo.Database

func ConnectMongo() {
	uri := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	if uri == "" || dbName == "" {
		zap.L().Fatal("MONGO_URI or DB_NAME not set in environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		zap.L().Fatal("MongoDB connection error", zap.Error(err))
	}

	Client = client
	DB = client.Database(dbName)

	zap.L().Info("connected to MongoDB", zap.String("db", dbName))
}

var UserCollection *mongo.Collection
var ProductCollection *mongo.Collection
var CategoryCollection *mongo.Collection
var BrandCollection *mongo.Collection
var BannerCollection *mongo.Collection
var CartCollection *mongo.Collection
var OrderCollection *mongo.Collection
var ReviewCollection *mongo.Collection
var NotificationCollection *mongo.Collection
var MessageCollection *mongo.Collection
var SettingsCollection *mongo.Collection

func InitCollections() {
	UserCollection = DB.Collection("users")
	ProductCollection = DB.Collection("products")
	CategoryCollection = DB.Collection("categories")
	BrandCollection = DB.Collection("brands")
	BannerCollection = DB.Collection("banners")
	CartCollection = DB.Collection("carts")
	OrderCollection = DB.Collection("orders")
	ReviewCollection = DB.Collection("reviews")
	NotificationCollection = DB.Collection("notifications")
	MessageCollection = DB.Collection("messages")
	SettingsCollection = DB.Collection("settings")
}
