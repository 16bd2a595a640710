package main

import (
	"github.com/battariah/storefront-api/config"
	"github.com/battariah/storefront-api/database"
	"github.com/battariah/storefront-api/middleware"
	"github.com/battariah/storefront-api/routes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	config.LoadEnv()

	database.ConnectMongo()
	database.InitCollections()
	database.ConnectRedis()

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.SetTrustedProxies(nil)
	routes.RegisterRoutes(r)

	port := config.GetEnv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
