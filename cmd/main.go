package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ronak1998bacancy/E-commerce/catalog"
	"github.com/ronak1998bacancy/E-commerce/config"
	"github.com/ronak1998bacancy/E-commerce/controllers"
	"github.com/ronak1998bacancy/E-commerce/database"
	"github.com/ronak1998bacancy/E-commerce/routes"
)

func main() {

	config.LoadEnv()

	var loader catalog.Loader
	switch source := config.GetEnv("CATALOG_SOURCE", "file"); source {
	case "file":
		loader = catalog.FileLoader{Path: config.GetEnv("DATA_FILE", "data.json")}
	case "mongo":
		if err := database.ConnectMongo(); err != nil {
			log.Fatal("MongoDB connection error: ", err)
		}
		loader = catalog.MongoLoader{Collection: database.ProductCollection}
	default:
		log.Fatalf("Unknown CATALOG_SOURCE %q (want file or mongo)", source)
	}

	store := catalog.NewStore(loader)
	if err := store.Load(); err != nil {
		log.Fatal("Catalog load error: ", err)
	}
	log.Printf("Loaded %d products in %d categories", store.Count(), len(store.Categories()))

	controllers.Setup(store)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	routes.RegisterRoutes(r, config.GetEnv("STATIC_DIR", "static"))

	port := config.GetEnv("PORT", "8080")
	r.Run(":" + port)
}
