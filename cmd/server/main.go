package main

import (
	"fmt"
	"log"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/handler"
	"gamevault/backend/internal/store"

	// Swagger imports
	_ "gamevault/backend/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           GameVault API
// @version         1.0
// @description     CRUD API for an in-memory video game catalog.
// @host            localhost:3000
// @BasePath        /api
func main() {
	// Seed the in-memory catalog
	store.Init()

	router := handler.NewRouter()

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + config.AppConfig.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
