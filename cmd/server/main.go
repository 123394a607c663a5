package main

import (
	"log"
	"time"

	"personal-finance-backend/internal/config"
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	db := config.InitDB()

	db.AutoMigrate(
		&models.Bank{},
		&models.Account{},
		&models.History{},
		&models.Provision{},
		&models.Tag{},
	)

	// Partial unique indexes: uniqueness holds among live rows only,
	// so a soft-deleted bank code or tag name can be reused.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS banks_code_key ON banks (code) WHERE deleted_at IS NULL`)
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS tags_name_key ON tags (name) WHERE deleted_at IS NULL`)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)

	r.Run(":8080")
}
