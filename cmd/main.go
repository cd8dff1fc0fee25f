package main

import (
	"os"

	"github.com/AnakhaSuresh15/nibblenotes-backend/config"
	"github.com/AnakhaSuresh15/nibblenotes-backend/routes"
	"github.com/AnakhaSuresh15/nibblenotes-backend/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
