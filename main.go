package main

import (
	"internhub/core/logger"
	"internhub/core/server"
)

// @title InternHub API
// @version 1.0
// @description API backend for InternHub - internships, jobs and placement preparation

// @contact.name API Support
// @contact.email support@internhub.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
