package main

import (
	"tripdesk/config"
	"tripdesk/di"
	"tripdesk/shared/logger"
)

// @title TripDesk API
// @version 1.0
// @description Administrative backend for travel bookings: flights, tours, hotels, rooms and rental cars.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
