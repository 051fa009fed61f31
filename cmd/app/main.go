package main

import (
	"hotelmanager/config"
	"hotelmanager/di"
	"hotelmanager/shared/logger"
	"os"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSON(cfg, os.Stdout)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
