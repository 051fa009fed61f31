package handler

import (
	"hotelmanager/config"
	"hotelmanager/di"
	"hotelmanager/shared/logger"
	"net/http"
	"os"
	"sync"

	transport "hotelmanager/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves the console from a serverless function. The service graph is
// built on the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.UseJSON(cfg, os.Stdout)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
