package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"trustgate/cmd/api/router"
	"trustgate/internal/logger"
	"trustgate/config"
)

// @title           Trustgate Marketing API
// @version         1.0
// @description     Blog/webinar CMS, site settings, security-scan proxy and CRM relay for the Trustgate marketing site
// @BasePath        /
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	r, err := router.New()
	if err != nil {
		log.Fatal(err)
	}

	port := config.GetConfig().Port
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil && p > 0 {
		port = p
	}

	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
