package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicdash/clinicdash/handlers"
	"github.com/clinicdash/clinicdash/internal/config"
	"github.com/clinicdash/clinicdash/internal/content"
	"github.com/clinicdash/clinicdash/internal/doctor"
)

// Standalone doctor-proxy binary: just the CRUD + edit-session routes against
// the remote content API, no Redis, no gate. Useful for local frontend work.
func main() {
	port := os.Getenv("DOCTOR_SERVICE_PORT")
	if port == "" {
		port = "5012"
	}

	apiURL := os.Getenv("CONTENT_API_URL")
	if apiURL == "" {
		log.Fatal("CONTENT_API_URL is required")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	client := content.NewClient(config.ContentAPIConfig{
		URL:     apiURL,
		Token:   os.Getenv("CONTENT_API_TOKEN"),
		Timeout: 15 * time.Second,
	})
	store := doctor.NewStore(client)
	session := doctor.NewSession(store)

	handlers.NewDoctorHandler(store, session).Register(r)

	log.Printf("doctor proxy listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
