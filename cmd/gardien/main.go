package main

import (
	"encoding/base64"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"gardiendutemps.fr/gardien/config"
	"gardiendutemps.fr/gardien/core"
	"gardiendutemps.fr/gardien/store"
	"gardiendutemps.fr/gardien/web/handlers/tracking"
	"gardiendutemps.fr/gardien/web/middlewares"
)

func main() {
	cfgPath := os.Getenv("GARDIEN_CONFIG")
	if cfgPath == "" {
		cfgPath = "gardien.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "root:development@tcp(localhost:3306)/gardien?parseTime=true"
	}

	dm, err := store.New(dsn, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
	}

	events := store.NewEventStore(dm, loc)
	calendar := core.CalendarFromWeekly(cfg.WeeklyHours)

	base64Secret := os.Getenv("GARDIEN_SIGNING_SECRET")
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		tracking.Register(protected, events, calendar)
	}

	r.Run(cfg.Listen)
}
