package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/superfeelapi/goStorySymphony/business/mapping"
	"github.com/superfeelapi/goStorySymphony/business/worker"
	"github.com/superfeelapi/goStorySymphony/foundation/config"
	"github.com/superfeelapi/goStorySymphony/foundation/logger"
	"github.com/superfeelapi/goStorySymphony/foundation/pubsub"
	"github.com/superfeelapi/goStorySymphony/foundation/websocket"
)

var (
	version   string
	buildTime string
)

func main() {
	// =================================================================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			Host string `conf:"default:0.0.0.0:8080"`
		}
		Classifier struct {
			ApiEndpoint string `conf:"default:http://localhost:5001"`
		}
		Transcriber struct {
			ApiEndpoint string `conf:"default:http://localhost:5002"`
		}
		Session struct {
			DwellDuration    time.Duration `conf:"default:2s"`
			MinFrameInterval time.Duration `conf:"default:250ms"`
		}
		Mapping struct {
			OverridesPath string `conf:"noprint"`
		}
		Logger struct {
			LogDirectory string `conf:"noprint"`
		}
	}{
		Version: conf.Version{
			Build: version,
			Desc:  buildTime,
		},
	}

	help, err := conf.Parse("STORY", &cfg)
	if err != nil {
		fmt.Println(help)
		os.Exit(1)
	}

	// =================================================================================================================
	// Application Logger

	log, err := logger.New(cfg.Logger.LogDirectory, "goStorySymphony")
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	out, err := conf.String(&cfg)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}
	log.Infow("startup", "config", out)

	// =================================================================================================================
	// Mapping Table

	overrides, err := config.LoadOverrides(cfg.Mapping.OverridesPath)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}

	table, err := mapping.NewWithOverrides(overrides)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Session Hub

	broker := pubsub.NewBroker()

	hub := websocket.NewHub(worker.Settings{
		Config: worker.Config{
			ClassifierEndpoint:  cfg.Classifier.ApiEndpoint,
			TranscriberEndpoint: cfg.Transcriber.ApiEndpoint,
			DwellDuration:       cfg.Session.DwellDuration,
			MinFrameInterval:    cfg.Session.MinFrameInterval,
		},
		Logger: log,
		Table:  table,
		Broker: broker,
	}, broker, log)

	// =================================================================================================================
	// HTTP Server

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/ws", hub.HandleWebSocket)
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": hub.SessionCount(),
		})
	})

	log.Infow("startup", "status", "listening", "host", cfg.Web.Host)
	if err := e.Start(cfg.Web.Host); err != nil {
		log.Errorw("shutdown", "ERROR", err)
		os.Exit(1)
	}
}
