package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"depths-of-the-abyss/internal/api"
	"depths-of-the-abyss/internal/config"
	"depths-of-the-abyss/internal/data"
	"depths-of-the-abyss/internal/sim"
	"depths-of-the-abyss/internal/telemetry"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables only")
	}

	balancePath := getEnvWithDefault("BALANCE_PATH", "")
	appConfig, err := config.Load(balancePath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := telemetry.NewLogger(telemetry.LoggingConfig{
		Level:  getEnvWithDefault("LOG_LEVEL", "info"),
		Format: getEnvWithDefault("LOG_FORMAT", "console"),
	})
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("depths of the abyss demo host starting",
		zap.Int("tick_rate", appConfig.Engine.TickRate),
		zap.Int("port", appConfig.Server.Port),
	)

	var doc *data.Document
	dataPath := getEnvWithDefault("DATA_PATH", "")
	if dataPath != "" {
		d, err := data.Load(dataPath)
		if err != nil {
			logger.Warn("failed to load data document, falling back to defaults", zap.Error(err))
			doc = data.DefaultDocument()
		} else {
			doc = d
		}
	} else {
		doc = data.DefaultDocument()
	}

	newRun := func(seed uint64, difficulty string, doc *data.Document) (api.Engine, error) {
		return sim.NewRunWithBalance(seed, difficulty, doc, appConfig.Balance)
	}
	rt := api.NewRuntime(doc, newRun)
	server := api.NewServer(rt)

	addr := ":" + strconv.Itoa(appConfig.Server.Port)
	go func() {
		logger.Info("api server listening", zap.String("addr", addr))
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server exited", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	server.Stop()
}

func getEnvWithDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
