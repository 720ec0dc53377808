package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/e-library/library/app"
	"github.com/Astemirdum/e-library/library/config"
)

// @title       e-library API
// @version     1.0
// @BasePath    /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env loaded:", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
