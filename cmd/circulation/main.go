package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-circulation/circulation/app"
	"github.com/Astemirdum/library-circulation/circulation/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env loaded: ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
