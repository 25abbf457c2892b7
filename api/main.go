package main

import (
	"os"

	"merchant/api/internal/app"
	"merchant/api/internal/config"
	"merchant/api/internal/infra/nats"
	"merchant/api/internal/infra/postgres"
	"merchant/api/internal/infra/redis"
	"merchant/api/internal/infra/s3"
	"merchant/api/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(os.Getenv("ENVPATH"))
	if err != nil {
		panic("Can't load .env file: " + err.Error())
	}

	config := config.ReadConfig()
	config.DB = postgres.Init(config)

	unixLogger := logger.Init(config)

	app := &app.App{
		Config: config,
		Db:     config.DB,
		Redis:  redis.Init(config),
		S3:     s3.Init(config),
		Log:    unixLogger,
	}

	if config.UsesNats() {
		app.NatsInfra = nats.Init(config, unixLogger)
	}

	app.Start()
}
