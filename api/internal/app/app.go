package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"merchant/api/internal/config"
	"merchant/api/internal/delivery"
	"merchant/api/internal/infra/dictionary"
	"merchant/api/internal/infra/nats"
	"merchant/api/internal/logger"
	"merchant/api/internal/service"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	cors "github.com/rs/cors/wrapper/gin"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	Db        *gorm.DB
	Redis     *goredis.Client
	S3        *awss3.Client
	NatsInfra *nats.NatsInfra
	Log       logger.Logger
}

func (app *App) Start() {
	defer app.close()

	if app.Config.Prod_env {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery(), cors.Default())

	services := service.NewServices(app.Db, app.Redis, app.S3, app.phoneticsProvider(), app.Log, app.Config)

	{
		h := delivery.InitHandler(services, app.Config, app.Log)

		h.InitAPI(r)
	}

	eChan := make(chan error)
	interrupt := make(chan os.Signal, 1)

	fmt.Println("merchant web is starting on", app.Config.Api.Ipv4)

	go func() {
		err := r.Run(app.Config.Api.Ipv4)
		if err != nil {
			eChan <- fmt.Errorf("listen and serve: %w", err)
		}
	}()

	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-eChan:
		app.Log.TemplHTTPError("app fatal error", app.Config.Api.Ipv4, err)
		return
	case <-interrupt:
		return
	}
}

func (app *App) phoneticsProvider() service.PhoneticsProvider {
	if app.Config.UsesNats() && app.NatsInfra != nil {
		return app.NatsInfra
	}
	return dictionary.New(app.Config.Phonetics.BaseUrl, app.Config.Phonetics.Timeout)
}

func (app *App) close() {
	app.NatsInfra.Close()
	if app.Redis != nil {
		_ = app.Redis.Close()
	}
	if sqlDB, err := app.Db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
