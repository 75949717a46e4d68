package main

// go run cmd/warp_ships/main.go

import (
	"context"
	"io"

	"warp_ships/internal/app/config"
	"warp_ships/internal/app/handler"
	"warp_ships/internal/app/pkg"
	"warp_ships/internal/app/repository"
	"warp_ships/internal/app/service"
	"warp_ships/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "warp_ships/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Warp Ships API
// @version 1.0
// @description List, create and delete starships.
// @BasePath /
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	utils.InitLogger(conf.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	rep, errRep := repository.New(conf.DatabaseURL)
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}
	closers := []io.Closer{rep}

	var cache service.ListCache
	if conf.RedisEndpoint != "" {
		client, err := utils.NewRedisClient(context.Background(), conf.RedisEndpoint, conf.RedisPassword)
		if err != nil {
			logrus.Warnf("redis unavailable, running without list cache: %v", err)
		} else {
			shipCache := repository.NewShipCache(client, conf.CacheTTL)
			cache = shipCache
			closers = append(closers, shipCache)
		}
	}

	svc := service.NewShipService(service.NewSharedDB(rep), cache)
	hand := handler.NewHandler(svc, conf.RequestTimeout)
	router := handler.NewRouter(hand)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand, closers...)
	application.RunApp()
}
