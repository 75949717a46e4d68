package main

import (
	"warp_ships/internal/app/config"
	"warp_ships/internal/app/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	rep, err := repository.New(conf.DatabaseURL)
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}
	defer rep.Close()

	if err := rep.Migrate(); err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}

	logrus.Info("Database migration completed")
}
