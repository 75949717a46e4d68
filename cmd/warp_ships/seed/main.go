package main

import (
	"context"

	"warp_ships/internal/app/config"
	"warp_ships/internal/app/ds"
	"warp_ships/internal/app/repository"

	"github.com/sirupsen/logrus"
)

func faction(name string) *string {
	return &name
}

var sampleShips = []ds.NewShip{
	{Name: "USS Enterprise", WarpSpeed: 12, Faction: faction("Starfleet")},
	{Name: "USS Calister", WarpSpeed: 1, Faction: faction("Netflix")},
	{Name: "Black Pearl", WarpSpeed: 0, Faction: faction("Caribeans")},
	{Name: "USS Voyager", WarpSpeed: 6, Faction: faction("Starfleet")},
}

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

	ctx := context.Background()
	for _, newShip := range sampleShips {
		ship, err := rep.InsertShip(ctx, newShip)
		if err != nil {
			logrus.Fatalf("error seeding %q: %v", newShip.Name, err)
		}
		logrus.Infof("inserted ship id=%d name=%q", ship.ID, ship.Name)
	}

	ships, err := rep.ListShips(ctx, ds.ListShipsFilter{})
	if err != nil {
		logrus.Fatalf("error listing ships: %v", err)
	}
	for _, ship := range ships {
		f := ""
		if ship.Faction != nil {
			f = *ship.Faction
		}
		logrus.WithFields(logrus.Fields{
			"id":         ship.ID,
			"warp_speed": ship.WarpSpeed,
			"faction":    f,
		}).Infof("Ship in store: %s", ship.Name)
	}
}
