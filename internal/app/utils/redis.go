package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient создаёт клиент Redis и проверяет соединение
func NewRedisClient(ctx context.Context, endpoint, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        endpoint,
		Password:    password,
		DB:          0,
		DialTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	logrus.Infof("redis connected: %s", endpoint)
	return client, nil
}
