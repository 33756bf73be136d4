package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	up := miniredis.RunT(t)
	down := miniredis.RunT(t)

	upClient := redis.NewClient(&redis.Options{Addr: up.Addr()})
	downClient := redis.NewClient(&redis.Options{Addr: down.Addr()})
	down.Close()

	status := CheckHealth(context.Background(), []*redis.Client{upClient, downClient}, nil)

	assert.False(t, status.Mongo)
	assert.Equal(t, []bool{true, false}, status.Redis)
	assert.False(t, status.Healthy())
	assert.Equal(t, status, GetHealthStatus())
}

func TestHealthStatusHealthy(t *testing.T) {
	assert.True(t, HealthStatus{Mongo: true, Redis: []bool{true, true}}.Healthy())
	assert.False(t, HealthStatus{Mongo: true, Redis: []bool{true, false}}.Healthy())
}
