package config

import (
	"log"

	"rocketry-shop/storage"
)

var Store storage.KV

var redisStore *storage.Redis

// ConnectStorage opens the durable key-value backend. Redis is used when it
// is reachable; otherwise state lives in process memory for the run.
func ConnectStorage() {
	r, err := storage.OpenRedis(AppConfig.RedisURL, AppConfig.RedisAddr, AppConfig.RedisPassword)
	if err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running with in-memory storage")
		Store = storage.NewMemory()
		return
	}

	redisStore = r
	Store = r
	log.Println("Redis storage connected")
}

func CloseStorage() {
	if redisStore != nil {
		redisStore.Close()
		log.Println("Redis storage closed")
	}
}
