package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/padlasalon/salon-booking/internal/config"
	dbpkg "github.com/padlasalon/salon-booking/internal/db"
	"github.com/padlasalon/salon-booking/internal/kv"
	"github.com/padlasalon/salon-booking/internal/logging"
	"github.com/padlasalon/salon-booking/internal/middleware"
	"github.com/padlasalon/salon-booking/internal/routes"
)

func main() {
	_ = godotenv.Load()

	log := logging.New()
	defer log.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	store := kv.NewRedis(rdb)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, store, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
