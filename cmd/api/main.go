package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/config"
	dbpkg "github.com/dentalcare-app/clinic-api/internal/db"
	infraRepo "github.com/dentalcare-app/clinic-api/internal/infra/repository"
	"github.com/dentalcare-app/clinic-api/internal/routes"
	"github.com/dentalcare-app/clinic-api/internal/store"
	"github.com/dentalcare-app/clinic-api/internal/store/memory"
)

func main() {

	cfg := config.Load()

	var st store.Store
	switch cfg.StorageDriver {
	case "postgres":
		db := dbpkg.NewDB(cfg)
		st = infraRepo.NewClinicGormRepository(db)
		log.Println("Storage driver: postgres")
	default:
		mem := memory.NewStore()
		mem.Seed()
		st = mem
		log.Println("Storage driver: memory (seeded)")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
