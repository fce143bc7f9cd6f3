package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"menuboard/internal/catalog"
	"menuboard/internal/manager"
	"menuboard/internal/public"
	"menuboard/internal/router"
	"menuboard/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	catalogURL := os.Getenv("CATALOG_API_URL")
	if catalogURL == "" {
		log.Fatal("Missing env var: CATALOG_API_URL")
	}

	// ───────────────────────── CATALOG ─────────────────────────
	api := catalog.NewClient(catalogURL)
	managerCache := catalog.NewCache()
	publicCache := catalog.NewCache()

	// ───────────────────────── STORAGE ─────────────────────────
	images := storage.NewImageIndex()

	var uploads manager.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		uploads = r2
	} else {
		log.Println("R2 not configured; image uploads disabled")
	}

	// ───────────────────────── CONTROLLERS ─────────────────────────
	managerCtrl := manager.NewController(api, managerCache, uploads, images)
	publicCtrl := public.NewController(api, publicCache, images)

	// ───────────────────────── START ─────────────────────────
	r := router.New(managerCtrl, publicCtrl)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	log.Printf("menuboard running at http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
