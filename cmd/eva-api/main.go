package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"eva-analytics/internal/api"
	"eva-analytics/internal/api/handler"
	"eva-analytics/internal/dataset"
	"eva-analytics/internal/store"
	"eva-analytics/pkg/router"
	"eva-analytics/pkg/utils"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// cropScope maps the EVA_CROP setting to a loader scope. The default
// covers the whole cereal group; "arroz" narrows to rice.
func cropScope() dataset.CropScope {
	if strings.EqualFold(env("EVA_CROP", ""), "arroz") {
		return dataset.ScopeRice
	}
	return dataset.ScopeCereals
}

// @title EVA Analytics API
// @version 1.0
// @description Interactive analytics over the municipal agricultural survey: filtering, aggregation and exports for cereal production data.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	source := env("EVA_SOURCE_URL", "data/evaluaciones_agropecuarias.csv")
	dbPath := env("EVA_DB_PATH", "eva.db")
	addr := env("EVA_ADDR", ":8080")
	outputDir := env("EVA_OUTPUT_DIR", "outputs")
	scope := cropScope()

	// Init DB
	if err := store.InitDB(dbPath); err != nil {
		log.Fatalf("❌ Failed to init database: %v", err)
	}

	// Load the survey once at startup so a malformed source fails fast
	loader := dataset.NewLoader()
	ds, err := loader.Load(context.Background(), source, scope)
	if err != nil {
		log.Fatalf("❌ Failed to load survey data: %v", err)
	}

	snapshotID := uuid.New().String()
	if err := store.SaveSnapshot(snapshotID, source, scope.Group, scope.Crop, ds.FetchedAt, ds.View().Records()); err != nil {
		log.Fatalf("❌ Failed to persist snapshot: %v", err)
	}
	fmt.Printf("📊 Snapshot %s persisted (%d records)\n", snapshotID, ds.Len())

	outputs := utils.NewOutputManager(outputDir)
	if err := outputs.EnsureOutputDirExists(); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}
	handler.Init(loader, source, scope, outputs, snapshotID)

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r)

	// Start server
	r.Start(addr)
}
