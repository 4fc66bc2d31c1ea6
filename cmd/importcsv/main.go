// Importador one-shot do export CSV do Typebot.
//
//	go run ./cmd/importcsv -file typebot-export.csv
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/grautech/leadpipe/internal/importer"
	"github.com/grautech/leadpipe/internal/infra/database"
	"github.com/grautech/leadpipe/internal/usecase"
)

func main() {
	godotenv.Load()

	filePath := flag.String("file", "", "caminho do CSV exportado do Typebot")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("uso: importcsv -file <arquivo.csv>")
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	leadRepo := database.NewLeadRepository(db)
	tagRepo := database.NewTagRepository(db)
	activityRepo := database.NewActivityRepository(db)
	stageRepo := database.NewStageRepository(db)

	pipeline := usecase.NewLoadPipelineUseCase(stageRepo)

	// Sem fila no import: é um processo manual, rodado uma vez.
	ingest := usecase.NewIngestLeadUseCase(leadRepo, tagRepo, activityRepo, pipeline, nil)

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	summary, err := importer.NewImporter(ingest).Run(context.Background(), file)
	if err != nil {
		log.Fatalf("❌ Import falhou: %v", err)
	}

	log.Printf("✅ Import concluído: %d criados, %d pulados, %d com falha",
		summary.Created, summary.Skipped, summary.Failed)
}
