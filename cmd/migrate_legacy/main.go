// Importador one-shot del volcado JSON del sitio legacy a Postgres.
//
// Uso:
//
//	migrate_legacy -file dump.json [-user <admin-user-id>]
//
// El volcado trae las colecciones del sitio anterior:
//
//	{"content":{...},"services":[...],"plans":[...],"products":[...],
//	 "episodes":[...],"leads":[...]}
//
// Las claves de negocio duplicadas se actualizan en lugar de insertarse;
// cualquier otro fallo aborta con exit code distinto de cero.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/goccy/go-json"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/agencia-api/pkg/config"
	"github.com/jhoicas/agencia-api/pkg/logger"
)

// legacyDump estructura del archivo exportado por el sitio anterior.
type legacyDump struct {
	Content  map[string]dto.UpsertContentRequest `json:"content"`
	Services []dto.CreateServiceRequest          `json:"services"`
	Plans    []dto.CreatePlanRequest             `json:"plans"`
	Products []dto.CreateProductRequest          `json:"products"`
	Episodes []dto.CreateBlogPostRequest         `json:"episodes"`
	Leads    []dto.LegacyLeadRecord              `json:"leads"`
}

func main() {
	var (
		file   = flag.String("file", "", "ruta del volcado JSON legacy")
		userID = flag.String("user", "", "user id que firma los registros importados")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *file == "" {
		log.Fatal().Msg("falta -file con el volcado JSON")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("leer volcado")
	}
	var dump legacyDump
	if err := json.Unmarshal(raw, &dump); err != nil {
		log.Fatal().Err(err).Msg("parsear volcado")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	contentUC := usecase.NewContentUseCase(postgres.NewContentRepository(pool))
	serviceUC := usecase.NewServiceUseCase(postgres.NewServiceRepository(pool), txRunner)
	planUC := usecase.NewPlanUseCase(postgres.NewPlanRepository(pool), txRunner)
	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool), txRunner)
	blogPostUC := usecase.NewBlogPostUseCase(postgres.NewBlogPostRepository(pool), txRunner)
	leadUC := usecase.NewLeadUseCase(postgres.NewLeadRepository(pool))

	written, err := contentUC.ImportLegacy(*userID, dump.Content)
	if err != nil {
		log.Fatal().Err(err).Msg("importar content")
	}
	log.Info().Int("written", written).Msg("content importado")

	ins, upd, err := serviceUC.ImportLegacy(*userID, dump.Services)
	if err != nil {
		log.Fatal().Err(err).Msg("importar services")
	}
	log.Info().Int("inserted", ins).Int("updated", upd).Msg("services importados")

	ins, upd, err = planUC.ImportLegacy(*userID, dump.Plans)
	if err != nil {
		log.Fatal().Err(err).Msg("importar plans")
	}
	log.Info().Int("inserted", ins).Int("updated", upd).Msg("plans importados")

	ins, upd, err = productUC.ImportLegacy(*userID, dump.Products)
	if err != nil {
		log.Fatal().Err(err).Msg("importar products")
	}
	log.Info().Int("inserted", ins).Int("updated", upd).Msg("products importados")

	ins, upd, err = blogPostUC.ImportLegacy(*userID, dump.Episodes)
	if err != nil {
		log.Fatal().Err(err).Msg("importar episodes")
	}
	log.Info().Int("inserted", ins).Int("updated", upd).Msg("episodes importados")

	leads, err := leadUC.ImportLegacy(dump.Leads)
	if err != nil {
		log.Fatal().Err(err).Msg("importar leads")
	}
	log.Info().Int("inserted", leads).Msg("leads importados")

	log.Info().Msg("migración completada")
}
