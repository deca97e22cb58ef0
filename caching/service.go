package caching

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/caching/business/payload"
	"encore.app/caching/business/transform"
	"encore.app/caching/cache"
	"encore.app/caching/repository"
	"encore.app/caching/transformer"
)

var cachingDB = sqldb.NewDatabase("caching", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	business payload.Business
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](cachingDB)

	rlog.Info("initializing repository")
	repo := repository.NewRepository(pgxdb)

	transformBusiness := transform.NewTransformBusiness(
		repo.TransformCache,
		transformer.NewSimulated(transformer.DefaultDelay),
	)
	payloadBusiness := payload.NewPayloadBusiness(repo.Payloads, transformBusiness, cache.NewStore())

	return &Service{
		business: payloadBusiness,
	}, nil
}
