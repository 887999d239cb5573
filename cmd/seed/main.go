// Seeds the master account and starter reference lists. Safe to run
// repeatedly: existing rows are left untouched.
package main

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesagem/internal/config"
	"pesagem/internal/db"
	"pesagem/internal/logger"
	"pesagem/internal/model"
	"pesagem/internal/repository"
)

const (
	masterUsername = "admin"
	masterPassword = "123"
)

var starterReferencias = map[string][]string{
	model.TableProdutos: {"Soja", "Milho", "Farelo de Soja"},
	model.TableOrigens:  {"Rondonópolis", "Sorriso"},
	model.TableDestinos: {"Porto de Santos", "Paranaguá"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel)

	gormDB, err := db.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Lancamento{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}
	for _, table := range model.ReferenciaTables {
		if err := gormDB.Table(table).AutoMigrate(&model.Referencia{}); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("auto-migrate")
		}
	}

	ctx := context.Background()

	if err := seedMaster(ctx, repository.NewUserRepository(gormDB)); err != nil {
		log.Fatal().Err(err).Msg("seed master user")
	}
	log.Info().Str("username", masterUsername).Msg("master account ready")

	for table, nomes := range starterReferencias {
		repo := repository.NewReferenciaRepository(gormDB, table)
		for _, nome := range nomes {
			if err := repo.Create(ctx, &model.Referencia{Nome: nome}); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				log.Fatal().Err(err).Str("table", table).Str("nome", nome).Msg("seed referencia")
			}
		}
		log.Info().Str("table", table).Msg("reference list ready")
	}
}

func seedMaster(ctx context.Context, users repository.UserRepository) error {
	if _, err := users.FindByUsername(ctx, masterUsername); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(masterPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return users.Create(ctx, &model.User{
		Username:     masterUsername,
		PasswordHash: string(hashed),
		Role:         model.RoleMaster,
		NomeCompleto: "Administrador",
	})
}
