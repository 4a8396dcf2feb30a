// seed cria os registros mínimos para operar a aplicação: um usuário admin
// e os locais de estoque padrão (loja principal e depósito).
//
// Uso: go run ./cmd/seed
// Lê SEED_ADMIN_EMAIL e SEED_ADMIN_PASSWORD do ambiente (ou do .env).
// É idempotente: se o admin já existe, só garante os locais.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/infrastructure/postgres"
	"github.com/oticavisao/otica-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL e SEED_ADMIN_PASSWORD são obrigatórios")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)

	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar admin: %v\n", err)
		os.Exit(1)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Gerar hash de senha: %v\n", err)
			os.Exit(1)
		}
		now := time.Now().UTC()
		admin := &entity.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Administrador",
			Role:         entity.RoleAdmin,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			fmt.Fprintf(os.Stderr, "Criar admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Admin criado: %s\n", email)
	} else {
		fmt.Printf("Admin já existe: %s\n", email)
	}

	locations, err := locationRepo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar locais: %v\n", err)
		os.Exit(1)
	}
	if len(locations) == 0 {
		now := time.Now().UTC()
		defaults := []*entity.Location{
			{ID: uuid.NewString(), Name: "Loja Principal", Type: entity.LocationTypeLoja, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.NewString(), Name: "Depósito", Type: entity.LocationTypeDeposito, CreatedAt: now, UpdatedAt: now},
		}
		for _, loc := range defaults {
			if err := locationRepo.Create(loc); err != nil {
				fmt.Fprintf(os.Stderr, "Criar local %s: %v\n", loc.Name, err)
				os.Exit(1)
			}
			fmt.Printf("Local criado: %s (%s)\n", loc.Name, loc.Type)
		}
	} else {
		fmt.Printf("Locais já existem: %d\n", len(locations))
	}
}
