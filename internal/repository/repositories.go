package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ApplicationRepo ApplicationRepository
}

func NewRepositories(pool *pgxpool.Pool, applicationsTable []string) *Repositories {
	return &Repositories{
		ApplicationRepo: NewApplicationRepository(pool, applicationsTable),
	}
}
