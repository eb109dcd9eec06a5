package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskmate/internal/category"
	"taskmate/internal/category/repository"
	"taskmate/pkg/log"
)

const (
	listCacheSize = 1024
	listCacheTTL  = 5 * time.Minute
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	// listCache memoizes per-user category lists; entries are evicted on any
	// write so AI prompt context never lags more than one mutation behind.
	listCache *expirable.LRU[string, []category.Category]
}

// New creates a new category UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		l:         l,
		listCache: expirable.NewLRU[string, []category.Category](listCacheSize, nil, listCacheTTL),
	}
}
