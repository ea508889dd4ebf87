package postgre

import (
	"gorm.io/gorm"

	"tubeline-api/internal/subscription/repository"
	pkgLog "tubeline-api/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *gorm.DB) *implRepository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
