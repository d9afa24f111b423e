package handlers

import (
	"go.uber.org/zap"

	"github.com/opservo/fieldops/internal/db"
	"github.com/opservo/fieldops/internal/domaincheck"
	"github.com/opservo/fieldops/internal/metrics"
	"github.com/opservo/fieldops/internal/overview"
)

type Handler struct {
	repo        *db.Repository
	overview    *overview.Service
	domainCheck *domaincheck.Checker
	metrics     *metrics.Collector
	logger      *zap.Logger
}

func NewHandler(repo *db.Repository, svc *overview.Service, checker *domaincheck.Checker, collector *metrics.Collector, logger *zap.Logger) *Handler {
	return &Handler{
		repo:        repo,
		overview:    svc,
		domainCheck: checker,
		metrics:     collector,
		logger:      logger,
	}
}
