package service

import (
	"context"

	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
)

type StatsService interface {
	Summary(ctx context.Context, caller auth.Caller) (*model.Stats, error)
}

type statsService struct {
	stats repo.StatsRepo
	authz auth.Authorizer
}

func NewStatsService(stats repo.StatsRepo, authz auth.Authorizer) StatsService {
	return &statsService{stats: stats, authz: authz}
}

func (s *statsService) Summary(ctx context.Context, caller auth.Caller) (*model.Stats, error) {
	const op = "dashboard stats"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	st, err := s.stats.Summary(ctx)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	return st, nil
}
