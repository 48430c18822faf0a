package service

import (
	"context"
	"errors"

	"redis-gate/internal/core/domain"
	"redis-gate/internal/core/ports"
	"redis-gate/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type gateService struct {
	reach ports.Reachability
	info  ports.ServerInfoSource
	log   zerolog.Logger
}

// NewGateService creates the availability gate.
func NewGateService(reach ports.Reachability, info ports.ServerInfoSource, log zerolog.Logger) ports.GateService {
	return &gateService{reach: reach, info: info, log: log}
}

// Evaluate checks that cfg's endpoint is reachable and, when a minimum
// version is configured, that the running server meets it. Every way the
// precondition can be unmet yields a Skip; Evaluate never returns an error.
func (s *gateService) Evaluate(ctx context.Context, cfg domain.GateConfig) domain.ProbeResult {
	addr := cfg.Addr()
	log := s.log.With().
		Str("probe_id", uuid.NewString()).
		Str("addr", addr).
		Logger()

	if err := s.reach.Reach(ctx, addr, cfg.ConnectTimeout()); err != nil {
		return s.skip(log, apperror.ErrNotRunning(addr, err))
	}

	required := cfg.MinVersion()
	if required == nil {
		log.Debug().Msg("redis reachable, no version requirement")
		return domain.Pass()
	}

	qctx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout())
	defer cancel()

	info, err := s.info.ServerInfo(qctx, addr)
	if err != nil {
		if apperror.IsKind(err, apperror.KindResource) {
			log.Warn().Err(err).Msg("client resources unavailable for server info query")
		}
		return s.skip(log, apperror.ErrInfoQuery(addr, err))
	}

	raw, ok := info.Version()
	if !ok {
		return s.skip(log, apperror.ErrVersionUnknown(addr, errors.New("server info has no "+domain.VersionKey)))
	}
	running, err := domain.ParseVersion(raw)
	if err != nil {
		return s.skip(log, apperror.ErrVersionUnknown(addr, err))
	}

	log = log.With().
		Str("required_version", required.String()).
		Str("running_version", running.String()).
		Logger()

	if running.LessThan(required) {
		return s.skip(log, apperror.ErrVersionTooOld(required.String(), running.String()))
	}

	log.Debug().Msg("redis version satisfies requirement")
	return domain.Pass()
}

func (s *gateService) skip(log zerolog.Logger, appErr *apperror.AppError) domain.ProbeResult {
	log.Debug().Err(appErr).Str("error_code", appErr.Code).Msg("skipping: redis precondition unmet")
	return domain.Skip(appErr.Message, appErr)
}
