package overview

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Identity is the resolved caller: who is asking and for which tenant.
type Identity struct {
	UserID    string
	CompanyID string
}

// Service is the public entrypoint for the settings overview. Its contract
// with the presentation layer is that it always returns a structurally
// valid payload; every failure mode degrades to defaults instead of
// surfacing an error.
type Service struct {
	fetcher  *Fetcher
	memo     *Memoizer
	logger   *zap.Logger
	recorder Recorder
}

func NewService(store Store, logger *zap.Logger, recorder Recorder, fetchTimeout time.Duration, fanout int) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	svc := &Service{
		memo:     NewMemoizer(),
		logger:   logger,
		recorder: recorder,
	}
	if store != nil {
		svc.fetcher = NewFetcher(store, logger, recorder, fetchTimeout, fanout)
	}
	return svc
}

// Overview resolves the pass-scoped payload for the caller. A missing
// identity or data source short-circuits to the default payload without
// touching the fetcher.
func (s *Service) Overview(ctx context.Context, ident *Identity, passID string) *Payload {
	if ident == nil || ident.CompanyID == "" || s.fetcher == nil {
		s.logger.Warn("overview requested without identity or data source, serving defaults")
		return Assemble(DefaultSnapshot(time.Now()))
	}

	return s.memo.Get(passID, ident.CompanyID, ident.UserID, func() *Payload {
		snapshot := s.fetcher.Fetch(ctx, ident.CompanyID, ident.UserID)
		payload := Assemble(snapshot)
		for _, section := range payload.Sections {
			s.recorder.RecordSectionProgress(ident.CompanyID, string(section.ID), section.Progress)
		}
		return payload
	})
}

// EndPass releases the memoized state for one render pass.
func (s *Service) EndPass(passID string) {
	s.memo.EndPass(passID)
}
