package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/nitpydev/gyanith24-cms/internal/domain"
)

type accessService struct {
	accessRepo     domain.AccessListRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAccessService returns the admin-panel authorization policy. Every
// decision, allow or deny, is logged with the identity for audit.
func NewAccessService(accessRepo domain.AccessListRepository, logger *slog.Logger, timeout time.Duration) domain.AccessService {
	return &accessService{
		accessRepo:     accessRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Authorize checks the identity's email against the allow-list document.
// The document is fetched fresh on every call. A failed fetch denies: the
// panel must never admit anyone it could not positively verify.
func (s *accessService) Authorize(ctx context.Context, identity *domain.Identity) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if identity == nil {
		s.logger.Warn("access denied: no identity presented")
		return false, nil
	}

	list, err := s.accessRepo.Get(ctx)
	if err != nil {
		s.logger.Error("access denied: allow-list fetch failed",
			"user_id", identity.ID, "email", identity.Email, "name", identity.Name, "err", err)
		return false, fmt.Errorf("fetch allow-list: %w", err)
	}

	// Case-sensitive exact match against the full list.
	allowed := slices.Contains(list.Full, identity.Email)
	if allowed {
		s.logger.Info("access granted",
			"user_id", identity.ID, "email", identity.Email, "name", identity.Name)
	} else {
		s.logger.Warn("access denied: email not on allow-list",
			"user_id", identity.ID, "email", identity.Email, "name", identity.Name)
	}
	return allowed, nil
}
