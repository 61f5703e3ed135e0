package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mkuran/wordseal/internal/code"
	"github.com/mkuran/wordseal/internal/codec"
	"github.com/mkuran/wordseal/internal/core"
)

// CodeService orchestrates the issue and validate flows: counter → key id
// → generator on one side, validator → verdict on the other. It owns
// auditing and the mapping from protocol errors to HTTP statuses.
type CodeService struct {
	counter   core.DailyCounter
	generator *code.Generator
	validator *code.Validator
	auditor   core.Auditor
	now       func() time.Time
}

func NewCodeService(
	counter core.DailyCounter,
	generator *code.Generator,
	validator *code.Validator,
	auditor core.Auditor,
) *CodeService {
	return &CodeService{
		counter:   counter,
		generator: generator,
		validator: validator,
		auditor:   auditor,
		now:       time.Now,
	}
}

func (s *CodeService) Issue(ctx context.Context) (*IssueResponse, error) {
	logger := log.Ctx(ctx)
	reqID, _ := ctx.Value("correlation_id").(string)

	auditEntry := core.AuditEntry{
		ID:     reqID,
		Time:   s.now(),
		Action: "code.issue",
	}
	defer func() {
		if err := s.auditor.Log(auditEntry); err != nil {
			logger.Error().Err(err).Msg("failed to write audit log entry for code issuance")
		}
	}()

	// allocate the next key id for today's UTC date scope
	now := s.now().UTC()
	dateScope := now.Format("2006-01-02")
	keyID, err := s.counter.NextValue(ctx, dateScope)
	if err != nil {
		auditEntry.Error = "counter failure"
		return nil, httpError(http.StatusInternalServerError,
			fmt.Errorf("allocating key id: %w", err))
	}
	if keyID > codec.MaxKeyID {
		// hard failure, never wraparound: re-using a key id would let two
		// principals share a code
		auditEntry.Error = "daily capacity exhausted"
		return nil, httpError(http.StatusServiceUnavailable,
			fmt.Errorf("daily code capacity exhausted for %s: %w", dateScope, core.ErrKeyRange))
	}
	auditEntry.KeyID = keyID

	words, err := s.generator.Generate(ctx, keyID)
	if err != nil {
		auditEntry.Error = "generation failed"
		if errors.Is(err, core.ErrMacService) {
			return nil, httpError(http.StatusBadGateway,
				fmt.Errorf("mac oracle unavailable: %w", err))
		}
		return nil, httpError(http.StatusInternalServerError,
			fmt.Errorf("generating code: %w", err))
	}
	auditEntry.Granted = true

	return &IssueResponse{
		Artifact: &core.CodeArtifact{
			Words:     words,
			KeyID:     keyID,
			ExpiresAt: now.Add(time.Duration(s.validator.TTLHours()) * time.Hour),
		},
	}, nil
}

func (s *CodeService) Validate(ctx context.Context, req ValidateRequest) (*ValidateResponse, error) {
	logger := log.Ctx(ctx)
	reqID, _ := ctx.Value("correlation_id").(string)

	auditEntry := core.AuditEntry{
		ID:     reqID,
		Time:   s.now(),
		Action: "code.validate",
	}
	defer func() {
		if err := s.auditor.Log(auditEntry); err != nil {
			logger.Error().Err(err).Msg("failed to write audit log entry for code validation")
		}
	}()

	verdict, err := s.validator.Validate(ctx, req.Words)
	if err != nil {
		// a failed oracle probe must not surface as bad_signature
		auditEntry.Error = "oracle probe failed"
		return nil, httpError(http.StatusBadGateway,
			fmt.Errorf("validating code: %w", err))
	}

	auditEntry.Granted = verdict.Valid
	auditEntry.Reason = verdict.Reason
	if verdict.Valid {
		auditEntry.KeyID = verdict.KeyID
		auditEntry.AgeHours = verdict.AgeHours
	}

	return &ValidateResponse{Verdict: verdict}, nil
}
