package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/mkuran/wordseal/internal/api/presenter"
	"github.com/mkuran/wordseal/internal/buildinfo"
	"github.com/mkuran/wordseal/internal/core"
	"github.com/mkuran/wordseal/internal/service"
)

// handleHealth responds with a simple OK status to indicate the server is healthy.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleAbout responds with service information including version and commit hash.
func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	presenter.JSON(w, r, buildinfo.GetBuildInfo(), http.StatusOK)
}

// WordsHeader is the alternative carrier for the code on validation
// requests, for callers that cannot send a JSON body.
const WordsHeader = "X-Authorization-Words"

type ValidatePayload struct {
	// Words is the presented code as one space-separated string.
	Words string `json:"words"`
}

func DecodePayload(r *http.Request, dest any, allowEmpty bool) error {
	switch r.Header.Get("Content-Type") {
	case "application/json", "":
		// strict encoding for JSON
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(dest); err != nil {
			if !errors.Is(err, io.EOF) || !allowEmpty {
				return err
			}
		}
		// ensure there's no extra data
		if dec.More() {
			return errors.New("extra data in request body")
		}
		return nil
	default:
		return errors.New("unsupported content type")
	}
}

// handleIssue processes code issuance requests.
func (s *Server) handleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	result, err := s.codeService.Issue(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("code issuance failed")
		presenter.Err(w, r, err, "code issuance failed")
		return
	}

	logger.Info().
		Int("key_id", result.Artifact.KeyID).
		Time("expires_at", result.Artifact.ExpiresAt).
		Msg("code issued successfully")

	presenter.JSON(w, r, result.Artifact, http.StatusCreated)
}

// handleValidate processes code validation requests. The code is read
// from the JSON body, the X-Authorization-Words header, or the 'words'
// query parameter, in that order.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	var payload ValidatePayload
	if err := DecodePayload(r, &payload, true /* allow empty */); err != nil {
		logger.Warn().Err(err).Msg("failed to decode validate request payload")
		presenter.Error(w, r, "invalid request payload", http.StatusBadRequest)
		return
	}

	words := payload.Words
	if words == "" {
		words = r.Header.Get(WordsHeader)
	}
	if words == "" {
		words = r.URL.Query().Get("words")
	}
	if words == "" {
		presenter.Error(w, r, "missing words parameter", http.StatusBadRequest)
		return
	}

	result, err := s.codeService.Validate(ctx, service.ValidateRequest{Words: words})
	if err != nil {
		logger.Error().Err(err).Msg("code validation failed")
		presenter.Err(w, r, err, "code validation failed")
		return
	}

	verdict := result.Verdict
	if !verdict.Valid {
		logger.Warn().Str("reason", string(verdict.Reason)).Msg("code rejected")
		presenter.JSON(w, r, verdict, http.StatusUnauthorized)
		return
	}

	logger.Info().
		Int("key_id", verdict.KeyID).
		Int("age_hours", verdict.AgeHours).
		Msg("code validated successfully")

	presenter.JSON(w, r, verdict, http.StatusOK)
}

// handleAdminAudit processes requests to retrieve audit log entries.
func (s *Server) handleAdminAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	// filters
	q := r.URL.Query()
	limitStr := q.Get("limit")

	filterCorrelationID := q.Get("correlation_id")
	filterAction := q.Get("action")
	filterKeyID := q.Get("key_id")

	limit := 50
	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil {
			logger.Warn().Err(err).Str("limit", limitStr).Msg("invalid limit parameter")
			presenter.Error(w, r, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = v
	}

	var entries []core.AuditEntry
	var err error

	if filterCorrelationID != "" || filterAction != "" || filterKeyID != "" {
		logger.Info().Msgf("applying audit log filters")
		entries, err = s.auditor.Find(func(entry core.AuditEntry) bool {
			if filterCorrelationID != "" && entry.ID != filterCorrelationID {
				return false
			}
			if filterAction != "" && entry.Action != filterAction {
				return false
			}
			if filterKeyID != "" && strconv.Itoa(entry.KeyID) != filterKeyID {
				return false
			}
			return true
		}, limit)
	} else {
		log.Debug().Msgf("retrieving recent audit log entries")
		entries, err = s.auditor.GetRecent(limit)
	}

	if err != nil {
		logger.Error().Err(err).Msg("failed to retrieve audit logs")
		presenter.Error(w, r, "failed to retrieve audit logs", http.StatusInternalServerError)
		return
	}

	presenter.JSON(w, r, entries, http.StatusOK)
}
