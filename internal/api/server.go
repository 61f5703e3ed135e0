package api

import (
	"net/http"

	"github.com/mkuran/wordseal/internal/api/middleware"
	"github.com/mkuran/wordseal/internal/audit"
	"github.com/mkuran/wordseal/internal/core"
	"github.com/mkuran/wordseal/internal/service"
)

type Server struct {
	codeService *service.CodeService
	auditor     core.Auditor
}

func NewServer(codeService *service.CodeService, auditor core.Auditor) *Server {
	if auditor == nil {
		auditor = audit.NewNoopAuditor()
	}
	return &Server{
		codeService: codeService,
		auditor:     auditor,
	}
}

func (s *Server) Routes(adminSigningKey []byte) http.Handler {
	mux := http.NewServeMux()

	// public routes
	mux.HandleFunc("GET "+HealthCheckRoute, s.handleHealth)
	mux.HandleFunc("GET "+AboutRoute, s.handleAbout)

	// code routes
	mux.HandleFunc("POST "+IssueCodeRoute, s.handleIssue)
	mux.HandleFunc("POST "+ValidateCodeRoute, s.handleValidate)

	// admin routes
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET "+ListAuditsRoute, s.handleAdminAudit)
	mux.Handle(AuditParent, middleware.AdminAuth(adminSigningKey)(adminMux))

	return middleware.RecoverMiddleware(
		middleware.CorrelationIDMiddleware(
			middleware.LoggingMiddleware(
				mux)))
}
