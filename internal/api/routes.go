package api

const (
	HealthCheckRoute = "/healthz"
	AboutRoute       = "/icanhazcode"

	IssueCodeRoute    = "/v1/code/issue"
	ValidateCodeRoute = "/v1/code/validate"

	AuditParent     = "/v1/admin/"
	ListAuditsRoute = AuditParent + "audits"
)
