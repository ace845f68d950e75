// Package httpapi exposes the token service over HTTP with Gin.
//
// Routes: GET /health, POST /userToken, POST /callToken and the deprecated
// POST /generate. Configuration is loaded from a config.Source on every
// request and threaded into the core explicitly; nothing here reads ambient
// global state.
package httpapi

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	videotoken "github.com/chimerakang/videotoken-go"
	"github.com/chimerakang/videotoken-go/audit"
	"github.com/chimerakang/videotoken-go/config"
	"github.com/chimerakang/videotoken-go/metrics"
)

// Error kinds reported in failure payloads. Validation kinds map to 400,
// configuration and signing kinds to 500.
const (
	KindInvalidBody           = "invalid_body"
	KindMissingCredentials    = "missing_credentials"
	KindMissingUserID         = "missing_user_id"
	KindMissingCallIDs        = "missing_call_ids"
	KindConfigurationInvalid  = "configuration_invalid"
	KindTokenGenerationFailed = "token_generation_failed"
)

// Handler serves the token routes.
type Handler struct {
	svc     *videotoken.Service
	source  config.Source
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor *audit.Logger
}

// Option configures the Handler.
type Option func(*Handler)

// WithLogger sets a structured logger for the handler.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// WithMetrics sets the Prometheus metrics instance.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithAudit sets an audit logger for token issuance events.
func WithAudit(a *audit.Logger) Option {
	return func(h *Handler) { h.auditor = a }
}

// NewHandler creates a Handler backed by the given service and config source.
func NewHandler(svc *videotoken.Service, source config.Source, opts ...Option) *Handler {
	h := &Handler{
		svc:     svc,
		source:  source,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.New(false),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Register wires the token routes onto r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.POST("/userToken", h.UserToken)
	r.POST("/callToken", h.CallToken)
	r.POST("/generate", h.Generate)
}

type userTokenBody struct {
	UserID            string `json:"userId"`
	ExpirationSeconds *int64 `json:"expirationSeconds"`
}

type callTokenBody struct {
	UserID            string   `json:"userId"`
	CallIDs           []string `json:"callIds"`
	Role              string   `json:"role"`
	ExpirationSeconds *int64   `json:"expirationSeconds"`
}

// Health reports whether the two required secrets are present, without ever
// reporting their values.
func (h *Handler) Health(c *gin.Context) {
	status := videotoken.ConfigStatus{Valid: false, Errors: []string{"configuration unavailable"}}
	if cfg, err := h.source.Load(c.Request.Context()); err == nil {
		status = videotoken.ValidateConfig(cfg)
	}
	h.metrics.RecordConfigCheck(status.Valid)

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"configured": status.Valid,
		"errors":     status.Errors,
		"endpoints": gin.H{
			"health":    "GET /health",
			"userToken": "POST /userToken",
			"callToken": "POST /callToken",
			"generate":  "POST /generate (deprecated, use /userToken)",
		},
	})
}

// UserToken issues a user session token.
func (h *Handler) UserToken(c *gin.Context) {
	h.issueUserToken(c)
}

// Generate is the legacy alias for UserToken.
//
// Deprecated: Use UserToken. Behavior is identical; the route is kept for
// backward compatibility only.
func (h *Handler) Generate(c *gin.Context) {
	c.Header("Deprecation", "true")
	h.issueUserToken(c)
}

func (h *Handler) issueUserToken(c *gin.Context) {
	cfg, ok := h.loadConfig(c)
	if !ok {
		return
	}

	var body userTokenBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "kind": KindInvalidBody})
		return
	}

	start := time.Now()
	resp, err := h.svc.GenerateUserToken(c.Request.Context(), videotoken.UserTokenRequest{
		APIKey:            cfg.APIKey,
		APISecret:         cfg.APISecret,
		UserID:            body.UserID,
		ExpirationSeconds: body.ExpirationSeconds,
	})
	if err != nil {
		h.fail(c, videotoken.TokenTypeUser, body.UserID, 0, err)
		return
	}

	h.metrics.RecordIssued(videotoken.TokenTypeUser, time.Since(start).Seconds())
	h.auditEvent(c, audit.Event{
		Action:    "issue_user_token",
		TokenType: videotoken.TokenTypeUser,
		UserID:    resp.UserID,
		Result:    "success",
	})
	c.JSON(http.StatusOK, resp)
}

// CallToken issues a token scoped to the request's call identifiers.
func (h *Handler) CallToken(c *gin.Context) {
	cfg, ok := h.loadConfig(c)
	if !ok {
		return
	}

	var body callTokenBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "kind": KindInvalidBody})
		return
	}

	start := time.Now()
	resp, err := h.svc.GenerateCallToken(c.Request.Context(), videotoken.CallTokenRequest{
		APIKey:            cfg.APIKey,
		APISecret:         cfg.APISecret,
		UserID:            body.UserID,
		CallIDs:           body.CallIDs,
		Role:              body.Role,
		ExpirationSeconds: body.ExpirationSeconds,
	})
	if err != nil {
		h.fail(c, videotoken.TokenTypeCall, body.UserID, len(body.CallIDs), err)
		return
	}

	h.metrics.RecordIssued(videotoken.TokenTypeCall, time.Since(start).Seconds())
	h.auditEvent(c, audit.Event{
		Action:    "issue_call_token",
		TokenType: videotoken.TokenTypeCall,
		UserID:    resp.UserID,
		CallCount: len(resp.CallIDs),
		Result:    "success",
	})
	c.JSON(http.StatusOK, resp)
}

// loadConfig loads and validates the configuration, aborting with 500 when
// it is invalid or unavailable. Signing is never attempted in that case.
func (h *Handler) loadConfig(c *gin.Context) (videotoken.Config, bool) {
	cfg, err := h.source.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("configuration load failed", "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "configuration unavailable",
			"kind":  KindConfigurationInvalid,
		})
		return videotoken.Config{}, false
	}

	status := videotoken.ValidateConfig(cfg)
	h.metrics.RecordConfigCheck(status.Valid)
	if !status.Valid {
		h.auditEvent(c, audit.Event{
			Action: "config_check",
			Result: "failure",
			Error:  KindConfigurationInvalid,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":  "invalid configuration",
			"kind":   KindConfigurationInvalid,
			"errors": status.Errors,
		})
		return videotoken.Config{}, false
	}
	return cfg, true
}

func (h *Handler) fail(c *gin.Context, tokenType, userID string, callCount int, err error) {
	status, kind := statusForError(err)
	h.metrics.RecordFailure(tokenType, kind)
	h.auditEvent(c, audit.Event{
		Action:    "issue_" + tokenType + "_token",
		TokenType: tokenType,
		UserID:    userID,
		CallCount: callCount,
		Result:    "failure",
		Error:     kind,
	})
	if status >= http.StatusInternalServerError {
		h.logger.Error("token request failed", "type", tokenType, "kind", kind)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "kind": kind})
}

// statusForError maps core errors to HTTP status codes and error kinds.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, videotoken.ErrMissingUserID):
		return http.StatusBadRequest, KindMissingUserID
	case errors.Is(err, videotoken.ErrMissingCallIDs):
		return http.StatusBadRequest, KindMissingCallIDs
	case errors.Is(err, videotoken.ErrMissingCredentials):
		return http.StatusInternalServerError, KindMissingCredentials
	}

	var cfgErr *videotoken.ConfigurationError
	if errors.As(err, &cfgErr) {
		return http.StatusInternalServerError, KindConfigurationInvalid
	}
	return http.StatusInternalServerError, KindTokenGenerationFailed
}

func (h *Handler) auditEvent(c *gin.Context, e audit.Event) {
	if h.auditor == nil {
		return
	}
	e.RequestID = videotoken.RequestIDFromContext(c.Request.Context())
	h.auditor.Log(e)
}
