package http

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mxpp71-coder/cahier-seances-judo/internal/models"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/notify"
	tokenRepo "github.com/mxpp71-coder/cahier-seances-judo/internal/repositories/token"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/services/journal"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/sheets"
)

// tokenTTL is how long a login stays valid
const tokenTTL = 12 * time.Hour

// Config holds configuration for the HTTP handler
type Config struct {
	// Logger for request and error logging
	Logger *logrus.Logger

	// Journal is the logbook service
	Journal journal.Service

	// Tokens stores issued access tokens
	Tokens tokenRepo.Repository

	// Password is the shared access password. One secret for everyone, not
	// per-user.
	Password string

	// Notifier, when set, announces new sessions; best-effort
	Notifier notify.Notifier
}

// Handler serves the logbook HTTP API
type Handler struct {
	logger   *logrus.Logger
	journal  journal.Service
	tokens   tokenRepo.Repository
	password string
	notifier notify.Notifier
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Journal == nil {
		return nil, errors.New("journal service cannot be nil")
	}

	if cfg.Tokens == nil {
		return nil, errors.New("token repository cannot be nil")
	}

	if cfg.Password == "" {
		return nil, errors.New("password cannot be empty")
	}

	return &Handler{
		logger:   cfg.Logger,
		journal:  cfg.Journal,
		tokens:   cfg.Tokens,
		password: cfg.Password,
		notifier: cfg.Notifier,
	}, nil
}

// Router builds the gin engine with all routes registered
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())

	router.POST("/login", h.login)

	api := router.Group("/api", h.requireToken())
	api.POST("/logout", h.logout)
	api.GET("/sessions", h.listSessions)
	api.POST("/sessions", h.createSession)
	api.PUT("/sessions/:id", h.updateSession)
	api.POST("/sessions/:id/duplicate", h.duplicateSession)
	api.GET("/sessions/filters", h.filterOptions)
	api.GET("/presets", h.presets)
	api.GET("/export/csv", h.exportCSV)
	api.GET("/export/xlsx", h.exportXLSX)

	return router
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	out, err := h.tokens.CreateToken(c.Request.Context(), &tokenRepo.CreateTokenInput{
		TTL: tokenTTL,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      out.Token,
		"expires_in": int(tokenTTL.Seconds()),
	})
}

func (h *Handler) logout(c *gin.Context) {
	tok := bearerToken(c)
	if tok == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bearer token"})
		return
	}

	if err := h.tokens.DeleteToken(c.Request.Context(), &tokenRepo.DeleteTokenInput{Token: tok}); err != nil {
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listSessions(c *gin.Context) {
	out, err := h.journal.ListSessions(c.Request.Context(), &journal.ListSessionsInput{
		Season:  c.Query("saison"),
		Public:  c.Query("public"),
		Keyword: c.Query("q"),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": out.Sessions})
}

// sessionPayload is the JSON shape of a session form. Field names follow the
// sheet columns. "objectifs" carries the multi-select labels and wins over
// the free-text "objectif" when present.
type sessionPayload struct {
	Date          string   `json:"date" binding:"required"`
	Public        string   `json:"public"`
	Objectives    []string `json:"objectifs"`
	ObjectiveText string   `json:"objectif"`
	Tags          string   `json:"tags"`
	DurationMin   int      `json:"duree_min"`
	WarmUp        string   `json:"echauffement"`
	MainBody      string   `json:"corps"`
	CoolDown      string   `json:"retour"`
	Equipment     string   `json:"materiel"`
	Debrief       string   `json:"bilan"`
	Headcount     int      `json:"effectif"`
	RPE           int      `json:"rpe"`
	Author        string   `json:"auteur"`
}

func (p *sessionPayload) fields() (*models.SessionFields, error) {
	d, err := time.Parse(models.DateLayout, p.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", p.Date)
	}

	return &models.SessionFields{
		Date:        d,
		Public:      p.Public,
		Objectives:  p.ObjectiveText,
		Tags:        p.Tags,
		DurationMin: p.DurationMin,
		WarmUp:      p.WarmUp,
		MainBody:    p.MainBody,
		CoolDown:    p.CoolDown,
		Equipment:   p.Equipment,
		Debrief:     p.Debrief,
		Headcount:   p.Headcount,
		RPE:         p.RPE,
		Author:      p.Author,
	}, nil
}

func (h *Handler) createSession(c *gin.Context) {
	var payload sessionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields, err := payload.fields()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.journal.CreateSession(c.Request.Context(), &journal.CreateSessionInput{
		Fields:          fields,
		ObjectiveLabels: payload.Objectives,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.announce(c, out.Session)

	c.JSON(http.StatusCreated, gin.H{"session": out.Session})
}

func (h *Handler) updateSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var payload sessionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields, err := payload.fields()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.journal.UpdateSession(c.Request.Context(), &journal.UpdateSessionInput{
		ID:     id,
		Fields: fields,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": out.Session})
}

func (h *Handler) duplicateSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	out, err := h.journal.DuplicateSession(c.Request.Context(), &journal.DuplicateSessionInput{ID: id})
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.announce(c, out.Session)

	c.JSON(http.StatusCreated, gin.H{"session": out.Session})
}

func (h *Handler) filterOptions(c *gin.Context) {
	out, err := h.journal.GetFilterOptions(c.Request.Context(), &journal.GetFilterOptionsInput{})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saisons": out.Seasons,
		"publics": out.Publics,
	})
}

func (h *Handler) presets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"publics":   models.Publics,
		"objectifs": models.ObjectivePresets,
	})
}

func (h *Handler) exportCSV(c *gin.Context) {
	out, err := h.journal.ExportCSV(c.Request.Context(), &journal.ExportCSVInput{
		Season:  c.Query("saison"),
		Public:  c.Query("public"),
		Keyword: c.Query("q"),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out.Data)
}

func (h *Handler) exportXLSX(c *gin.Context) {
	out, err := h.journal.ExportXLSX(c.Request.Context(), &journal.ExportXLSXInput{
		Season:  c.Query("saison"),
		Public:  c.Query("public"),
		Keyword: c.Query("q"),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out.Data)
}

// announce notifies the configured channel about a new session. Failures are
// logged and never affect the response.
func (h *Handler) announce(c *gin.Context, session *models.Session) {
	if h.notifier == nil {
		return
	}

	if err := h.notifier.SessionLogged(c.Request.Context(), session); err != nil {
		h.logger.WithError(err).Warn("failed to announce session")
	}
}

// renderError maps service and gateway failures onto HTTP statuses
func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, journal.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, journal.ErrMissingDate),
		errors.Is(err, journal.ErrDurationOutOfRange),
		errors.Is(err, journal.ErrHeadcountOutOfRange),
		errors.Is(err, journal.ErrRPEOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, sheets.ErrSpreadsheetNotFound), errors.Is(err, sheets.ErrUnavailable):
		h.logger.WithError(err).Error("spreadsheet unreachable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "remote spreadsheet unavailable"})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
