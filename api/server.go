package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/db"
	"github.com/pivotal-cf/tlsprobe/scanlog"
	"github.com/pivotal-cf/tlsprobe/tlsscan"
)

const RequestIDHeader = "X-Request-Id"

type AssessmentRequest struct {
	Name       string `json:"name"`
	Host       string `json:"host" binding:"required"`
	Port       int    `json:"port"`
	ServerName string `json:"server_name"`
	Chain      bool   `json:"chain"`
	MinDHSize  int    `json:"min_dh_size"`
}

type AssessmentResponse struct {
	RequestID string                `json:"request_id"`
	ReportID  string                `json:"report_id,omitempty"`
	Target    tlsprobe.TargetReport `json:"target"`
}

type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

type Server struct {
	router   *gin.Engine
	logger   scanlog.Logger
	scanner  tlsscan.TLSScanner
	database *db.Database
}

// New builds the HTTP surface. database may be nil, in which case
// assessments are returned but not stored.
func New(logger scanlog.Logger, scanner tlsscan.TLSScanner, database *db.Database) *Server {
	router := gin.New()

	server := &Server{
		router:   router,
		logger:   logger,
		scanner:  scanner,
		database: database,
	}

	router.Use(gin.Recovery(), server.requestID, server.logRequests)

	router.GET("/health", server.health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/assessments", server.assess)
		v1.GET("/library", server.library)
	}

	return server
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	s.logger.Infof("listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.New().String()
	}

	c.Set("request_id", id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()

	s.logger.Infof("%s %s %d %s request_id=%s",
		c.Request.Method,
		c.Request.URL.Path,
		c.Writer.Status(),
		time.Since(start),
		c.GetString("request_id"),
	)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Errorf("request %s failed: %s", c.GetString("request_id"), err)
	}

	c.JSON(status, ErrorResponse{
		RequestID: c.GetString("request_id"),
		Error:     err.Error(),
	})
}

func (s *Server) assess(c *gin.Context) {
	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	if req.Port == 0 {
		req.Port = 443
	}

	if req.Name == "" {
		req.Name = req.Host
	}

	endpoint := tlsprobe.Endpoint{
		Host:       req.Host,
		Port:       req.Port,
		ServerName: req.ServerName,
		MinDHSize:  req.MinDHSize,
	}

	if err := endpoint.Validate(); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	report, err := s.scanner.AssessServer(c.Request.Context(), endpoint, req.Chain)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	response := AssessmentResponse{
		RequestID: c.GetString("request_id"),
		Target:    tlsprobe.TargetReport{Name: req.Name, Report: report},
	}

	if s.database != nil {
		id, err := s.database.SaveReport([]tlsprobe.TargetReport{response.Target})
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		response.ReportID = id
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) library(c *gin.Context) {
	report, err := s.scanner.AssessLocalLibrary(c.Request.Context())
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func statusFor(err error) int {
	var probeErr *tlsprobe.ProbeError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &probeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
