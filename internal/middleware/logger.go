package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	maxLoggedBody = 1000
	redacted      = "[REDACTED]"
)

// sensitiveKey matches header names and JSON keys whose values must never be logged
var sensitiveKey = regexp.MustCompile(`(?i)(password|token|api[-_]?key|secret|authorization|bearer|credential|session|cookie)`)

// bodyRecorder tees the response body into a buffer
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	Logger *slog.Logger
	// LogBodies adds redacted JSON request and response bodies to each record
	LogBodies bool
}

// RequestResponseLogger emits one record per request, at WARN for 4xx and ERROR for 5xx
func RequestResponseLogger(config LoggerConfig) gin.HandlerFunc {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		start := time.Now()

		var reqBody []byte
		if config.LogBodies && c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		var rec *bodyRecorder
		if config.LogBodies {
			rec = &bodyRecorder{ResponseWriter: c.Writer}
			c.Writer = rec
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status_code", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.Any("headers", headersForLog(c.Request.Header)),
		}
		if c.Request.URL.RawQuery != "" {
			attrs = append(attrs, slog.Any("query_params", c.Request.URL.Query()))
		}
		if len(reqBody) > 0 {
			attrs = append(attrs, slog.Any("request_body", bodyForLog(reqBody)))
		}
		if rec != nil && rec.buf.Len() > 0 && strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			attrs = append(attrs, slog.Any("response_body", bodyForLog(rec.buf.Bytes())))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}

		logger.Log(c.Request.Context(), levelFor(status), "http request", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

func headersForLog(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if sensitiveKey.MatchString(name) {
			out[name] = redacted
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

// bodyForLog decodes a JSON body with sensitive keys masked.
// Anything else comes back as a string cut at maxLoggedBody bytes.
func bodyForLog(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		s := string(body)
		if len(s) > maxLoggedBody {
			s = s[:maxLoggedBody] + "... (truncated)"
		}
		return s
	}
	mask(v)
	return v
}

func mask(v any) {
	switch node := v.(type) {
	case map[string]any:
		for key, child := range node {
			if sensitiveKey.MatchString(key) {
				node[key] = redacted
				continue
			}
			mask(child)
		}
	case []any:
		for _, child := range node {
			mask(child)
		}
	}
}
