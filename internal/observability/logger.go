package observability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field represents a key-value pair for observability.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField represents a key-value pair for logging metrics.
type MetricField struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// WithFields adds a set of observability fields to the context.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// mergeFields combines context fields with metric fields, metric fields win on key collisions.
func mergeFields(ctx context.Context, fields []MetricField) []zapcore.Field {
	fieldMap := make(map[string]zapcore.Field)
	for _, f := range getObservabilityFields(ctx) {
		fieldMap[f.Key] = zap.Any(f.Key, f.Value)
	}
	for _, f := range fields {
		fieldMap[f.Key] = zap.Any(f.Key, f.Value)
	}

	merged := make([]zapcore.Field, 0, len(fieldMap))
	for _, f := range fieldMap {
		merged = append(merged, f)
	}
	return merged
}

// GetRealClientIP extracts the client IP, preferring the CloudFront viewer address when present.
// CloudFront-Viewer-Address is in "IP:port" format.
func GetRealClientIP(c *gin.Context) string {
	if viewerAddr := c.GetHeader("CloudFront-Viewer-Address"); viewerAddr != "" {
		if colonIdx := strings.LastIndex(viewerAddr, ":"); colonIdx > 0 {
			return viewerAddr[:colonIdx]
		}
		return viewerAddr
	}
	return c.ClientIP()
}

// GetRealUserAgent extracts the user agent.
func GetRealUserAgent(c *gin.Context) string {
	return c.Request.UserAgent()
}

// GetDeviceType classifies the request's device from the User-Agent.
// Returns "desktop", "mobile", "tablet", or "unknown".
func GetDeviceType(c *gin.Context) string {
	if c.GetHeader("CloudFront-Is-Mobile-Viewer") == "true" {
		return "mobile"
	}

	ua := strings.ToLower(c.Request.UserAgent())

	// tablets first, they often also contain "mobile"
	if strings.Contains(ua, "ipad") ||
		(strings.Contains(ua, "android") && !strings.Contains(ua, "mobile")) ||
		strings.Contains(ua, "tablet") {
		return "tablet"
	}

	if strings.Contains(ua, "mobile") ||
		strings.Contains(ua, "iphone") ||
		strings.Contains(ua, "ipod") {
		return "mobile"
	}

	if ua != "" {
		return "desktop"
	}
	return "unknown"
}

// Middleware adds request-scoped observability fields and logs every processed request.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx = WithFields(ctx,
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", GetRealUserAgent(c)},
		)
		if c.Request.ContentLength > 0 {
			ctx = WithFields(ctx, Field{"content_length", c.Request.ContentLength})
		}

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(500)
			}

			if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/metrics" {
				return
			}
			latency := time.Since(start)
			l.Metrics(c.Request.Context(),
				MetricField{"status", c.Writer.Status()},
				MetricField{"latency_ns", latency.Nanoseconds()},
			)
		}()
		c.Next()
	}
}

// Logger wraps a zap logger and enriches entries with context fields.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger creates a production zap logger with stack traces on error level.
func NewLogger() *Logger {
	zapLogger, _ := zap.NewProduction()
	zapLogger = zapLogger.WithOptions(zap.AddCallerSkip(1))
	zapLogger = zapLogger.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{zapLogger: zapLogger}
}

// NewNopLogger returns a logger that discards everything, used by tests.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

func (l *Logger) loggerFromContext(ctx context.Context) *zap.Logger {
	fields := getObservabilityFields(ctx)
	zapFields := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}
	return l.zapLogger.With(zapFields...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Info(msg)
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Warn(msg)
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Debug(msg)
}

func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Fatal(msg, zap.Error(err))
}

// Metrics logs a single "Metrics" entry with the context fields plus the given metric fields.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	l.zapLogger.Info("Metrics", mergeFields(ctx, fields)...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}
