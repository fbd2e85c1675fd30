// Package audit writes the moderation trail (company verification, job
// moderation, application status and role changes) as structured zap entries.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Action string

const (
	ActionCompanyApproved   Action = "company_approved"
	ActionCompanyRejected   Action = "company_rejected"
	ActionJobHidden         Action = "job_hidden"
	ActionJobUnhidden       Action = "job_unhidden"
	ActionJobFlagged        Action = "job_flagged"
	ActionJobUnflagged      Action = "job_unflagged"
	ActionApplicationStatus Action = "application_status_changed"
	ActionRoleAssigned      Action = "role_assigned"
)

// Event is one audited decision.
type Event struct {
	Action     Action
	ActorID    string
	ActorEmail string // hashed before it is written
	TargetType string
	TargetID   string
	Details    map[string]interface{}
}

type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New builds a production zap logger writing JSON to stdout.
func New(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	z, err := config.Build(zap.AddCaller())
	if err != nil {
		z, _ = zap.NewProduction()
	}
	return NewWithZap(z, serviceName, environment)
}

// NewWithZap wraps an existing zap logger.
func NewWithZap(z *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{zapLogger: z, serviceName: serviceName, environment: environment}
}

// Nop discards every event.
func Nop() *Logger {
	return NewWithZap(zap.NewNop(), "", "")
}

// Record writes the event. The request id is read from ctx when the caller
// passes a gin context.
func (l *Logger) Record(ctx context.Context, e Event) {
	if l == nil {
		return
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("action", string(e.Action)),
		zap.String("actor_id", e.ActorID),
		zap.String("target_type", e.TargetType),
		zap.String("target_id", e.TargetID),
		zap.Time("at", time.Now().UTC()),
	}
	if e.ActorEmail != "" {
		fields = append(fields, zap.String("actor_email_hash", HashValue(strings.ToLower(e.ActorEmail))))
	}
	if ctx != nil {
		if reqID, ok := ctx.Value("RequestID").(string); ok && reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}
	}
	if len(e.Details) > 0 {
		fields = append(fields, zap.Any("details", e.Details))
	}

	l.zapLogger.Info("audit", fields...)
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// HashValue returns the first 16 hex chars of the SHA-256 of value.
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
