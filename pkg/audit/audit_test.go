package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecord(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewWithZap(zap.New(core), "jobboard", "test")

	ctx := context.WithValue(context.Background(), "RequestID", "req-123")
	l.Record(ctx, Event{
		Action:     ActionCompanyRejected,
		ActorID:    "admin-1",
		ActorEmail: "Admin@Example.com",
		TargetType: "company",
		TargetID:   "42",
		Details:    map[string]interface{}{"reason": "dokumen tidak lengkap"},
	})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "company_rejected", fields["action"])
	assert.Equal(t, "admin-1", fields["actor_id"])
	assert.Equal(t, "42", fields["target_id"])
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, HashValue("admin@example.com"), fields["actor_email_hash"])
	assert.NotContains(t, fields, "actor_email")
}

func TestHashValue(t *testing.T) {
	h := HashValue("someone@example.com")
	assert.Len(t, h, 16)
	assert.Equal(t, h, HashValue("someone@example.com"))
	assert.NotEqual(t, h, HashValue("other@example.com"))
}

func TestNilAndNopLoggers(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Record(context.Background(), Event{Action: ActionJobHidden}) })
	assert.NoError(t, l.Sync())

	assert.NotPanics(t, func() { Nop().Record(context.Background(), Event{Action: ActionJobFlagged}) })
}
