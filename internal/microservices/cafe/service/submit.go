package service

import (
	"context"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/common/metrics"
	"cafe-bot/internal/downstream"
	"cafe-bot/internal/microservices/cafe/domain/dao"
)

const (
	outcomeAccepted = "accepted"
	outcomeDeclined = "declined"
	outcomeError    = "error"
)

// submit hands a record to the downstream. A failed call counts as a
// decline: the caller answers with the failure narrative, nothing is retried.
func submit(ctx context.Context, port downstream.Port, lg *logger.Logger, kind dao.Kind, id string, record any) bool {
	ok, err := port.Submit(ctx, kind, record)
	switch {
	case err != nil:
		metrics.RecordSubmission(string(kind), outcomeError)
		lg.Error("downstream_submit_failed", err, map[string]any{"kind": kind, "id": id})
		return false
	case !ok:
		metrics.RecordSubmission(string(kind), outcomeDeclined)
		lg.Warn("downstream_submit_declined", map[string]any{"kind": kind, "id": id})
		return false
	default:
		metrics.RecordSubmission(string(kind), outcomeAccepted)
		return true
	}
}
