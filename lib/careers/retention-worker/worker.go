package retentionworker

import (
	"context"
	auditstore "ocavior-site/lib/careers/audit-store"
	baseworker "ocavior-site/lib/utils/base-worker"
	"ocavior-site/lib/utils/helpers"
	initchecker "ocavior-site/lib/utils/init-checker"
	"time"
)

const (
	firstRunDelay = time.Minute
	runInterval   = time.Hour
)

// StartWorker removes submission audit records older than retentionDays.
func StartWorker(ctx context.Context, store auditstore.Provider, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	i := newImpl(store, retentionDays, firstRunDelay, runInterval)
	initchecker.CheckInit("auditStore", i.store)
	go i.Run(ctx, i.handle)
}

func newImpl(store auditstore.Provider, retentionDays int, delay, interval time.Duration) *impl {
	return &impl{
		BaseImpl:  baseworker.NewInstance("SubmissionRetentionWorker", delay, interval),
		store:     store,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

type impl struct {
	*baseworker.BaseImpl
	store     auditstore.Provider
	retention time.Duration
	now       func() time.Time
}

func (i impl) handle(ctx context.Context) {
	if helpers.IsContextDone(ctx) {
		return
	}
	logger := i.GetLogger()
	before := i.now().Add(-i.retention)
	deleted, err := i.store.DeleteOlderThan(before)
	if err != nil {
		logger.WithError(err).Error("error removing expired submission audit")
		return
	}
	if deleted > 0 {
		logger.
			WithField("deleted", deleted).
			WithField("before", before.Format(time.RFC3339)).
			Info("expired submission audit removed")
	}
}
