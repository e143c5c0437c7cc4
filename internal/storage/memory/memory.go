// Package memory is an in-process datastore implementing every store
// interface. It backs the "memory" database driver and the end-to-end tests.
package memory

import (
	"context"
	"sync"
	"time"

	"legalwatch/internal/domain"
)

type grantKey struct {
	accountID  string
	resourceID string
}

type DB struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	providers map[string]domain.ProviderConfig
	cache     map[domain.Domain]map[string]domain.CacheEntry

	accounts     map[string]*domain.CreditAccount
	entries      []domain.LedgerEntry
	grants       map[grantKey]domain.AccessGrant
	accountLocks map[string]*sync.Mutex

	monitorings map[string]*domain.Monitoring
	caseLinks   map[string]map[string]time.Time
	alerts      map[string]*domain.MonitoringAlert
	alertOrder  []string

	jobs        map[string]*domain.CaptureJob
	attachments map[string]map[string]domain.Attachment

	notifications []domain.Notification
}

func New() *DB {
	cache := make(map[domain.Domain]map[string]domain.CacheEntry, len(domain.Domains))
	for _, d := range domain.Domains {
		cache[d] = make(map[string]domain.CacheEntry)
	}
	return &DB{
		providers:    make(map[string]domain.ProviderConfig),
		cache:        cache,
		accounts:     make(map[string]*domain.CreditAccount),
		grants:       make(map[grantKey]domain.AccessGrant),
		accountLocks: make(map[string]*sync.Mutex),
		monitorings:  make(map[string]*domain.Monitoring),
		caseLinks:    make(map[string]map[string]time.Time),
		alerts:       make(map[string]*domain.MonitoringAlert),
		jobs:         make(map[string]*domain.CaptureJob),
		attachments:  make(map[string]map[string]domain.Attachment),
	}
}

type txKey struct{}

type txLog struct {
	undo []func()
}

// WithTransaction runs transactions one at a time. When fn fails or panics,
// the writes it made through ctx are undone in reverse order. A nested call
// joins the outer transaction.
func (db *DB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*txLog); ok {
		return fn(ctx)
	}

	db.txMu.Lock()
	defer db.txMu.Unlock()

	log := &txLog{}
	defer func() {
		if p := recover(); p != nil {
			db.rollback(log)
			panic(p)
		}
		if err != nil {
			db.rollback(log)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, log))
}

func (db *DB) rollback(log *txLog) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := len(log.undo) - 1; i >= 0; i-- {
		log.undo[i]()
	}
}

// onRollback registers undo with the transaction in ctx, if any. Callers
// hold db.mu.
func onRollback(ctx context.Context, undo func()) {
	if log, ok := ctx.Value(txKey{}).(*txLog); ok {
		log.undo = append(log.undo, undo)
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func ptrString(s string) *string { return &s }
