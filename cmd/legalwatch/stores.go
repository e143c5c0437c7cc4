package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"legalwatch/internal/acquisition"
	"legalwatch/internal/api"
	"legalwatch/internal/capture"
	"legalwatch/internal/config"
	"legalwatch/internal/ledger"
	"legalwatch/internal/monitoring"
	"legalwatch/internal/notify"
	"legalwatch/internal/provider"
	"legalwatch/internal/storage/memory"
	"legalwatch/internal/storage/postgres"
)

type providerStore interface {
	provider.ConfigSource
	provider.HealthRecorder
}

type notificationStore interface {
	notify.Store
	api.Notifications
}

// stores is the datastore surface the services are built on.
type stores struct {
	providers     providerStore
	cache         acquisition.CacheStore
	ledger        ledger.Store
	monitorings   monitoring.Store
	alerts        monitoring.AlertStore
	tx            monitoring.TransactionManager
	jobs          capture.JobStore
	attachments   capture.AttachmentStore
	notifications notificationStore
	close         func() error
}

func openStores(cfg *config.Config) (*stores, error) {
	switch cfg.Database.Driver {
	case "memory":
		db := memory.New()
		return &stores{
			providers:     db,
			cache:         db,
			ledger:        db,
			monitorings:   db,
			alerts:        db,
			tx:            db,
			jobs:          db,
			attachments:   db,
			notifications: db,
			close:         func() error { return nil },
		}, nil

	case "postgres":
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}

		txManager := postgres.NewTransactionManager(db)
		return &stores{
			providers:     postgres.NewProviderStore(db),
			cache:         postgres.NewCacheStore(db),
			ledger:        postgres.NewLedgerStore(db, txManager),
			monitorings:   postgres.NewMonitoringStore(db, cfg.Monitoring.SweepTimeout),
			alerts:        postgres.NewAlertStore(db),
			tx:            txManager,
			jobs:          postgres.NewJobStore(db),
			attachments:   postgres.NewAttachmentStore(db),
			notifications: postgres.NewNotificationStore(db),
			close:         db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
}
