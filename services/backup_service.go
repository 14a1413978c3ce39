// services/backup_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"tailorbook-backend/models"
	"tailorbook-backend/store"
)

// ErrBackupsDisabled is returned when no archive database is configured.
var ErrBackupsDisabled = errors.New("backups are not configured")

const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
)

// Archiver stores one snapshot of the collections.
type Archiver interface {
	Archive(ctx context.Context, snap *models.SnapshotArchive) error
}

// GormArchiver writes snapshots to the snapshot_archives table.
type GormArchiver struct {
	db *gorm.DB
}

func NewGormArchiver(db *gorm.DB) *GormArchiver {
	return &GormArchiver{db: db}
}

func (a *GormArchiver) Archive(ctx context.Context, snap *models.SnapshotArchive) error {
	return a.db.WithContext(ctx).Create(snap).Error
}

type BackupStatus struct {
	Enabled      bool       `json:"enabled"`
	Frequency    string     `json:"frequency"`
	Schedule     string     `json:"schedule"`
	Backups      int        `json:"backups"`
	LastBackupAt *time.Time `json:"lastBackupAt,omitempty"`
	LastError    string     `json:"lastError,omitempty"`
	NextRunAt    *time.Time `json:"nextRunAt,omitempty"`
}

// BackupService copies the in-memory collections to the archive on the
// schedule chosen in the shop settings. The store is never restored from
// an archive.
type BackupService struct {
	store    *store.Store
	archiver Archiver
	now      func() time.Time

	mu        sync.Mutex
	cron      *cron.Cron
	entry     cron.EntryID
	frequency string
	schedule  string
	count     int
	last      *time.Time
	lastErr   string
}

// NewBackupService builds the service; a nil archiver disables backups.
func NewBackupService(st *store.Store, archiver Archiver) *BackupService {
	return &BackupService{store: st, archiver: archiver, now: time.Now}
}

func (s *BackupService) Enabled() bool { return s.archiver != nil }

// ScheduleFor maps a backup frequency setting to a cron spec.
func ScheduleFor(frequency string) (string, error) {
	switch frequency {
	case "daily":
		return "@daily", nil
	case "weekly":
		return "@weekly", nil
	case "monthly":
		return "@monthly", nil
	}
	return "", fmt.Errorf("unknown backup frequency %q", frequency)
}

// Start schedules backups using the current settings.
func (s *BackupService) Start() error {
	if !s.Enabled() {
		log.Println("[BACKUP] DB_URL not set, backups disabled")
		return nil
	}
	s.mu.Lock()
	s.cron = cron.New()
	s.cron.Start()
	s.mu.Unlock()
	return s.Reschedule(s.store.Settings.Get().BackupFrequency)
}

// Reschedule replaces the backup job with one for frequency.
func (s *BackupService) Reschedule(frequency string) error {
	spec, err := ScheduleFor(frequency)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frequency = frequency
	s.schedule = spec
	if s.cron == nil {
		return nil
	}
	if s.entry != 0 {
		s.cron.Remove(s.entry)
	}
	id, err := s.cron.AddFunc(spec, func() {
		if _, err := s.RunBackup(context.Background(), TriggerSchedule); err != nil {
			log.Printf("[BACKUP] scheduled backup failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("backup schedule %q: %w", spec, err)
	}
	s.entry = id
	log.Printf("[BACKUP] scheduled %s (%s)", frequency, spec)
	return nil
}

// RunBackup archives the current collections immediately.
func (s *BackupService) RunBackup(ctx context.Context, trigger string) (*models.SnapshotArchive, error) {
	if !s.Enabled() {
		return nil, ErrBackupsDisabled
	}
	customers := s.store.Customers.List()
	orders := s.store.Orders.List()

	snap := &models.SnapshotArchive{
		ID:            store.NewID(),
		TakenAt:       s.now(),
		Trigger:       trigger,
		CustomerCount: len(customers),
		OrderCount:    len(orders),
	}
	var err error
	if snap.Customers, err = models.NewJSONB(customers); err != nil {
		return nil, fmt.Errorf("encode customers: %w", err)
	}
	if snap.Orders, err = models.NewJSONB(orders); err != nil {
		return nil, fmt.Errorf("encode orders: %w", err)
	}
	if snap.Settings, err = models.NewJSONB(s.store.Settings.Get()); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	err = s.archiver.Archive(ctx, snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err.Error()
		return nil, fmt.Errorf("archive snapshot: %w", err)
	}
	s.count++
	taken := snap.TakenAt
	s.last = &taken
	s.lastErr = ""
	log.Printf("[BACKUP] archived %d customers and %d orders (%s)", snap.CustomerCount, snap.OrderCount, trigger)
	return snap, nil
}

func (s *BackupService) Status() BackupStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := BackupStatus{
		Enabled:      s.Enabled(),
		Frequency:    s.frequency,
		Schedule:     s.schedule,
		Backups:      s.count,
		LastBackupAt: s.last,
		LastError:    s.lastErr,
	}
	if s.cron != nil && s.entry != 0 {
		next := s.cron.Entry(s.entry).Next
		if !next.IsZero() {
			st.NextRunAt = &next
		}
	}
	return st
}

func (s *BackupService) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.entry = 0
	s.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}
