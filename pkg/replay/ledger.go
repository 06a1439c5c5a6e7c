package replay

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Run is one verification of a replay on some host. Hashes are hex strings
// since SQLite can't hold a full uint64.
type Run struct {
	ID       uint `gorm:"primaryKey"`
	Created  time.Time
	Replay   string `gorm:"not null;size:16;index"`
	Host     string `gorm:"size:64"`
	Ticks    uint32
	Digest   string `gorm:"size:16"`
	Passed   bool
	Mismatch uint32
}

type Ledger struct {
	db *gorm.DB
}

func OpenLedger(path string) (*Ledger, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, err
	}

	return &Ledger{db: db}, nil
}

func (l *Ledger) Close() error {
	db, err := l.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func FormatHash(hash uint64) string {
	return fmt.Sprintf("%016x", hash)
}

func (l *Ledger) Record(ctx context.Context, run *Run) error {
	if run.Created.IsZero() {
		run.Created = time.Now()
	}
	return l.db.WithContext(ctx).Create(run).Error
}

// Runs lists every recorded verification of a replay, oldest first.
func (l *Ledger) Runs(ctx context.Context, replay string) ([]Run, error) {
	var runs []Run
	err := l.db.WithContext(ctx).
		Where("replay = ?", replay).
		Order("id").
		Find(&runs).
		Error
	return runs, err
}

// Agree reports whether every host that verified the replay ended up with
// the same final digest.
func (l *Ledger) Agree(ctx context.Context, replay string) (bool, error) {
	var digests []string
	err := l.db.WithContext(ctx).
		Model(&Run{}).
		Where("replay = ?", replay).
		Distinct("digest").
		Pluck("digest", &digests).
		Error
	if err != nil {
		return false, err
	}
	return len(digests) <= 1, nil
}
