package history

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GormBackend persists runs and file results through a gorm connection.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend migrates the schema and wraps the connection.
func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&Run{}, &FileResult{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return &GormBackend{db: db}, nil
}

func (b *GormBackend) BeginRun(run *Run) error {
	return b.db.Create(run).Error
}

func (b *GormBackend) RecordFile(res *FileResult) error {
	return b.db.Create(res).Error
}

func (b *GormBackend) FinishRun(run *Run) error {
	now := time.Now().UTC()
	run.FinishedAt = &now
	return b.db.Save(run).Error
}

func (b *GormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
