// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package result

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Sample is one persisted evaluation sample.
type Sample struct {
	ID uint `gorm:"primaryKey"`

	CreatedAt time.Time `gorm:"not null"`

	Target     string `gorm:"not null"`
	Prediction string `gorm:"not null"`
}

// Store persists evaluation samples to a SQLite database.
type Store struct {
	db *gorm.DB
}

// OpenStore opens (creating if necessary) the SQLite database at path.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open result store: %w", err)
	}
	if err := db.AutoMigrate(&Sample{}); err != nil {
		return nil, fmt.Errorf("failed to migrate result store: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveAll appends the given pairs to the store in order.
func (s *Store) SaveAll(pairs []Pair) error {
	if len(pairs) == 0 {
		return nil
	}
	samples := make([]Sample, len(pairs))
	for i, p := range pairs {
		samples[i] = Sample{Target: p.Target, Prediction: p.Prediction}
	}
	if err := s.db.Create(&samples).Error; err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	log.Debug().Int("samples", len(samples)).Msg("results saved to store")
	return nil
}

// Count returns the number of persisted samples.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&Sample{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return n, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
