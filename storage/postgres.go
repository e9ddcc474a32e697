package storage

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one keyed snapshot row. Saves rewrite the full value.
type Record struct {
	Key   string `gorm:"primaryKey;type:varchar(64)"`
	Value string `gorm:"type:jsonb"`
}

func (Record) TableName() string {
	return "records"
}

// PostgresRecords stores records in a single Postgres table via GORM.
type PostgresRecords struct {
	db *gorm.DB
}

func NewPostgresRecords(dsn string) (*PostgresRecords, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &PostgresRecords{db: db}, nil
}

func (p *PostgresRecords) Load(ctx context.Context, key string, dest interface{}) error {
	var rec Record
	if err := p.db.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(rec.Value), dest)
}

func (p *PostgresRecords) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := Record{Key: key, Value: string(raw)}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rec).Error
}
