package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TransactionModel is the persisted form of a checkout record. Lines are
// frozen as JSON because they are snapshots, never queried relationally.
type TransactionModel struct {
	ID          string    `gorm:"primaryKey"`
	Date        time.Time `gorm:"not null"`
	UserID      string    `gorm:"not null"`
	Username    string    `gorm:"not null"`
	Lines       string    `gorm:"type:jsonb;not null"`
	TotalAmount int       `gorm:"not null"`
}

// TableName maps the model to the transactions table
func (TransactionModel) TableName() string { return "transactions" }

// Archive implements core.TransactionArchive using GORM with the pgx driver.
// It is a write-behind audit copy; the in-memory log stays authoritative and
// nothing is ever read back from here.
type Archive struct {
	db *gorm.DB
}

// NewArchive connects to Postgres and ensures the transactions table exists
func NewArchive(dbURL string) (*Archive, error) {
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&TransactionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate transactions table: %w", err)
	}

	return &Archive{db: db}, nil
}

// Archive appends one completed transaction
func (a *Archive) Archive(ctx context.Context, txn core.Transaction) error {
	lines, err := json.Marshal(txn.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction lines: %w", err)
	}

	model := TransactionModel{
		ID:          txn.ID,
		Date:        txn.Date,
		UserID:      txn.UserID,
		Username:    txn.Username,
		Lines:       string(lines),
		TotalAmount: txn.TotalAmount,
	}

	if err := a.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to archive transaction: %w", err)
	}

	return nil
}
