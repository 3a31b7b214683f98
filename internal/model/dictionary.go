// internal/model/dictionary.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dictionary は単語帳です。予測では1つの系列になります。
type Dictionary struct {
	DictionaryID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"dictionary_id"`
	TenantID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Lang1        string         `gorm:"not null" json:"lang1"` // 1番目の言語
	Lang2        string         `gorm:"not null" json:"lang2"` // 2番目の言語
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	WordPairs []WordPair `gorm:"foreignKey:DictionaryID" json:"-"`
}

func (Dictionary) TableName() string {
	return "dictionaries"
}
