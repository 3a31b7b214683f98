// internal/model/word_pair.go
package model

import (
	"time"

	"go_5_vocab_srs/internal/srs"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewColumns は1方向分の復習状態のカラムです。WordPair に方向ごとに埋め込まれます。
type ReviewColumns struct {
	Strength int       `gorm:"not null;default:0"`
	DueDate  time.Time `gorm:"type:date;not null;index"`
}

// WordPair は2言語の単語の組と、方向ごとの復習状態です。
type WordPair struct {
	WordPairID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_pair_id"`
	TenantID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	DictionaryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"dictionary_id"`
	WordInLang1  string         `gorm:"not null" json:"word_in_lang1"`
	WordInLang2  string         `gorm:"not null" json:"word_in_lang2"`
	Explanation  string         `json:"explanation"`
	Labels       string         `json:"labels"` // 空白区切り
	DateAdded    time.Time      `gorm:"type:date;not null" json:"date_added"`
	First        ReviewColumns  `gorm:"embedded;embeddedPrefix:first_" json:"-"`
	Second       ReviewColumns  `gorm:"embedded;embeddedPrefix:second_" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Dictionary *Dictionary `gorm:"foreignKey:DictionaryID;references:DictionaryID" json:"-"`
}

func (WordPair) TableName() string {
	return "word_pairs"
}

func (wp *WordPair) columns(d srs.Direction) *ReviewColumns {
	if d == srs.Second {
		return &wp.Second
	}
	return &wp.First
}

// ReviewColumnNames は d の復習状態を保存するカラム名 (strength, due_date) を返します。
func ReviewColumnNames(d srs.Direction) (string, string) {
	if d == srs.Second {
		return "second_strength", "second_due_date"
	}
	return "first_strength", "first_due_date"
}

// ReviewState は srs.Item の実装です。DATE カラムは暦日としてそのまま読みます。
func (wp *WordPair) ReviewState(d srs.Direction) srs.ReviewState {
	c := wp.columns(d)
	return srs.ReviewState{Strength: c.Strength, DueDate: civil.DateOf(c.DueDate)}
}

// SetReviewState は d の状態を書き換えます。DATE カラムには UTC の0時として保存します。
func (wp *WordPair) SetReviewState(d srs.Direction, s srs.ReviewState) {
	c := wp.columns(d)
	c.Strength = s.Strength
	c.DueDate = s.DueDate.In(time.UTC)
}

// ReviewPair は両方向の状態を返します。
func (wp *WordPair) ReviewPair() srs.ReviewPair {
	return srs.ReviewPair{wp.ReviewState(srs.First), wp.ReviewState(srs.Second)}
}

func (wp *WordPair) IsDeleted() bool {
	return wp.DeletedAt.Valid
}

// QuestionAndAnswer は方向に応じた問題と答えを返します。
func (wp *WordPair) QuestionAndAnswer(d srs.Direction) (string, string) {
	if d == srs.Second {
		return wp.WordInLang2, wp.WordInLang1
	}
	return wp.WordInLang1, wp.WordInLang2
}
