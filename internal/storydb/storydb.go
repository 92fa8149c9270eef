// Package storydb keeps generated stories in a local sqlite file so they
// can be listed and re-downloaded later.
package storydb

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Story struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Character   string    `json:"character"`
	Setting     string    `json:"setting"`
	Genre       string    `json:"genre"`
	Tone        string    `json:"tone"`
	LengthLabel string    `json:"lengthLabel"`
	Text        string    `json:"story"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite database at path and migrates the
// schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Story{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save persists a story, assigning an ID when it has none.
func (s *Store) Save(story *Story) error {
	if story.ID == "" {
		story.ID = uuid.NewString()
	}
	return s.db.Create(story).Error
}

func (s *Store) Get(id string) (*Story, error) {
	var story Story
	if err := s.db.First(&story, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// Recent returns up to limit stories, newest first.
func (s *Store) Recent(limit int) ([]Story, error) {
	if limit <= 0 {
		limit = 20
	}
	var stories []Story
	err := s.db.Order("created_at desc").Limit(limit).Find(&stories).Error
	return stories, err
}
