package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID assigns a random identifier on first insert. Identifiers are never
// reused.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	newID(&b.ID)
	return nil
}

func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	newID(&e.ID)
	return nil
}

func (a *Advertisement) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	newID(&l.ID)
	return nil
}
