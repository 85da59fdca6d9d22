package model

import "time"

// Event rows have no independent lifecycle here: they are created alongside
// an accommodation's activity and removed when it is deleted.
type Event struct {
	DTO
	AccommodationID uint          `gorm:"index;not null" json:"accommodationId"`
	Accommodation   Accommodation `gorm:"foreignKey:AccommodationID;references:ID" json:"-"`
	Name            string        `gorm:"not null" json:"name"`
	Code            string        `gorm:"uniqueIndex" json:"code"`
	Date            time.Time     `json:"date"`
}
