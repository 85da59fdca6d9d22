package model

import "time"

type Lease struct {
	DTO
	AccommodationID uint          `gorm:"index;not null" json:"accommodationId"`
	Accommodation   Accommodation `gorm:"foreignKey:AccommodationID;references:ID" json:"-"`
	TenantID        uint          `gorm:"index" json:"tenantId"`
	Tenant          User          `gorm:"foreignKey:TenantID;references:ID" json:"-"`
	Active          bool          `gorm:"default:false" json:"active"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
}
