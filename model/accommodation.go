package model

type Accommodation struct {
	DTO
	Name      string  `gorm:"not null" json:"name"`
	Type      string  `gorm:"not null" json:"type"` // House, Apartment, ...
	Desc      string  `gorm:"not null" json:"desc"`
	Address   string  `gorm:"not null" json:"address"`
	Available bool    `gorm:"default:true" json:"availability"`
	Slug      string  `gorm:"uniqueIndex" json:"slug"`
	UserID    uint    `gorm:"index;not null" json:"ownerId"`
	Owner     User    `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE" json:"-"`
	Leases    []Lease `gorm:"foreignKey:AccommodationID" json:"-"`
	Events    []Event `gorm:"foreignKey:AccommodationID" json:"-"`
}

type CreateAccommodationInput struct {
	Name      string `json:"name" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Desc      string `json:"desc" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Available *bool  `json:"availability" validate:"required"`
	OwnerID   *uint  `json:"ownerId" validate:"required,gt=0"`
}

// UpdateAccommodationInput distinguishes "not supplied" (nil) from an
// explicit value, so availability can be cleared without ambiguity.
type UpdateAccommodationInput struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Address   *string `json:"address"`
	Desc      *string `json:"desc"`
	Available *bool   `json:"availability"`
}
