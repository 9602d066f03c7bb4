package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance, RoomReserved:
		return true
	}
	return false
}

type RoomType string

const (
	RoomTypeSingle       RoomType = "single"
	RoomTypeDouble       RoomType = "double"
	RoomTypeSuite        RoomType = "suite"
	RoomTypeDeluxe       RoomType = "deluxe"
	RoomTypePresidential RoomType = "presidential"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe, RoomTypePresidential:
		return true
	}
	return false
}

type Room struct {
	gorm.Model

	RoomNumber string     `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomType   RoomType   `json:"roomType" gorm:"column:room_type;size:32"`
	Status     RoomStatus `json:"status" gorm:"size:32;default:available"`

	Floor        int     `json:"floor"`
	MaxOccupancy int     `json:"maxOccupancy" gorm:"column:max_occupancy;default:1"`
	RatePerNight float64 `json:"ratePerNight" gorm:"column:rate_per_night"`

	// stored as a JSON string array, e.g. ["wifi","minibar"]
	Amenities   datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`
	Description string         `json:"description" gorm:"type:text"`
}
