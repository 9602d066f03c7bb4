package services

import (
	"errors"
	"strings"

	"hotel-pms-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) validate(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return validationErr("roomNumber", "room number is required")
	}
	if !room.RoomType.Valid() {
		return validationErr("roomType", "unknown room type "+string(room.RoomType))
	}
	if room.Floor < 0 {
		return validationErr("floor", "floor must not be negative")
	}
	if room.MaxOccupancy < 1 {
		return validationErr("maxOccupancy", "max occupancy must be at least 1")
	}
	if room.RatePerNight < 0 {
		return validationErr("ratePerNight", "nightly rate must not be negative")
	}
	return nil
}

func (s *RoomService) Create(room *models.Room) error {
	if err := s.validate(room); err != nil {
		return err
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if !room.Status.Valid() {
		return validationErr("status", "unknown room status "+string(room.Status))
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKey(err) {
			return &ConflictError{Entity: "room", Message: "room number '" + room.RoomNumber + "' already exists"}
		}
		return err
	}
	return nil
}

func (s *RoomService) Update(id uint, patch *models.Room) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("room", id)
		}
		return nil, err
	}

	patch.ID = room.ID
	patch.Status = room.Status // status changes only go through SetStatus
	if err := s.validate(patch); err != nil {
		return nil, err
	}

	if err := s.DB.Model(&room).Updates(map[string]interface{}{
		"room_number":    patch.RoomNumber,
		"room_type":      patch.RoomType,
		"floor":          patch.Floor,
		"max_occupancy":  patch.MaxOccupancy,
		"rate_per_night": patch.RatePerNight,
		"amenities":      patch.Amenities,
		"description":    patch.Description,
	}).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, &ConflictError{Entity: "room", ID: id, Message: "room number '" + patch.RoomNumber + "' already exists"}
		}
		return nil, err
	}

	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// SetStatus is used by the reservation and housekeeping services. It checks
// enum membership only; transition rules live with the callers.
func (s *RoomService) SetStatus(id uint, status models.RoomStatus) error {
	return s.setStatusTx(s.DB, id, status)
}

func (s *RoomService) setStatusTx(tx *gorm.DB, id uint, status models.RoomStatus) error {
	if !status.Valid() {
		return validationErr("status", "unknown room status "+string(status))
	}
	res := tx.Model(&models.Room{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("room", id)
	}
	return nil
}

// ClaimForStay flips a room to occupied with a compare-and-swap on its prior
// status so two simultaneous check-ins cannot both take the same room.
func (s *RoomService) ClaimForStay(tx *gorm.DB, id uint) error {
	res := tx.Model(&models.Room{}).
		Where("id = ? AND status IN ?", id, []models.RoomStatus{models.RoomAvailable, models.RoomReserved}).
		Update("status", models.RoomOccupied)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("room", id)
			}
			return err
		}
		return &ConflictError{Entity: "room", ID: id,
			Message: "room is " + string(room.Status) + ", not available for check-in"}
	}
	return nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("room", id)
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) GetAll(status models.RoomStatus) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.Order("room_number ASC")
	if status != "" {
		if !status.Valid() {
			return nil, validationErr("status", "unknown room status "+string(status))
		}
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
