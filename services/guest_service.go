package services

import (
	"errors"
	"log"
	"strings"

	"hotel-pms-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) validate(guest *models.Guest) error {
	guest.FirstName = strings.TrimSpace(guest.FirstName)
	guest.LastName = strings.TrimSpace(guest.LastName)
	if guest.FirstName == "" {
		return validationErr("firstName", "first name is required")
	}
	if guest.LastName == "" {
		return validationErr("lastName", "last name is required")
	}
	if guest.LoyaltyPoints < 0 {
		return validationErr("loyaltyPoints", "loyalty points must not be negative")
	}
	return nil
}

func (s *GuestService) Create(guest *models.Guest) error {
	if err := s.validate(guest); err != nil {
		return err
	}
	err := s.DB.Create(guest).Error
	if err != nil {
		log.Printf("GuestService.Create failed: %v", err)
	}
	return err
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("id DESC").Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("guest", id)
		}
		return nil, err
	}
	return &guest, nil
}

func (s *GuestService) Update(id uint, patch *models.Guest) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("guest", id)
		}
		return nil, err
	}

	if err := s.validate(patch); err != nil {
		return nil, err
	}

	if err := s.DB.Model(&guest).Updates(map[string]interface{}{
		"first_name":     patch.FirstName,
		"last_name":      patch.LastName,
		"email":          patch.Email,
		"phone":          patch.Phone,
		"nationality":    patch.Nationality,
		"id_number":      patch.IDNumber,
		"preferences":    patch.Preferences,
		"loyalty_points": patch.LoyaltyPoints,
	}).Error; err != nil {
		return nil, err
	}

	if err := s.DB.First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// Delete refuses while any open (non-terminal) reservation still references
// the guest, so reservations never point at a missing profile.
func (s *GuestService) Delete(id uint) error {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("guest", id)
		}
		return err
	}

	var open int64
	if err := s.DB.Model(&models.Reservation{}).
		Where("guest_id = ? AND status IN ?", id, []models.ReservationStatus{
			models.ReservationPending,
			models.ReservationConfirmed,
			models.ReservationCheckedIn,
		}).
		Count(&open).Error; err != nil {
		return err
	}
	if open > 0 {
		return &ConflictError{Entity: "guest", ID: id,
			Message: "guest has open reservations and cannot be deleted"}
	}

	return s.DB.Delete(&guest).Error
}

// addLoyaltyPointsTx is called on checkout; a zero delta is a no-op.
func (s *GuestService) addLoyaltyPointsTx(tx *gorm.DB, id uint, delta int) error {
	if delta <= 0 {
		return nil
	}
	res := tx.Model(&models.Guest{}).Where("id = ?", id).
		Update("loyalty_points", gorm.Expr("loyalty_points + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("guest", id)
	}
	return nil
}
