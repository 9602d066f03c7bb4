package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"

	"gorm.io/gorm"
)

type AccessKeyService struct {
	DB *gorm.DB
}

func NewAccessKeyService(db *gorm.DB) *AccessKeyService {
	return &AccessKeyService{DB: db}
}

type GenerateAccessKeyInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CompanyName   string
	Notes         string
}

// Generate creates a single-use onboarding key and emails it to the customer.
// Key creation retries on unique collision; the email leg is outside the
// write and reported as a PartialFailureError so the operator can resend.
func (s *AccessKeyService) Generate(in GenerateAccessKeyInput) (*models.AccessKey, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.CustomerName == "" {
		return nil, validationErr("customerName", "customer name is required")
	}
	if in.CustomerEmail == "" {
		return nil, validationErr("customerEmail", "customer email is required")
	}

	var key *models.AccessKey
	maxRetries := 5
	var createErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		code, err := utils.GenerateAccessKeyCode()
		if err != nil {
			return nil, err
		}

		key = &models.AccessKey{
			AccessKey:     code,
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			CustomerPhone: strings.TrimSpace(in.CustomerPhone),
			CompanyName:   strings.TrimSpace(in.CompanyName),
			Notes:         in.Notes,
		}

		createErr = s.DB.Create(key).Error
		if createErr == nil {
			break
		}
		if isDuplicateKey(createErr) {
			log.Printf("access key collision (attempt %d) - retrying", attempt+1)
			continue
		}
		return nil, createErr
	}
	if createErr != nil {
		return nil, createErr
	}

	if mailErr := utils.SendAccessKeyEmail(key.CustomerEmail, key.CustomerName, key.AccessKey); mailErr != nil {
		return key, &PartialFailureError{
			Operation: "access key generation",
			Completed: []string{"key created"},
			Failed:    "invitation email",
			Err:       mailErr,
		}
	}
	return key, nil
}

// Redeem consumes a key exactly once. The is_used guard rides in the UPDATE's
// WHERE clause, so two concurrent redemptions cannot both succeed.
func (s *AccessKeyService) Redeem(rawKey string) (*models.AccessKey, error) {
	code := utils.NormalizeAccessKeyCode(rawKey)
	if code == "" {
		return nil, validationErr("accessKey", "access key is required")
	}

	var key models.AccessKey
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("access_key = ?", code).First(&key).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "access key"}
			}
			return err
		}
		if key.IsUsed {
			return &ConflictError{Entity: "access key", ID: key.ID,
				Message: "access key has already been used"}
		}

		now := time.Now().UTC()
		res := tx.Model(&models.AccessKey{}).
			Where("id = ? AND is_used = ?", key.ID, false).
			Updates(map[string]interface{}{"is_used": true, "used_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &ConflictError{Entity: "access key", ID: key.ID,
				Message: "access key has already been used"}
		}
		key.IsUsed = true
		key.UsedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *AccessKeyService) GetAll() ([]models.AccessKey, error) {
	var keys []models.AccessKey
	if err := s.DB.Order("created_at DESC").Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *AccessKeyService) Delete(id uint) error {
	res := s.DB.Delete(&models.AccessKey{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("access key", id)
	}
	return nil
}
