package services

import (
	"errors"
	"time"

	"github.com/fitme95/fitme-backend/internal/apperrors"
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/models"
	"github.com/fitme95/fitme-backend/internal/scope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeasurementService struct {
	db *gorm.DB
}

func NewMeasurementService(db *gorm.DB) *MeasurementService {
	return &MeasurementService{db: db}
}

// Create validates the measurement and its nested waist in one pass, then
// persists the waist and the measurement in one transaction. The owner is
// always the authenticated caller; any client-supplied user is ignored by
// construction.
func (s *MeasurementService) Create(userID string, req dto.CreateMeasurementRequest) (*models.Measurement, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidation("No data provided")
	}

	ve := apperrors.NewValidation("Invalid measurement data")
	if req.BodyWeight == nil {
		ve.Add("body_weight", requiredMsg)
	}
	if req.BodyFat == nil {
		ve.Add("body_fat", requiredMsg)
	}
	if req.Chest == nil {
		ve.Add("chest", requiredMsg)
	}
	if req.Waist == nil {
		ve.Add("waist", requiredMsg)
	} else {
		validateWaist(*req.Waist, true, ve)
	}
	if ve.HasFields() {
		return nil, ve
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}

	waist := models.Waist{
		ID:         uuid.New(),
		Waist:      *req.Waist.Waist,
		AboveBelow: *req.Waist.AboveBelow,
	}
	measurement := models.Measurement{
		ID:         uuid.New(),
		UserID:     userID,
		BodyWeight: *req.BodyWeight,
		BodyFat:    *req.BodyFat,
		Chest:      *req.Chest,
		Date:       date,
		WaistID:    waist.ID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&waist).Error; err != nil {
			return err
		}
		return tx.Omit("Waist").Create(&measurement).Error
	})
	if err != nil {
		return nil, &apperrors.IntegrityError{
			Message: "Database error occurred while saving measurement",
			Err:     err,
		}
	}

	measurement.Waist = waist
	return &measurement, nil
}

func (s *MeasurementService) List(userID string) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := s.db.Preload("Waist").
		Scopes(scope.OwnedBy(userID)).
		Order("date DESC").
		Find(&measurements).Error
	return measurements, err
}

// Update merges supplied fields into the stored measurement; nested waist
// fields merge field-by-field into the existing waist row. The date never
// changes.
func (s *MeasurementService) Update(userID string, id uuid.UUID, req dto.UpdateMeasurementRequest) (*models.Measurement, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidation("No data provided")
	}

	measurement, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	ve := apperrors.NewValidation("Invalid measurement data")
	if req.Waist != nil {
		validateWaist(*req.Waist, false, ve)
	}
	if ve.HasFields() {
		return nil, ve
	}

	if req.BodyWeight != nil {
		measurement.BodyWeight = *req.BodyWeight
	}
	if req.BodyFat != nil {
		measurement.BodyFat = *req.BodyFat
	}
	if req.Chest != nil {
		measurement.Chest = *req.Chest
	}
	if req.Waist != nil {
		if req.Waist.Waist != nil {
			measurement.Waist.Waist = *req.Waist.Waist
		}
		if req.Waist.AboveBelow != nil {
			measurement.Waist.AboveBelow = *req.Waist.AboveBelow
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&measurement.Waist).Error; err != nil {
			return err
		}
		return tx.Omit("Waist").Save(measurement).Error
	})
	if err != nil {
		return nil, &apperrors.IntegrityError{
			Message: "Database error occurred while saving measurement",
			Err:     err,
		}
	}

	return measurement, nil
}

// Delete removes the measurement and its owned waist as one logical unit.
func (s *MeasurementService) Delete(userID string, id uuid.UUID) error {
	measurement, err := s.getOwned(userID, id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Measurement{}, "id = ?", measurement.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Waist{}, "id = ?", measurement.WaistID).Error
	})
	if err != nil {
		return &apperrors.IntegrityError{
			Message: "Failed to delete measurement",
			Err:     err,
		}
	}

	return nil
}

// getOwned reports the same not-found error for a missing row and another
// user's row.
func (s *MeasurementService) getOwned(userID string, id uuid.UUID) (*models.Measurement, error) {
	var measurement models.Measurement
	err := s.db.Preload("Waist").
		Scopes(scope.OwnedBy(userID)).
		First(&measurement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Message: "Measurement not found"}
	}
	if err != nil {
		return nil, err
	}
	return &measurement, nil
}

func validateWaist(w dto.WaistPayload, required bool, ve *apperrors.ValidationError) {
	if required && w.Waist == nil {
		ve.Add("waist.waist", requiredMsg)
	}
	if required && w.AboveBelow == nil {
		ve.Add("waist.above_below", requiredMsg)
	}
	if w.AboveBelow != nil && *w.AboveBelow != 0 && *w.AboveBelow != 1 {
		ve.Add("waist.above_below", "Value must be 0 or 1.")
	}
}
