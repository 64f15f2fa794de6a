package services

import (
	"errors"
	"fmt"

	"github.com/fitme95/fitme-backend/internal/apperrors"
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/models"
	"github.com/fitme95/fitme-backend/internal/scope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const requiredMsg = "This field is required."

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Submit creates the caller's profile on first submission and partially
// updates it afterwards. The bool result reports whether a profile was
// created. There is never more than one profile row per user.
func (s *ProfileService) Submit(userID string, req dto.SubmitProfileRequest) (*models.Profile, bool, error) {
	if req.IsEmpty() {
		return nil, false, apperrors.NewValidation("No data provided")
	}

	var existing models.Profile
	err := s.db.Scopes(scope.OwnedBy(userID)).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.create(userID, req)
	}
	if err != nil {
		return nil, false, err
	}

	return s.update(&existing, req)
}

func (s *ProfileService) create(userID string, req dto.SubmitProfileRequest) (*models.Profile, bool, error) {
	ve := apperrors.NewValidation("Invalid profile data")
	if req.Weight == nil {
		ve.Add("weight", requiredMsg)
	}
	if req.Height == nil {
		ve.Add("height", requiredMsg)
	}
	if req.Age == nil {
		ve.Add("age", requiredMsg)
	}
	validateProfileChoices(req, ve)
	if ve.HasFields() {
		return nil, false, ve
	}

	profile := models.Profile{
		ID:           uuid.New(),
		UserID:       userID,
		Weight:       *req.Weight,
		Height:       *req.Height,
		Age:          *req.Age,
		Gender:       req.Gender,
		WeightUnit:   "kg",
		HeightUnit:   "cm",
		DistanceUnit: "km",
		LengthUnit:   "cm",
	}
	if req.WeightUnit != nil {
		profile.WeightUnit = *req.WeightUnit
	}
	if req.HeightUnit != nil {
		profile.HeightUnit = *req.HeightUnit
	}
	if req.DistanceUnit != nil {
		profile.DistanceUnit = *req.DistanceUnit
	}
	if req.LengthUnit != nil {
		profile.LengthUnit = *req.LengthUnit
	}
	if req.SelectedMeasurableItems != nil {
		profile.SelectedMeasurableItems = *req.SelectedMeasurableItems
	} else {
		profile.SelectedMeasurableItems = []string{}
	}

	if err := s.db.Create(&profile).Error; err != nil {
		return nil, false, &apperrors.IntegrityError{
			Message: "Database integrity error occurred while saving user profile",
			Err:     err,
		}
	}

	return &profile, true, nil
}

func (s *ProfileService) update(profile *models.Profile, req dto.SubmitProfileRequest) (*models.Profile, bool, error) {
	ve := apperrors.NewValidation("Invalid profile data")
	validateProfileChoices(req, ve)
	if ve.HasFields() {
		return nil, false, ve
	}

	if req.Weight != nil {
		profile.Weight = *req.Weight
	}
	if req.Height != nil {
		profile.Height = *req.Height
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = req.Gender
	}
	if req.WeightUnit != nil {
		profile.WeightUnit = *req.WeightUnit
	}
	if req.HeightUnit != nil {
		profile.HeightUnit = *req.HeightUnit
	}
	if req.DistanceUnit != nil {
		profile.DistanceUnit = *req.DistanceUnit
	}
	if req.LengthUnit != nil {
		profile.LengthUnit = *req.LengthUnit
	}
	if req.SelectedMeasurableItems != nil {
		profile.SelectedMeasurableItems = *req.SelectedMeasurableItems
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, false, &apperrors.IntegrityError{
			Message: "Database integrity error occurred while saving user profile",
			Err:     err,
		}
	}

	return profile, false, nil
}

// validateProfileChoices checks only the fields present in the request, so it
// serves both the full create pass and the partial update pass.
func validateProfileChoices(req dto.SubmitProfileRequest, ve *apperrors.ValidationError) {
	if req.Gender != nil && !contains(models.Genders, *req.Gender) {
		ve.Add("gender", invalidChoiceMsg(*req.Gender))
	}
	if req.WeightUnit != nil && !contains(models.WeightUnits, *req.WeightUnit) {
		ve.Add("weight_unit", invalidChoiceMsg(*req.WeightUnit))
	}
	if req.HeightUnit != nil && !contains(models.HeightUnits, *req.HeightUnit) {
		ve.Add("height_unit", invalidChoiceMsg(*req.HeightUnit))
	}
	if req.DistanceUnit != nil && !contains(models.DistanceUnits, *req.DistanceUnit) {
		ve.Add("distance_unit", invalidChoiceMsg(*req.DistanceUnit))
	}
	if req.LengthUnit != nil && !contains(models.LengthUnits, *req.LengthUnit) {
		ve.Add("length_unit", invalidChoiceMsg(*req.LengthUnit))
	}
	if req.SelectedMeasurableItems != nil {
		for _, item := range *req.SelectedMeasurableItems {
			if !contains(models.MeasurableItems, item) {
				ve.Add("selected_measurable_items", invalidChoiceMsg(item))
			}
		}
	}
}

func invalidChoiceMsg(value string) string {
	return fmt.Sprintf("%q is not a valid choice.", value)
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
