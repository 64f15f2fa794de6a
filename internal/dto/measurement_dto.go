package dto

import "time"

type WaistPayload struct {
	Waist      *float64 `json:"waist"`
	AboveBelow *int     `json:"above_below"`
}

type CreateMeasurementRequest struct {
	BodyWeight *float64      `json:"body_weight"`
	BodyFat    *float64      `json:"body_fat"`
	Chest      *float64      `json:"chest"`
	Date       *time.Time    `json:"date"`
	Waist      *WaistPayload `json:"waist"`
}

func (r CreateMeasurementRequest) IsEmpty() bool {
	return r.BodyWeight == nil &&
		r.BodyFat == nil &&
		r.Chest == nil &&
		r.Date == nil &&
		r.Waist == nil
}

// UpdateMeasurementRequest has no date field: the measurement date is fixed
// at creation.
type UpdateMeasurementRequest struct {
	BodyWeight *float64      `json:"body_weight"`
	BodyFat    *float64      `json:"body_fat"`
	Chest      *float64      `json:"chest"`
	Waist      *WaistPayload `json:"waist"`
}

func (r UpdateMeasurementRequest) IsEmpty() bool {
	return r.BodyWeight == nil &&
		r.BodyFat == nil &&
		r.Chest == nil &&
		r.Waist == nil
}
