package dto

// SubmitProfileRequest carries the onboarding payload. Pointer fields
// distinguish "omitted" from zero values so partial updates only touch what
// the client sent.
type SubmitProfileRequest struct {
	Weight                  *float64  `json:"weight"`
	Height                  *float64  `json:"height"`
	Age                     *float64  `json:"age"`
	Gender                  *string   `json:"gender"`
	WeightUnit              *string   `json:"weight_unit"`
	HeightUnit              *string   `json:"height_unit"`
	DistanceUnit            *string   `json:"distance_unit"`
	LengthUnit              *string   `json:"length_unit"`
	SelectedMeasurableItems *[]string `json:"selected_measurable_items"`
}

func (r SubmitProfileRequest) IsEmpty() bool {
	return r.Weight == nil &&
		r.Height == nil &&
		r.Age == nil &&
		r.Gender == nil &&
		r.WeightUnit == nil &&
		r.HeightUnit == nil &&
		r.DistanceUnit == nil &&
		r.LengthUnit == nil &&
		r.SelectedMeasurableItems == nil
}
