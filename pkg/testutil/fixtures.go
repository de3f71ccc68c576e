package testutil

// BaselineFields is the lowest-risk complete questionnaire, keyed by form field
// name. It encodes to [1,1,0,0,1,1,0,0,0,1,1,1,1].
func BaselineFields() map[string]string {
	return map[string]string{
		"Gender":          "Male",
		"Age":             "18-34",
		"History":         "No",
		"Patient":         "No",
		"TakeMedication":  "Never taken medication",
		"Severity":        "Mild",
		"Breathshortness": "No",
		"Visualchanges":   "No",
		"Nosebleeding":    "No",
		"whendiagnosed":   "I can't recall",
		"Systolic":        "<100",
		"Diastolic":       "<70",
		"ControlledDiet":  "Yes",
	}
}

// HighRiskFields is BaselineFields with every ordinal answer at its top level.
func HighRiskFields() map[string]string {
	f := BaselineFields()
	f["Age"] = "65+"
	f["TakeMedication"] = "Yes, sometimes"
	f["Severity"] = "Severe"
	f["whendiagnosed"] = "5+ years"
	f["Systolic"] = "130+"
	f["Diastolic"] = "100+"
	return f
}

// BaselineEncoded is the encoded vector of BaselineFields.
func BaselineEncoded() []int {
	return []int{1, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1}
}

// BaselineScaled is the scaled vector of BaselineFields.
func BaselineScaled() []float64 {
	return []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
}
