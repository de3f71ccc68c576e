package valueobject

// Option is one selectable answer for a field together with the code it encodes to.
type Option struct {
	Label string `json:"label"`
	Code  int    `json:"code"`
}

// Canonical answer labels, as submitted by the questionnaire form.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"

	AnswerYes = "Yes"
	AnswerNo  = "No"

	Age18To34 = "18-34"
	Age35To50 = "35-50"
	Age51To64 = "51-64"
	Age65Plus = "65+"

	MedicationNever     = "Never taken medication"
	MedicationAlways    = "Yes, always"
	MedicationSometimes = "Yes, sometimes"

	SeverityMild     = "Mild"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"

	DiagnosedCantRecall   = "I can't recall"
	DiagnosedUnderOneYear = "<1 Year"
	DiagnosedOneToFive    = "1-5 years"
	DiagnosedOverFive     = "5+ years"

	SystolicUnder100 = "<100"
	Systolic100To110 = "100 - 110"
	Systolic111To120 = "111 - 120"
	Systolic121To130 = "121 - 130"
	SystolicOver130  = "130+"

	DiastolicUnder70 = "<70"
	Diastolic70To80  = "70 - 80"
	Diastolic81To90  = "81 - 90"
	Diastolic91To100 = "91 - 100"
	DiastolicOver100 = "100+"
)

// Options returns the allowed answers for the field in display order.
func (f Field) Options() []Option {
	switch f {
	case FieldGender:
		return []Option{{GenderMale, 1}, {GenderFemale, 0}}
	case FieldAge:
		return []Option{{Age18To34, 1}, {Age35To50, 2}, {Age51To64, 3}, {Age65Plus, 4}}
	case FieldTakeMedication:
		return []Option{{MedicationNever, 1}, {MedicationAlways, 2}, {MedicationSometimes, 3}}
	case FieldSeverity:
		return []Option{{SeverityMild, 1}, {SeverityModerate, 2}, {SeveritySevere, 3}}
	case FieldWhenDiagnosed:
		return []Option{
			{DiagnosedCantRecall, 1},
			{DiagnosedUnderOneYear, 1},
			{DiagnosedOneToFive, 2},
			{DiagnosedOverFive, 3},
		}
	case FieldSystolic:
		return []Option{
			{SystolicUnder100, 1},
			{Systolic100To110, 2},
			{Systolic111To120, 3},
			{Systolic121To130, 4},
			{SystolicOver130, 5},
		}
	case FieldDiastolic:
		return []Option{
			{DiastolicUnder70, 1},
			{Diastolic70To80, 2},
			{Diastolic81To90, 3},
			{Diastolic91To100, 4},
			{DiastolicOver100, 5},
		}
	case FieldHistory, FieldPatient, FieldBreathShortness, FieldVisualChanges, FieldNoseBleeding, FieldControlledDiet:
		return []Option{{AnswerYes, 1}, {AnswerNo, 0}}
	default:
		return nil
	}
}
