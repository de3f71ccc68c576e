package service

import (
	vo "github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

// Encoder turns validated answers into integer feature codes.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode applies each field's lookup table in feature order. The first answer
// without a code yields an *EncodingError naming the field and value.
func (e *Encoder) Encode(input vo.FormInput) (vo.EncodedFeatures, error) {
	var out vo.EncodedFeatures
	for i, f := range vo.Fields() {
		value := input[f]
		code, ok := encodeField(f, value)
		if !ok {
			return vo.EncodedFeatures{}, &EncodingError{Field: f, Value: value}
		}
		out[i] = code
	}
	return out, nil
}

func encodeField(f vo.Field, value string) (int, bool) {
	switch f {
	case vo.FieldGender:
		return encodeGender(value)
	case vo.FieldAge:
		return encodeAge(value)
	case vo.FieldHistory, vo.FieldPatient, vo.FieldBreathShortness,
		vo.FieldVisualChanges, vo.FieldNoseBleeding, vo.FieldControlledDiet:
		return encodeYesNo(value)
	case vo.FieldTakeMedication:
		return encodeMedication(value)
	case vo.FieldSeverity:
		return encodeSeverity(value)
	case vo.FieldWhenDiagnosed:
		return encodeWhenDiagnosed(value)
	case vo.FieldSystolic:
		return encodeSystolic(value)
	case vo.FieldDiastolic:
		return encodeDiastolic(value)
	default:
		return 0, false
	}
}

func encodeGender(value string) (int, bool) {
	switch value {
	case vo.GenderMale:
		return 1, true
	case vo.GenderFemale:
		return 0, true
	default:
		return 0, false
	}
}

func encodeYesNo(value string) (int, bool) {
	switch value {
	case vo.AnswerYes:
		return 1, true
	case vo.AnswerNo:
		return 0, true
	default:
		return 0, false
	}
}

func encodeAge(value string) (int, bool) {
	switch value {
	case vo.Age18To34:
		return 1, true
	case vo.Age35To50:
		return 2, true
	case vo.Age51To64:
		return 3, true
	case vo.Age65Plus:
		return 4, true
	default:
		return 0, false
	}
}

func encodeMedication(value string) (int, bool) {
	switch value {
	case vo.MedicationNever:
		return 1, true
	case vo.MedicationAlways:
		return 2, true
	case vo.MedicationSometimes:
		return 3, true
	default:
		return 0, false
	}
}

func encodeSeverity(value string) (int, bool) {
	switch value {
	case vo.SeverityMild:
		return 1, true
	case vo.SeverityModerate:
		return 2, true
	case vo.SeveritySevere:
		return 3, true
	default:
		return 0, false
	}
}

func encodeWhenDiagnosed(value string) (int, bool) {
	switch value {
	case vo.DiagnosedCantRecall, vo.DiagnosedUnderOneYear:
		return 1, true
	case vo.DiagnosedOneToFive:
		return 2, true
	case vo.DiagnosedOverFive:
		return 3, true
	default:
		return 0, false
	}
}

func encodeSystolic(value string) (int, bool) {
	switch value {
	case vo.SystolicUnder100:
		return 1, true
	case vo.Systolic100To110:
		return 2, true
	case vo.Systolic111To120:
		return 3, true
	case vo.Systolic121To130:
		return 4, true
	case vo.SystolicOver130:
		return 5, true
	default:
		return 0, false
	}
}

func encodeDiastolic(value string) (int, bool) {
	switch value {
	case vo.DiastolicUnder70:
		return 1, true
	case vo.Diastolic70To80:
		return 2, true
	case vo.Diastolic81To90:
		return 3, true
	case vo.Diastolic91To100:
		return 4, true
	case vo.DiastolicOver100:
		return 5, true
	default:
		return 0, false
	}
}
