package valueobject

// Field names one of the questionnaire inputs. The string value is the form key.
type Field string

const (
	FieldGender          Field = "Gender"
	FieldAge             Field = "Age"
	FieldHistory         Field = "History"
	FieldPatient         Field = "Patient"
	FieldTakeMedication  Field = "TakeMedication"
	FieldSeverity        Field = "Severity"
	FieldBreathShortness Field = "Breathshortness"
	FieldVisualChanges   Field = "Visualchanges"
	FieldNoseBleeding    Field = "Nosebleeding"
	FieldWhenDiagnosed   Field = "whendiagnosed"
	FieldSystolic        Field = "Systolic"
	FieldDiastolic       Field = "Diastolic"
	FieldControlledDiet  Field = "ControlledDiet"
)

// FieldCount is the length of every feature vector.
const FieldCount = 13

// FieldKind distinguishes binary indicators from ordinal codes.
type FieldKind int

const (
	KindBinary FieldKind = iota
	KindOrdinal
)

func (k FieldKind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindOrdinal:
		return "ordinal"
	default:
		return "unknown"
	}
}

// featureOrder is the column order the classifier was trained on.
var featureOrder = [FieldCount]Field{
	FieldGender,
	FieldAge,
	FieldHistory,
	FieldPatient,
	FieldTakeMedication,
	FieldSeverity,
	FieldBreathShortness,
	FieldVisualChanges,
	FieldNoseBleeding,
	FieldWhenDiagnosed,
	FieldSystolic,
	FieldDiastolic,
	FieldControlledDiet,
}

// Fields returns all fields in feature order.
func Fields() []Field {
	out := make([]Field, FieldCount)
	copy(out, featureOrder[:])
	return out
}

// Index returns the position of the field in the feature vector, or -1.
func (f Field) Index() int {
	for i, candidate := range featureOrder {
		if candidate == f {
			return i
		}
	}
	return -1
}

// Kind reports whether the field is binary or ordinal.
func (f Field) Kind() FieldKind {
	switch f {
	case FieldAge, FieldTakeMedication, FieldSeverity, FieldWhenDiagnosed, FieldSystolic, FieldDiastolic:
		return KindOrdinal
	default:
		return KindBinary
	}
}

// Levels returns K, the number of distinct codes an ordinal field takes (codes 1..K).
// Binary fields report 2.
func (f Field) Levels() int {
	switch f {
	case FieldAge:
		return 4
	case FieldTakeMedication, FieldSeverity, FieldWhenDiagnosed:
		return 3
	case FieldSystolic, FieldDiastolic:
		return 5
	default:
		return 2
	}
}

func (f Field) String() string {
	return string(f)
}
