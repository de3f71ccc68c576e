package valueobject

// FormInput holds one answer per field after validation.
type FormInput map[Field]string

// EncodedFeatures is the integer-coded questionnaire in feature order.
type EncodedFeatures [FieldCount]int

// ScaledFeatures is the min-max normalized feature vector handed to the classifier.
type ScaledFeatures [FieldCount]float64

// Get returns the code at the field's position.
func (e EncodedFeatures) Get(f Field) int {
	return e[f.Index()]
}

// Ints returns the codes as a slice.
func (e EncodedFeatures) Ints() []int {
	out := make([]int, FieldCount)
	copy(out, e[:])
	return out
}

// Get returns the scaled value at the field's position.
func (s ScaledFeatures) Get(f Field) float64 {
	return s[f.Index()]
}

// Floats returns a copy of the vector as a slice, the shape classifiers consume.
func (s ScaledFeatures) Floats() []float64 {
	out := make([]float64, FieldCount)
	copy(out, s[:])
	return out
}
