package service

import (
	"fmt"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

// Scaler min-max normalizes ordinal codes. It holds no state.
type Scaler struct{}

// NewScaler creates a new Scaler.
func NewScaler() *Scaler {
	return &Scaler{}
}

// Scale maps each ordinal code v in 1..K to (v-1)/(K-1) and passes binary
// indicators through. Codes outside a field's range are rejected so that no
// value outside [0, 1] can reach the classifier.
func (s *Scaler) Scale(encoded valueobject.EncodedFeatures) (valueobject.ScaledFeatures, error) {
	var out valueobject.ScaledFeatures
	for i, f := range valueobject.Fields() {
		v := encoded[i]
		switch f.Kind() {
		case valueobject.KindBinary:
			if v != 0 && v != 1 {
				return valueobject.ScaledFeatures{}, fmt.Errorf("binary field %s has code %d", f, v)
			}
			out[i] = float64(v)
		case valueobject.KindOrdinal:
			k := f.Levels()
			if v < 1 || v > k {
				return valueobject.ScaledFeatures{}, fmt.Errorf("ordinal field %s has code %d outside 1..%d", f, v, k)
			}
			out[i] = float64(v-1) / float64(k-1)
		}
	}
	return out, nil
}
