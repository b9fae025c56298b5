// ABOUTME: Domain types for student feature records and their fixed feature contract
// ABOUTME: Defines the feature column order shared by scaler, models and cache keys

package domain

// FeatureColumns is the fixed feature order used at training time.
// The scaler and both models were fitted against columns in exactly
// this order; reordering here would silently corrupt every prediction.
var FeatureColumns = []string{
	"comprehension",
	"attention",
	"focus",
	"retention",
	"engagement_time",
}

// StudentFeatures is one student's measured attributes.
// Identity for caching purposes is the field values, not the struct instance.
type StudentFeatures struct {
	// Comprehension score (0-100)
	Comprehension float64 `json:"comprehension"`

	// Attention score (0-100)
	Attention float64 `json:"attention"`

	// Focus score (0-100)
	Focus float64 `json:"focus"`

	// Retention score (0-100)
	Retention float64 `json:"retention"`

	// EngagementTime in minutes (0-300)
	EngagementTime int `json:"engagement_time"`
}

// Vector returns the feature values in FeatureColumns order.
func (s StudentFeatures) Vector() []float64 {
	return []float64{
		s.Comprehension,
		s.Attention,
		s.Focus,
		s.Retention,
		float64(s.EngagementTime),
	}
}
