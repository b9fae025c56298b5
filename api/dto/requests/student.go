// ABOUTME: Request DTOs for prediction and clustering endpoints
// ABOUTME: Provides validation bounds for incoming student feature records

package requests

import "studentperf-api/core/domain"

// StudentFeaturesRequest represents one student's feature record
type StudentFeaturesRequest struct {
	// Comprehension score (0-100)
	Comprehension float64 `json:"comprehension" minimum:"0" maximum:"100" doc:"Comprehension score (0-100)"`

	// Attention score (0-100)
	Attention float64 `json:"attention" minimum:"0" maximum:"100" doc:"Attention score (0-100)"`

	// Focus score (0-100)
	Focus float64 `json:"focus" minimum:"0" maximum:"100" doc:"Focus score (0-100)"`

	// Retention score (0-100)
	Retention float64 `json:"retention" minimum:"0" maximum:"100" doc:"Retention score (0-100)"`

	// EngagementTime in minutes (0-300)
	EngagementTime int `json:"engagement_time" minimum:"0" maximum:"300" doc:"Engagement time in minutes (0-300)"`
}

// ToDomain converts the request record to the domain type
func (r StudentFeaturesRequest) ToDomain() domain.StudentFeatures {
	return domain.StudentFeatures{
		Comprehension:  r.Comprehension,
		Attention:      r.Attention,
		Focus:          r.Focus,
		Retention:      r.Retention,
		EngagementTime: r.EngagementTime,
	}
}

// BatchStudentsRequest represents the request body for batch endpoints
type BatchStudentsRequest struct {
	// Students is the list of feature records, at most 100 per batch
	Students []StudentFeaturesRequest `json:"students" minItems:"1" maxItems:"100" doc:"List of students (max 100 per batch)"`
}

// ToDomain converts the batch request to domain records
func (r BatchStudentsRequest) ToDomain() []domain.StudentFeatures {
	records := make([]domain.StudentFeatures, len(r.Students))
	for i, student := range r.Students {
		records[i] = student.ToDomain()
	}
	return records
}

// LoginRequest represents the credentials for token issuance
type LoginRequest struct {
	// Username identifies the caller in issued tokens
	Username string `json:"username" required:"true" minLength:"1" doc:"Caller identity"`

	// APIKey is the service API key
	APIKey string `json:"api_key" required:"true" minLength:"1" doc:"Service API key"`
}
