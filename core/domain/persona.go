// ABOUTME: Persona enumeration mapping cluster labels to human-readable names
// ABOUTME: A closed, static set determined by the offline clustering analysis

package domain

// UnknownPersona is returned for cluster labels outside the trained set.
const UnknownPersona = "Unknown Persona"

// DefaultConfidence is attached to every cluster assignment. KMeans does
// not produce a probability, so confidence is a fixed qualitative marker.
const DefaultConfidence = "high"

// personaNames maps cluster labels to persona names. The set is fixed at
// training time and never learned at request time.
var personaNames = map[int]string{
	0: "Consistent Learner",
	1: "Highly Engaged High Performer",
	2: "Low Engagement Risk",
	3: "Developing Performer",
}

// PersonaFor returns the persona name for a cluster label, or
// UnknownPersona for labels outside the trained set.
func PersonaFor(label int) string {
	if name, ok := personaNames[label]; ok {
		return name
	}
	return UnknownPersona
}

// Personas returns all persona names ordered by cluster label.
func Personas() []string {
	names := make([]string, 0, len(personaNames))
	for label := 0; label < len(personaNames); label++ {
		names = append(names, personaNames[label])
	}
	return names
}

// PersonaMapping returns a copy of the label-to-name mapping.
func PersonaMapping() map[int]string {
	mapping := make(map[int]string, len(personaNames))
	for label, name := range personaNames {
		mapping[label] = name
	}
	return mapping
}
