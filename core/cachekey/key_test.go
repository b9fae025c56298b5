package cachekey

import (
	"strings"
	"testing"

	"studentperf-api/core/domain"
)

func sampleFeatures() domain.StudentFeatures {
	return domain.StudentFeatures{
		Comprehension:  85.5,
		Attention:      72.0,
		Focus:          68.3,
		Retention:      90.1,
		EngagementTime: 120,
	}
}

func TestDerive_Deterministic(t *testing.T) {
	a := Derive(PrefixCluster, sampleFeatures())
	b := Derive(PrefixCluster, sampleFeatures())

	if a != b {
		t.Errorf("Derive is not deterministic: %q != %q", a, b)
	}
}

func TestDerive_IndependentOfAssemblyOrder(t *testing.T) {
	// Two records assembled field-by-field in different orders must hash
	// identically; only the field values matter.
	first := domain.StudentFeatures{}
	first.Comprehension = 85.5
	first.Attention = 72.0
	first.Focus = 68.3
	first.Retention = 90.1
	first.EngagementTime = 120

	second := domain.StudentFeatures{}
	second.EngagementTime = 120
	second.Retention = 90.1
	second.Focus = 68.3
	second.Attention = 72.0
	second.Comprehension = 85.5

	if Derive(PrefixPredict, first) != Derive(PrefixPredict, second) {
		t.Error("keys differ for records with identical field values")
	}
}

func TestDerive_SensitiveToEachField(t *testing.T) {
	base := Derive(PrefixCluster, sampleFeatures())

	variants := []struct {
		name    string
		mutate  func(*domain.StudentFeatures)
	}{
		{"comprehension", func(f *domain.StudentFeatures) { f.Comprehension += 0.1 }},
		{"attention", func(f *domain.StudentFeatures) { f.Attention += 0.1 }},
		{"focus", func(f *domain.StudentFeatures) { f.Focus += 0.1 }},
		{"retention", func(f *domain.StudentFeatures) { f.Retention += 0.1 }},
		{"engagement_time", func(f *domain.StudentFeatures) { f.EngagementTime++ }},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			features := sampleFeatures()
			v.mutate(&features)

			if Derive(PrefixCluster, features) == base {
				t.Errorf("key unchanged after mutating %s", v.name)
			}
		})
	}
}

func TestDerive_PrefixesAreDisjoint(t *testing.T) {
	features := sampleFeatures()

	predictKey := Derive(PrefixPredict, features)
	clusterKey := Derive(PrefixCluster, features)

	if predictKey == clusterKey {
		t.Error("predict and cluster keys must never collide for the same record")
	}
	if !strings.HasPrefix(predictKey, "predict:") {
		t.Errorf("predict key %q missing namespace prefix", predictKey)
	}
	if !strings.HasPrefix(clusterKey, "cluster:") {
		t.Errorf("cluster key %q missing namespace prefix", clusterKey)
	}
}

func TestDerive_KeyLength(t *testing.T) {
	key := Derive(PrefixPredict, sampleFeatures())

	wantLen := len("predict:") + keyHashLen
	if len(key) != wantLen {
		t.Errorf("key length = %d, want %d", len(key), wantLen)
	}
}
