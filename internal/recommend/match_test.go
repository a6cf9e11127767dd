package recommend

import (
	"math"
	"slices"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInterestMatch(t *testing.T) {
	medicine := []string{"helping people", "science", "medicine", "healthcare", "research", "biology"}

	tests := []struct {
		name      string
		interests []string
		related   []string
		want      float64
	}{
		{"no interests is neutral", nil, medicine, 0.5},
		{"direct and synonym", []string{"medicine", "science"}, medicine, 3.0/6 + 0.1},
		{"case insensitive", []string{"MEDICINE"}, medicine, 2.0/6 + 0.1},
		{"student term inside course term", []string{"help"}, medicine, 1.0/6 + 0.1},
		{"course term inside student term", []string{"Science & Research"}, medicine, 2.0/6 + 0.1},
		{"nothing matches", []string{"knitting"}, medicine, 0.1},
		{"capped at one", []string{"law"}, []string{"law"}, 1},
		{"course without interests", []string{"law"}, nil, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterestMatch(tt.interests, tt.related)
			if !approx(got, tt.want) {
				t.Errorf("InterestMatch(%q) = %v, want %v", tt.interests, got, tt.want)
			}
		})
	}
}

func TestSynonymous_Symmetric(t *testing.T) {
	tests := []struct {
		student, course string
	}{
		{"medicine", "healthcare"},
		{"healthcare", "medicine"},
		{"programming", "information technology"},
		{"technology", "programming"},
		{"teaching", "education"},
		{"education", "teaching"},
		{"fitness", "sports"},
		{"sports", "fitness"},
	}
	for _, tt := range tests {
		if !synonymous(tt.student, tt.course) {
			t.Errorf("synonymous(%q, %q) = false, want true", tt.student, tt.course)
		}
	}
	if synonymous("medicine", "law") {
		t.Error("synonymous(medicine, law) = true, want false")
	}
}

func TestMatchingInterests(t *testing.T) {
	related := []string{"sports", "fitness", "health", "science"}
	got := MatchingInterests([]string{"Healthcare", "coding", "Sports & Fitness", "science", "fitness"}, related)
	want := []string{"Healthcare", "Sports & Fitness", "science", "fitness"}
	if !slices.Equal(got, want) {
		t.Errorf("MatchingInterests() = %q, want %q", got, want)
	}

	// Synonyms count for the score but are not quoted back.
	if got := MatchingInterests([]string{"medicine"}, []string{"healthcare"}); len(got) != 0 {
		t.Errorf("MatchingInterests(synonym only) = %q, want none", got)
	}
}

func TestPhysicalMatch(t *testing.T) {
	reqs := []string{
		"Good physical fitness required",
		"Interest in sports and exercise",
		"Ability to demonstrate physical activities",
	}

	tests := []struct {
		name    string
		talents string
		reqs    []string
		want    float64
	}{
		{"no talents", "", reqs, 0.5},
		{"no requirements", "fast runner", nil, 0.5},
		{"empty requirements", "fast runner", []string{}, 0.5},
		{"talent inside requirement", "Sports and Exercise", reqs, 1},
		{"requirement inside talent", "I have good physical fitness required for rugby", reqs, 1},
		{"no overlap", "chess", reqs, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhysicalMatch(tt.talents, tt.reqs); got != tt.want {
				t.Errorf("PhysicalMatch(%q) = %v, want %v", tt.talents, got, tt.want)
			}
		})
	}
}
