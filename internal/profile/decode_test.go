package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	doc := `{
		"subjects": {
			"lifeOrientation": {"mark": 70},
			"english": {"mark": 65, "level": "FAL"},
			"lifeSciencies": {"mark": 55},
			"mathematics": {"mark": 80}
		},
		"interests": ["Medicine", " medicine ", "Science"],
		"physicalTalents": "soccer"
	}`

	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"lifeOrientation", "english", "lifeSciences", "mathematics"}, s.Subjects.Codes())
	assert.Equal(t, []string{"Medicine", "Science"}, s.Interests)
	assert.Equal(t, "English", s.PreferredLanguage)
	assert.Equal(t, "soccer", s.PhysicalTalents)

	eng, ok := s.Subjects.Get("english")
	require.True(t, ok)
	assert.Equal(t, "FAL", string(eng.Level))
}

func TestDecode_DoesNotValidatePreconditions(t *testing.T) {
	s, err := Decode(strings.NewReader(`{"subjects": {"mathematics": {"mark": 40}}}`))
	require.NoError(t, err)
	assert.Error(t, s.Validate())
}

func TestDecode_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no subjects", `{"interests": []}`},
		{"mark not integer", `{"subjects": {"english": {"mark": "high"}}}`},
		{"bad level", `{"subjects": {"english": {"mark": 60, "level": "native"}}}`},
		{"bad language", `{"subjects": {}, "preferredLanguage": "French"}`},
		{"not json", `{"subjects":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestDecodeList(t *testing.T) {
	doc := `[
		{"subjects": {"english": {"mark": 60}}, "preferredLanguage": "Afrikaans"},
		{"subjects": {"mathematics": {"mark": 70}}}
	]`
	list, err := DecodeList(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Afrikaans", list[0].PreferredLanguage)
	assert.Equal(t, "English", list[1].PreferredLanguage)
}
