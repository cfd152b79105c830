package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnologyList_FromArray(t *testing.T) {
	var in struct {
		Technologies TechnologyList `json:"technologies"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"technologies":["Go","Redis"]}`), &in))
	assert.Equal(t, TechnologyList{"Go", "Redis"}, in.Technologies)
}

func TestTechnologyList_FromCommaString(t *testing.T) {
	var in struct {
		Technologies TechnologyList `json:"technologies"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"technologies":" Go , Redis,PostgreSQL "}`), &in))
	assert.Equal(t, TechnologyList{"Go", "Redis", "PostgreSQL"}, in.Technologies)
}

func TestTechnologyList_RejectsOtherShapes(t *testing.T) {
	var in struct {
		Technologies TechnologyList `json:"technologies"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"technologies":42}`), &in))
}

func TestUpdateProjectInput_AbsentKeysStayNil(t *testing.T) {
	var in UpdateProjectInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"X","featured":false}`), &in))

	require.NotNil(t, in.Title)
	assert.Equal(t, "X", *in.Title)
	require.NotNil(t, in.Featured)
	assert.False(t, *in.Featured)

	assert.Nil(t, in.Description)
	assert.Nil(t, in.Technologies)
	assert.Nil(t, in.Category)
}

func TestProject_CloneIsDeep(t *testing.T) {
	p := Project{ID: "1", Technologies: []string{"Go"}}
	cp := p.Clone()
	cp.Technologies[0] = "Rust"

	assert.Equal(t, "Go", p.Technologies[0])
}
