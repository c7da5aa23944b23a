package names

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPools(t *testing.T) {
	p := DefaultPools()
	require.NotNil(t, p)

	assert.Equal(t, []Language{Portuguese, Italian, Russian, English, Spanish}, p.Languages())
	assert.Len(t, p.Women, 5)
	assert.Len(t, p.Men, 5)
	assert.Equal(t, "Tatiana", p.Women[0].Names[0])
	assert.Equal(t, "João", p.Men[0].Names[1])
	assert.Contains(t, p.surnames[Spanish], "La Cruz")
	assert.Contains(t, p.surnames[Italian], "Bon Jovi")
	assert.NoError(t, p.Validate())
}

func TestLoadPools_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "women: [",
			wantErr: "invalid name pools",
		},
		{
			name:    "no women",
			yaml:    "men: [{lang: pt, names: [Pedro]}]\nsurnames: [{lang: pt, names: [Dias, Costa]}]",
			wantErr: "women: no languages",
		},
		{
			name: "unsupported language",
			yaml: `
women: [{lang: fr, names: [Amélie]}]
men: [{lang: pt, names: [Pedro]}]
surnames: [{lang: pt, names: [Dias, Costa]}]`,
			wantErr: `unsupported language "fr"`,
		},
		{
			name: "duplicate language",
			yaml: `
women: [{lang: pt, names: [Tatiana]}, {lang: pt, names: [Camila]}]
men: [{lang: pt, names: [Pedro]}]
surnames: [{lang: pt, names: [Dias, Costa]}]`,
			wantErr: `duplicate language "pt"`,
		},
		{
			name: "empty names",
			yaml: `
women: [{lang: pt, names: []}]
men: [{lang: pt, names: [Pedro]}]
surnames: [{lang: pt, names: [Dias, Costa]}]`,
			wantErr: "pt has no names",
		},
		{
			name: "first names without surnames",
			yaml: `
women: [{lang: it, names: [Caterina]}]
men: [{lang: pt, names: [Pedro]}]
surnames: [{lang: pt, names: [Dias, Costa]}]`,
			wantErr: "woman first names in it have no surnames",
		},
		{
			name: "single english middle name candidate",
			yaml: `
women: [{lang: pt, names: [Tatiana]}]
men: [{lang: en, names: [John, John]}]
surnames: [{lang: en, names: [Rock]}, {lang: pt, names: [Dias, Costa]}]`,
			wantErr: "man first names in en need at least 2 distinct values",
		},
		{
			name: "english surnames without english men",
			yaml: `
women: [{lang: pt, names: [Tatiana]}]
men: [{lang: pt, names: [Pedro]}]
surnames: [{lang: en, names: [Rock]}, {lang: pt, names: [Dias, Costa]}]`,
			wantErr: "en surnames require en men first names",
		},
		{
			name: "single non-english surname",
			yaml: `
women: [{lang: pt, names: [Tatiana]}]
men: [{lang: pt, names: [Pedro]}]
surnames: [{lang: pt, names: [Dias, Dias]}]`,
			wantErr: "non-English surnames need at least 2 distinct values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LoadPools([]byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, ErrInvalidPools))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadPools_Minimal(t *testing.T) {
	p, err := LoadPools([]byte(`
women: [{lang: ru, names: [Oksana]}]
men: [{lang: ru, names: [Fedor]}]
surnames: [{lang: ru, names: [Zaitsev, Lomonosov]}]`))
	require.NoError(t, err)

	s := NewWithPools(p, nil)
	for i := 0; i < 100; i++ {
		name := s.FullNameOf(Woman)
		assert.Contains(t, []string{"Oksana Zaitseva Lomonosova", "Oksana Lomonosova Zaitseva"}, name)
	}
}

func TestMustLoadPools_Panics(t *testing.T) {
	assert.Panics(t, func() {
		mustLoadPools([]byte("women: []"))
	})
}

func TestGender_String(t *testing.T) {
	assert.Equal(t, "woman", Woman.String())
	assert.Equal(t, "man", Man.String())
}

func TestLanguage_Valid(t *testing.T) {
	for _, l := range []Language{Portuguese, Italian, English, Russian, Spanish} {
		assert.True(t, l.Valid(), l)
	}
	assert.False(t, Language("fr").Valid())
	assert.False(t, Language("").Valid())
}
