package numfmt_test

import (
	"testing"

	"github.com/bjaus/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"mixed":          {input: "a1b2c3", want: "123"},
		"none":           {input: "abc", want: ""},
		"empty":          {input: "", want: ""},
		"arabic-indic":   {input: "٣-4", want: "٣4"},
		"formatted text": {input: "(555) 123-4567", want: "5551234567"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numfmt.Filter(tt.input, numfmt.Digits))
		})
	}
}

func TestFilterNilSet(t *testing.T) {
	t.Parallel()
	assert.Empty(t, numfmt.Filter("123", nil))
	assert.Zero(t, numfmt.CountMatching("123", nil))
	assert.Equal(t, numfmt.NotFound, numfmt.MinPrefixLength("123", nil, 1))
	assert.Equal(t, numfmt.NotFound, numfmt.MinSuffixLength("123", nil, 1))
}

func TestCountMatching(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 6, numfmt.CountMatching("(555) 123", numfmt.Digits))
	assert.Equal(t, 0, numfmt.CountMatching("", numfmt.Digits))
	assert.Equal(t, 3, numfmt.CountMatching("a1b2c3", numfmt.Letters))
}

func TestMinPrefixLength(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		count int
		want  int
	}{
		"zero":          {input: "(555) 123", count: 0, want: 0},
		"first digit":   {input: "(555) 123", count: 1, want: 2},
		"across break":  {input: "(555) 123", count: 4, want: 7},
		"all":           {input: "(555) 123", count: 6, want: 9},
		"too many":      {input: "(555) 123", count: 7, want: numfmt.NotFound},
		"negative":      {input: "(555) 123", count: -1, want: numfmt.NotFound},
		"multibyte":     {input: "№ 12", count: 1, want: 3},
		"empty":         {input: "", count: 1, want: numfmt.NotFound},
		"empty no need": {input: "", count: 0, want: 0},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numfmt.MinPrefixLength(tt.input, numfmt.Digits, tt.count))
		})
	}
}

func TestMinSuffixLength(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		count int
		want  int
	}{
		"zero":         {input: "(555) 123", count: 0, want: 0},
		"last digit":   {input: "(555) 123", count: 1, want: 1},
		"across break": {input: "(555) 123", count: 4, want: 6},
		"all":          {input: "(555) 123", count: 6, want: 8},
		"too many":     {input: "(555) 123", count: 7, want: numfmt.NotFound},
		"multibyte":    {input: "12 №", count: 1, want: 3},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numfmt.MinSuffixLength(tt.input, numfmt.Digits, tt.count))
		})
	}
}

func TestIndexOfCharacter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, numfmt.IndexOfCharacter("(555)", ')'))
	assert.Equal(t, 0, numfmt.IndexOfCharacter("(555)", '('))
	assert.Equal(t, 1, numfmt.IndexOfCharacter("é-", '-'))
	assert.Equal(t, numfmt.NotFound, numfmt.IndexOfCharacter("(555)", 'X'))
	assert.Equal(t, numfmt.NotFound, numfmt.IndexOfCharacter("", 'X'))
}

func TestParseCharSet(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		name    string
		in      rune
		out     rune
		wantErr require.ErrorAssertionFunc
	}{
		"digits":       {name: "digits", in: '٣', out: 'a', wantErr: require.NoError},
		"ascii digits": {name: "ascii-digits", in: '3', out: '٣', wantErr: require.NoError},
		"letters":      {name: "letters", in: 'ж', out: '1', wantErr: require.NoError},
		"alphanumeric": {name: "alphanumeric", in: 'q', out: '-', wantErr: require.NoError},
		"hex":          {name: "HEX", in: 'F', out: 'g', wantErr: require.NoError},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			set, err := numfmt.ParseCharSet(tt.name)
			tt.wantErr(t, err)
			assert.True(t, set.Contains(tt.in))
			assert.False(t, set.Contains(tt.out))
		})
	}
}

func TestParseCharSetUnknown(t *testing.T) {
	t.Parallel()
	set, err := numfmt.ParseCharSet("emoji")
	require.ErrorIs(t, err, numfmt.ErrUnknownCharSet)
	assert.Contains(t, err.Error(), `"emoji"`)
	assert.Nil(t, set)
}

func TestCharsOf(t *testing.T) {
	t.Parallel()
	set := numfmt.CharsOf("ABC")
	assert.True(t, set.Contains('B'))
	assert.False(t, set.Contains('b'))
	assert.Equal(t, "CAB", numfmt.Filter("xCyAzB", set))
}
