package iniconfig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revsynth/revsynth/iniconfig"
)

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	input := "\n  \n# a comment\n   # indented comment\nthreshold=4\n"
	values, err := iniconfig.Parse(strings.NewReader(input))
	require.NoError(t, err)
	got, ok := values.First("threshold")
	require.True(t, ok)
	assert.Equal(t, "4", got)
}

func TestParseTrimsAndStripsQuotes(t *testing.T) {
	values, err := iniconfig.Parse(strings.NewReader(`  name  =  "hello world"  `))
	require.NoError(t, err)
	got, ok := values.First("name")
	require.True(t, ok)
	assert.Equal(t, "hello world", got)
}

func TestParseAccumulatesRepeatedKeys(t *testing.T) {
	values, err := iniconfig.Parse(strings.NewReader("tag=a\ntag=b\ntag=c\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, values["tag"])
}

func TestParseSkipsLinesWithoutEquals(t *testing.T) {
	values, err := iniconfig.Parse(strings.NewReader("not a valid line\nkey=value\n"))
	require.NoError(t, err)
	_, ok := values.First("key")
	assert.True(t, ok)
	assert.Len(t, values, 1)
}

func TestParseSkipsEmptyKey(t *testing.T) {
	values, err := iniconfig.Parse(strings.NewReader("=value\n"))
	require.NoError(t, err)
	assert.Empty(t, values)
}
