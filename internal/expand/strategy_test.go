package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "fields", StrategyFields.String())
	assert.Equal(t, "builder", StrategyBuilder.String())
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("fields")
	assert.NoError(t, err)
	assert.Equal(t, StrategyFields, s)

	s, err = ParseStrategy("builder")
	assert.NoError(t, err)
	assert.Equal(t, StrategyBuilder, s)

	_, err = ParseStrategy("cow")
	assert.ErrorContains(t, err, `unknown strategy "cow"`)
}
