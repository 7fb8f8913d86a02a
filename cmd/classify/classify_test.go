package classify_test

import (
	"testing"

	"dizimo/cents-csv/cmd/classify"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCommandMetadata(t *testing.T) {
	assert.Equal(t, "classify", classify.Cmd.Use)
	assert.Contains(t, classify.Cmd.Short, "Classify donation records")
	assert.Contains(t, classify.Cmd.Long, "summaries.csv")
	assert.NotNil(t, classify.Cmd.Run)
}
