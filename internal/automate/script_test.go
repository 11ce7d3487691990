package automate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screenpilot/screenpilot-cli/internal/classify"
)

func TestLoadScript(t *testing.T) {
	const doc = `
steps:
  - kind: click
    target: 12
  - kind: type-text
    target: 5
    text: walnut
  - kind: wait
    durationMs: 500
  - kind: drag
    target: 9
    dropX: 100
    dropY: 200
`
	script, err := LoadScript(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, script.Steps, 4)

	assert.Equal(t, classify.Click, script.Steps[0].Kind)
	require.NotNil(t, script.Steps[0].TargetID)
	assert.Equal(t, 12, *script.Steps[0].TargetID)

	assert.Equal(t, "walnut", script.Steps[1].Text)

	assert.Nil(t, script.Steps[2].TargetID)
	assert.Equal(t, 500*time.Millisecond, script.Steps[2].Duration)

	require.NotNil(t, script.Steps[3].DropTo)
	assert.Equal(t, 200.0, script.Steps[3].DropTo.Y)
}

func TestLoadScriptRejectsStepWithoutKind(t *testing.T) {
	_, err := LoadScript(strings.NewReader("steps:\n  - target: 3\n"))
	assert.Error(t, err)
}
