package styler

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ForceDisableWinsOverDetection(t *testing.T) {
	s := New(os.Stdout, true)
	assert.False(t, s.Enabled())
	assert.Equal(t, "text", s.Algorithm("text"), "disabled styler must not emit ANSI codes")
}

func TestNew_RegularFileIsNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "styler-test")
	require.NoError(t, err)
	defer f.Close()

	s := New(f, false)
	assert.False(t, s.Enabled(), "a plain file is never a TTY")
}

func TestRender_PlainTextWhenDisabled(t *testing.T) {
	s := New(os.Stdout, true)
	assert.Equal(t, "NS:", s.Label("NS:"))
	assert.Equal(t, "1.2.3.4", s.Value("1.2.3.4"))
}
