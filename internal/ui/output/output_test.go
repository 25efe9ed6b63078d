package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/wdabuild/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(new(bytes.Buffer)))
}

func TestColorProfile_NotATerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(new(bytes.Buffer)))
}

func TestNew_WritesPlainText(t *testing.T) {
	buf := new(bytes.Buffer)
	out := output.New(buf)

	_, err := out.WriteString(out.String("hello").Bold().String())
	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}
