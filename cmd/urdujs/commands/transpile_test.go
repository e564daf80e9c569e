package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urdujs/urdujs/cmd/urdujs/opts"
	"github.com/urdujs/urdujs/pkg/log"
	"github.com/urdujs/urdujs/pkg/transpile"
	"github.com/urdujs/urdujs/pkg/vocab"
)

func testOpts() *opts.RootOpts {
	var console bytes.Buffer
	transpiler := transpile.New(vocab.Default())
	return &opts.RootOpts{
		Table:      transpiler.Table(),
		Transpiler: transpiler,
		Logger:     log.New(&console, zerolog.Disabled),
	}
}

func TestTranspileCmd_Stdin(t *testing.T) {
	cmd := NewTranspileCmd(testOpts())

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("likho('hi'); bolo n = 5;"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "console.log('hi'); let n = 5;", out.String())
}

func TestVocabCmd(t *testing.T) {
	cmd := NewVocabCmd(testOpts())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "likho")
	assert.Contains(t, out.String(), "console.log")
}
