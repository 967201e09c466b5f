package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/slist/script"
)

func TestRun_Flags(t *testing.T) {
	var output bytes.Buffer
	require.NoError(t, run([]string{"--list.values=3,2,1", "--script=remove 0;insertTail 7;print"}, &output, io.Discard))

	require.Equal(t, "remove 0 -> true => (2 1)\ninsertTail 7 => (2 1 7)\nprint => (2 1 7)\n(2 1 7)\n", output.String())
}

func TestRun_Environment(t *testing.T) {
	t.Setenv("SLIST_LIST_VALUES", "1,2,3")
	t.Setenv("SLIST_LIST_CAPACITY", "4")

	var output bytes.Buffer
	require.NoError(t, run([]string{"--script=len"}, &output, io.Discard))

	require.Equal(t, "len -> 3 => (1 2 3)\n(1 2 3)\n", output.String())
}

func TestRun_ConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("list:\n  values: [\"1\", \"2\"]\n  capacity: 8\nscript:\n  - popFront\n  - insertHead 5\n"), 0o600))

	var output bytes.Buffer
	require.NoError(t, run([]string{"--config", configFile, "--log.level=debug"}, &output, io.Discard))

	require.Equal(t, "popFront -> 1 => (2)\ninsertHead 5 => (5 2)\n(5 2)\n", output.String())
}

func TestRun_Errors(t *testing.T) {
	err := run([]string{"--log.level=loud"}, io.Discard, io.Discard)
	require.Error(t, err)

	err = run([]string{"--list.values=1,x"}, io.Discard, io.Discard)
	require.True(t, ierrors.Is(err, script.ErrInvalidCommand))

	var output bytes.Buffer
	err = run([]string{"--script=insertTail 1;jump"}, &output, io.Discard)
	require.True(t, ierrors.Is(err, script.ErrInvalidCommand))
	require.Equal(t, "insertTail 1 => (1)\n", output.String(), "results before the failing command must be printed")
}
