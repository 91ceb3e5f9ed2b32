package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := promptPassword(&out, 0)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Equal(t, "Password: \n", out.String())
}

func TestPromptPassword_Error(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }

	_, err := promptPassword(&bytes.Buffer{}, 0)
	assert.Error(t, err)
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(testContext(t), nil, []string{"dance"}, &bytes.Buffer{})
	assert.EqualError(t, err, `unknown command "dance"`)
}

func TestRun_RevokeUserNeedsID(t *testing.T) {
	err := run(testContext(t), nil, []string{"revoke-user"}, &bytes.Buffer{})
	assert.Error(t, err)
}

// testContext mirrors testing.T.Context (Go 1.24+): it is canceled when the test finishes.
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
