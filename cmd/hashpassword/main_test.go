package main

import (
	"bytes"
	"strings"
	"testing"

	"client-portal/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHash(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestHashPassword_FromArgument(t *testing.T) {
	hash, err := runHash(t, "", "--cost", "4", "s3cret")
	require.NoError(t, err)

	assert.True(t, auth.VerifyPassword("s3cret", hash))
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"))
}

func TestHashPassword_FromStdin(t *testing.T) {
	hash, err := runHash(t, "from-stdin\n", "--cost", "4")
	require.NoError(t, err)

	assert.True(t, auth.VerifyPassword("from-stdin", hash))
}

func TestHashPassword_EmptyInput(t *testing.T) {
	_, err := runHash(t, "", "--cost", "4")
	assert.Error(t, err)
}

func TestHashPassword_TooManyArgs(t *testing.T) {
	_, err := runHash(t, "", "a", "b")
	assert.Error(t, err)
}
