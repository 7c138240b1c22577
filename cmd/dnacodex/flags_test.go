package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnacodex/dnacodex"
)

func TestSharedFlags_PayloadType_Accepts(t *testing.T) {
	for _, typ := range []string{"jpg", "jpeg", "png", "txt", "gz", "txt.gz"} {
		f := &sharedFlags{typeStr: typ}
		got, err := f.payloadType()
		require.NoError(t, err)
		assert.Equal(t, dnacodex.PayloadType(typ), got)
	}
}

func TestSharedFlags_PayloadType_RejectsUnknown(t *testing.T) {
	f := &sharedFlags{typeStr: "exe"}
	_, err := f.payloadType()
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*dnacodex.Error))
}

func TestSharedFlags_RequireFileName(t *testing.T) {
	f := &sharedFlags{}
	assert.Error(t, f.requireFileName())

	f.fileName = "input.txt"
	assert.NoError(t, f.requireFileName())
}
