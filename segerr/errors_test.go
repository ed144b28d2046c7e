package segerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/segimage/segerr"
)

// TestWrap_PreservesKind verifies that package sentinels built with Wrap
// match their kind and nothing else.
func TestWrap_PreservesKind(t *testing.T) {
	sentinel := segerr.Wrap(segerr.ErrData, "rag: empty superpixel")

	assert.ErrorIs(t, sentinel, segerr.ErrData)
	assert.False(t, errors.Is(sentinel, segerr.ErrInput), "data sentinel must not match input kind")
	assert.True(t, segerr.IsData(sentinel))
	assert.False(t, segerr.IsInput(sentinel))
}

// TestErrorf_ChainsSentinel checks that contextual errors keep both the
// specific sentinel and its kind reachable.
func TestErrorf_ChainsSentinel(t *testing.T) {
	sentinel := segerr.Wrap(segerr.ErrInput, "labelmap: non-positive label")
	err := segerr.Errorf("New", sentinel, "label %d at (%d,%d)", 0, 3, 4)

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, segerr.ErrInput)
	assert.Equal(t, "New: label 0 at (3,4): labelmap: non-positive label: segimage: invalid input", err.Error())
}
