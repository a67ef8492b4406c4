package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVList(t *testing.T) {
	var l kvList
	require.NoError(t, l.Set("dig_chance=0.01"))
	require.NoError(t, l.Set(" carry_timer = 7 "))
	require.NoError(t, l.Set("seed=a=b"))
	assert.Error(t, l.Set("nothing"))

	assert.Equal(t, map[string]string{
		"dig_chance":  "0.01",
		"carry_timer": "7",
		"seed":        "a=b",
	}, l.Map())
	assert.Equal(t, "dig_chance=0.01, carry_timer = 7 ,seed=a=b", l.String())
}
