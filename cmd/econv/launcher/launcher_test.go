package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchRoll(t *testing.T) {
	err := Launch([]string{"econv", "--seed", "1", "roll", "--sides", "6", "--count", "3"})
	require.NoError(t, err)
}

func TestLaunchShuffle(t *testing.T) {
	err := Launch([]string{"econv", "--seed", "2", "--width", "32", "shuffle", "--deck", "10"})
	require.NoError(t, err)
}

func TestLaunchRebase(t *testing.T) {
	err := Launch([]string{"econv", "--seed", "3", "rebase", "--from", "10", "--to", "16", "--count", "8"})
	require.NoError(t, err)
}

func TestLaunchMeasure(t *testing.T) {
	err := Launch([]string{"econv", "--seed", "4", "--samples", "50", "measure", "--target", "6", "--deck", "8"})
	require.NoError(t, err)
}

func TestLaunchRejectsBadWidth(t *testing.T) {
	err := Launch([]string{"econv", "--width", "48", "roll"})
	assert.Error(t, err)
}

func TestLaunchRejectsBadLogFormat(t *testing.T) {
	err := Launch([]string{"econv", "--log.format", "xml", "roll"})
	assert.Error(t, err)
}
