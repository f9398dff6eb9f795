package resource

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_AdmissionBound(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})

	require.True(t, c.TryAcquireWorker())
	require.True(t, c.TryAcquireWorker())
	assert.EqualValues(t, 2, c.ActiveWorkers())

	// Saturated: admission fails without blocking.
	assert.False(t, c.TryAcquireWorker())

	c.ReleaseWorker()
	assert.EqualValues(t, 1, c.ActiveWorkers())
	assert.True(t, c.TryAcquireWorker())
}

func TestController_DefaultsToGOMAXPROCS(t *testing.T) {
	c := NewController(Config{})
	assert.EqualValues(t, runtime.GOMAXPROCS(0), c.MaxWorkers())

	// At least one slot is always available on a fresh controller.
	assert.True(t, c.TryAcquireWorker())
}

func TestController_MaxWorkers(t *testing.T) {
	assert.EqualValues(t, 5, NewController(Config{MaxWorkers: 5}).MaxWorkers())
}
