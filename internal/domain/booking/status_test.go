package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusConfirmed.Blocks())
	assert.True(t, StatusCompleted.Blocks())
	assert.False(t, StatusCancelled.Blocks())

	// qualquer valor fora de "cancelled" ocupa o horário
	assert.True(t, Status("whatever").Blocks())
}
