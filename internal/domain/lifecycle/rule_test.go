package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/bizmarket/internal/httperr"
)

var approve = Rule{Name: "approve", Column: "status", From: []string{"pending", "rejected"}, To: "active"}

func TestRule_Allows(t *testing.T) {
	assert.True(t, approve.Allows("pending"))
	assert.True(t, approve.Allows("rejected"))
	assert.False(t, approve.Allows("active"))
	assert.False(t, approve.Allows(""))
}

func TestRule_Settle(t *testing.T) {
	assert.NoError(t, approve.Settle("active"))

	err := approve.Settle("sold")
	assert.True(t, httperr.Is(err, "invalid_state"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
}
