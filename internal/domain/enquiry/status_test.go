package enquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkRead(t *testing.T) {
	assert.True(t, MarkRead.Allows("unread"))
	assert.False(t, MarkRead.Allows("read"))
	assert.NoError(t, MarkRead.Settle("read"))
}
