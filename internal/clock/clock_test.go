package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealNowIsUTC(t *testing.T) {
	now := Real{}.Now()
	assert.Equal(t, time.UTC, now.Location())
}

func TestFixedNow(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	c := Fixed{T: at}
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now(), "fixed clock must not advance")
}
