//go:build linux

package rpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReportsHardware(t *testing.T) {
	p, err := New(nil)
	if err != nil {
		t.Skipf("gpio not accessible: %v", err)
	}
	defer p.Close()

	desc, hwErr := p.Hardware()
	if hwErr != nil {
		assert.Empty(t, desc)
		assert.Nil(t, p.Board())
		assert.Equal(t, "rpi(unknown hardware)", p.String())
		return
	}
	assert.NotEmpty(t, desc)
	assert.NotNil(t, p.Board())
}
