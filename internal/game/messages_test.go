package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageLogBoundedRing(t *testing.T) {
	log := NewMessageLog(3)

	for i := 1; i <= 5; i++ {
		log.Push(fmt.Sprintf("msg %d", i))
	}

	assert.Equal(t, []string{"msg 3", "msg 4", "msg 5"}, log.Latest(3))
	assert.Equal(t, []string{"msg 5"}, log.Latest(1))
}

func TestMessageLogLatestClampsToLength(t *testing.T) {
	log := NewMessageLog(10)
	log.Push("only one")

	assert.Equal(t, []string{"only one"}, log.Latest(4))
	assert.Empty(t, NewMessageLog(5).Latest(3))
}
