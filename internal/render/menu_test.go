package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMenuSceneSettlesTitle(t *testing.T) {
	s := NewMenuScene()
	assert.Less(t, s.TitleRow(), 0)
	for i := 0; i < 300; i++ {
		s.Tick(16 * time.Millisecond)
	}
	assert.Equal(t, int(titleRestY), s.TitleRow())
	assert.Equal(t, 300*16*time.Millisecond, s.Elapsed())

	s.Tick(-time.Second)
	assert.Equal(t, 300*16*time.Millisecond, s.Elapsed())

	s.Reset()
	assert.Zero(t, s.Elapsed())
	assert.Less(t, s.TitleRow(), 0)
}

func TestMenuScenesAreIndependent(t *testing.T) {
	a := NewMenuScene()
	b := NewMenuScene()
	a.Tick(time.Second)
	assert.Equal(t, time.Second, a.Elapsed())
	assert.Zero(t, b.Elapsed())
}
