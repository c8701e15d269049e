package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	src := []string{"v1", "v2"}

	added := Toggle(src, "v3")
	assert.Equal(t, []string{"v1", "v2", "v3"}, added)

	removed := Toggle(added, "v1")
	assert.Equal(t, []string{"v2", "v3"}, removed)

	// 原 slice 不變
	assert.Equal(t, []string{"v1", "v2"}, src)
	assert.True(t, Contains(removed, "v3"))
	assert.False(t, Contains(removed, "v1"))
}

func TestToggle_Nil(t *testing.T) {
	assert.Equal(t, []string{"a"}, Toggle(nil, "a"))
	assert.Equal(t, []string{}, Toggle([]string{"a"}, "a"))
}
