package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Run("should keep the order of the matching elements", func(t *testing.T) {
		assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 }))
	})
	t.Run("should return an empty, non nil slice", func(t *testing.T) {
		r := Filter([]int{1}, func(i int) bool { return false })
		assert.NotNil(t, r)
		assert.Empty(t, r)
	})
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"BUG", "TASK"}, Map([]string{"bug", "task"}, strings.ToUpper))
}

func TestFind(t *testing.T) {
	t.Run("should return the first match", func(t *testing.T) {
		v, ok := Find([]string{"Bug", "Task", "Task"}, func(s string) bool { return s == "Task" })
		assert.True(t, ok)
		assert.Equal(t, "Task", v)
	})
	t.Run("should return the zero value if nothing matches", func(t *testing.T) {
		v, ok := Find([]string{"Bug"}, func(s string) bool { return s == "Task" })
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})
}
