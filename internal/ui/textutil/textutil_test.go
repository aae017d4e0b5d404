package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisualWidth(t *testing.T) {
	assert.Equal(t, 5, VisualWidth("hello"))
	assert.Equal(t, 4, VisualWidth("日本"))
	assert.Equal(t, 0, VisualWidth(""))
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 0, MaxWidth(nil))
	assert.Equal(t, 6, MaxWidth([]string{"ab", "日本語", "c"}))
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "a   b", ExpandTabs("a\tb"))
	assert.Equal(t, "    x", ExpandTabs("\tx"))
	assert.Equal(t, "abcd    e", ExpandTabs("abcd\te"))
	assert.Equal(t, "plain", ExpandTabs("plain"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "…", Truncate("hello", 1))
	assert.Equal(t, "", Truncate("hello", 0))
}

func TestSlice(t *testing.T) {
	assert.Equal(t, "cde", Slice("abcdefg", 2, 3))
	assert.Equal(t, "fg  ", Slice("abcdefg", 5, 4), "pads past the end")
	assert.Equal(t, "   ", Slice("ab", 5, 3))
	assert.Equal(t, "", Slice("abc", 0, 0))
	// 日 occupies cells 0-1, 本 cells 2-3.
	assert.Equal(t, " 本", Slice("日本", 1, 3))
	assert.Equal(t, "日 ", Slice("日本", 0, 3))
}

func TestPadRightVisual(t *testing.T) {
	assert.Equal(t, "ab  ", PadRightVisual("ab", 4))
	assert.Equal(t, "abc…", PadRightVisual("abcdef", 4))
}
