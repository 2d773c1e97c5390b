package uiutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 Bytes"},
		{-1, "0 Bytes"},
		{1, "1 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1 MB"},
		{1024*1024 + 1024*512, "1.5 MB"},
		{5 * 1024 * 1024 * 1024, "5 GB"},
		{1234567, "1.18 MB"},
		{1024*1024 - 1, "1 MB"},
		{1024*1024*1024 - 1, "1 GB"},
		{1024*1024 - 6, "1023.99 KB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in), "FormatBytes(%d)", tt.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0%", FormatPercent(3, 0))
	assert.Equal(t, "50%", FormatPercent(1, 2))
	assert.Equal(t, "33.3%", FormatPercent(1, 3))
	assert.Equal(t, "10%", FormatRatio(0.1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 20))
	assert.Equal(t, "abcdefghijklmnopqrst...", Truncate("abcdefghijklmnopqrstuvwxyz", 20))
	assert.Equal(t, "日本...", Truncate("日本語テキスト", 2))
	assert.Equal(t, "unchanged", Truncate("unchanged", 0))
}
