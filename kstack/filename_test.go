package kstack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFileNameAbbreviatesDataURL(t *testing.T) {
	payload := strings.Repeat("A", 20) + strings.Repeat("M", 100) + strings.Repeat("Z", 20)
	name := "data:text/plain," + payload
	require.Greater(t, len(name), 150)

	got := FormatFileName(name)
	require.Equal(t, "data:text/plain,"+strings.Repeat("A", 20)+"......"+strings.Repeat("Z", 20), got)
}

func TestFormatFileNameIsIdempotent(t *testing.T) {
	names := []string{
		"file:///home/user/main.js",
		"data:text/plain," + strings.Repeat("x", 300),
		"data:text/plain;charset=" + strings.Repeat("u", 110) + "," + strings.Repeat("0123456789", 20),
		"https://deno.land/" + strings.Repeat("a", 200),
	}
	for _, name := range names {
		once := FormatFileName(name)
		require.Equal(t, once, FormatFileName(once), name)
	}
}

func TestFormatFileNameLeavesOthersUnchanged(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"short data url", "data:text/plain,hello"},
		{"long http url", "https://example.com/" + strings.Repeat("a", 200)},
		{"data url without comma", "data:" + strings.Repeat("b", 200)},
		{"payload shorter than both ends", "data:text/" + strings.Repeat("h", 160) + ",short"},
		{"unparsable", "data:text/plain,\x01" + strings.Repeat("c", 200)},
		{"missing scheme", "://" + strings.Repeat("d", 200)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.in, FormatFileName(tc.in))
		})
	}
}

func TestFormatFileNameCountsCharacters(t *testing.T) {
	// 60 characters but 180 bytes
	name := "data:," + strings.Repeat("日", 54)
	require.Equal(t, name, FormatFileName(name))

	long := "data:," + strings.Repeat("日", 20) + strings.Repeat("語", 120) + strings.Repeat("本", 20)
	require.Equal(t, "data:,"+strings.Repeat("日", 20)+"......"+strings.Repeat("本", 20), FormatFileName(long))
}

func TestFormatFileNameThreshold(t *testing.T) {
	f := New(WithDataURLAbbrevThreshold(10))
	name := "data:text/plain," + strings.Repeat("a", 25) + strings.Repeat("b", 25)
	require.Equal(t, "data:text/plain,"+strings.Repeat("a", 20)+"......"+strings.Repeat("b", 20), f.FormatFileName(name))
}
