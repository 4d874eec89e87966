package kstack

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// dataURLKeep is how many payload characters survive on each side of an
// abbreviated data: URL.
const dataURLKeep = 20

// FormatFileName shortens an oversized data: URL to its media header plus
// the head and tail of the payload. Any other name is returned as is.
func (f *Formatter) FormatFileName(name string) string {
	if utf8.RuneCountInString(name) <= f.dataURLAbbrevThreshold {
		return name
	}
	u, err := url.Parse(name)
	if err != nil || u.Scheme != "data" {
		return name
	}
	path := u.Opaque
	if path == "" {
		path = u.Path
	}
	header, payload, ok := strings.Cut(path, ",")
	if !ok {
		return name
	}
	data := []rune(payload)
	if len(data) < 2*dataURLKeep {
		return name
	}
	return u.Scheme + ":" + header + "," +
		string(data[:dataURLKeep]) + "......" + string(data[len(data)-dataURLKeep:])
}
