package domain

import (
	"bufio"
	"strings"
)

// VersionKey is the INFO server property carrying the running version.
const VersionKey = "redis_version"

// ServerInfo is the flat property listing returned by INFO server.
type ServerInfo map[string]string

// ParseInfo reads an INFO reply as key:value lines. Section headers ("#"),
// blank lines and lines without a colon are ignored; keys and values are
// trimmed and a key repeated further down the reply wins.
func ParseInfo(text string) ServerInfo {
	info := ServerInfo{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k == "" {
			continue
		}
		info[k] = strings.TrimSpace(v)
	}
	return info
}

// Version returns the reported server version, if any.
func (i ServerInfo) Version() (string, bool) {
	v, ok := i[VersionKey]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
