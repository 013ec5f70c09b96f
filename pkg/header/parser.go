package header

import (
	"regexp"
	"strconv"
	"strings"
)

var protocolPattern = regexp.MustCompile(`HTTP/(\d+(?:\.\d+)?)(?:\s+(\d+))?`)

// Parser reads a raw header block: a start line followed by "Name: value"
// lines separated by "\n". It never fails; malformed input yields empty
// results.
type Parser struct {
	raw string
}

func NewParser(raw string) Parser {
	return Parser{raw: raw}
}

// ProtocolVersion returns the version following "HTTP/" on the start line,
// such as "1.1" or "2", or "" when there is none.
func (p Parser) ProtocolVersion() string {
	match := p.matchProtocol()
	if match == nil {
		return ""
	}
	return match[1]
}

// StatusCode returns the status code of a response start line, or 0.
func (p Parser) StatusCode() int {
	match := p.matchProtocol()
	if match == nil || match[2] == "" {
		return 0
	}
	code, err := strconv.Atoi(match[2])
	if err != nil {
		return 0
	}
	return code
}

// KeyValues maps each header name to its value. Names and values are
// trimmed, a line without ':' maps to an empty value and later duplicates
// overwrite earlier ones.
func (p Parser) KeyValues() map[string]string {
	kv := make(map[string]string)
	p.eachField(func(name, value string) {
		kv[name] = value
	})
	return kv
}

// Headers returns the header lines in order, keeping duplicates as separate
// values.
func (p Parser) Headers() Headers {
	var h Headers
	p.eachField(func(name, value string) {
		h.Add(name, value)
	})
	return h
}

func (p Parser) startLine() string {
	line, _, _ := strings.Cut(p.raw, "\n")
	return line
}

func (p Parser) matchProtocol() []string {
	return protocolPattern.FindStringSubmatch(p.startLine())
}

func (p Parser) eachField(fn func(name, value string)) {
	_, block, found := strings.Cut(p.raw, "\n")
	if !found {
		return
	}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, value, _ := strings.Cut(line, ":")
		fn(strings.TrimSpace(name), strings.TrimSpace(value))
	}
}
