package mep

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedList is returned when list-encoded text cannot be decoded.
var ErrMalformedList = errors.New("malformed list text")

// ParseList decodes a bracketed list of quoted strings, as stored in the
// committee and delegation columns, e.g. "['Agriculture', 'Fisheries']".
// Empty or blank input decodes to an empty list.
func ParseList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	p := listParser{src: s}
	items, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v (in %q)", ErrMalformedList, err, s)
	}
	return items, nil
}

// FormatList joins decoded list items for display.
func FormatList(items []string) string {
	return strings.Join(items, ", ")
}

type listParser struct {
	src string
	pos int
}

func (p *listParser) parse() ([]string, error) {
	if !p.consume('[') {
		return nil, fmt.Errorf("expected '[' at offset %d", p.pos)
	}

	var items []string
	for {
		p.skipSpace()
		if p.consume(']') {
			break
		}
		item, err := p.quoted()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpace()
		if p.consume(',') {
			continue
		}
		if p.consume(']') {
			break
		}
		return nil, fmt.Errorf("expected ',' or ']' at offset %d", p.pos)
	}

	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("unexpected trailing text at offset %d", p.pos)
	}
	return items, nil
}

// quoted reads a single- or double-quoted string with backslash escapes.
func (p *listParser) quoted() (string, error) {
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("unexpected end of input")
	}
	quote := p.src[p.pos]
	if quote != '\'' && quote != '"' {
		return "", fmt.Errorf("expected quoted string at offset %d", p.pos)
	}
	p.pos++

	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return sb.String(), nil
		case c == '\\' && p.pos+1 < len(p.src):
			next := p.src[p.pos+1]
			switch next {
			case '\\', '\'', '"':
				sb.WriteByte(next)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(c)
				sb.WriteByte(next)
			}
			p.pos += 2
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated string")
}

func (p *listParser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *listParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}
