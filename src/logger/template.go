// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxAlignment bounds the padding a placeholder may request.
const maxAlignment = 1 << 10

// FormatTemplate substitutes args into the positional placeholders of msg.
//
// Placeholders have the form {index}, {index,alignment}, {index:format} or
// {index,alignment:format}. A positive alignment right-aligns the argument in
// a field of that width, a negative one left-aligns it. The format part is
// accepted and ignored. {{ and }} produce literal braces.
//
// FormatTemplate is best-effort: with no args, or when msg holds a malformed
// placeholder or an index without a matching argument, msg is returned
// verbatim. Extra arguments are ignored.
func FormatTemplate(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}
	out, ok := substitute(msg, args)
	if !ok {
		return msg
	}
	return out
}

func substitute(msg string, args []any) (string, bool) {
	var b strings.Builder
	b.Grow(len(msg) + 8*len(args))

	for i := 0; i < len(msg); i++ {
		c := msg[i]
		switch c {
		case '{':
			if i+1 < len(msg) && msg[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(msg[i+1:], '}')
			if end < 0 {
				return "", false
			}
			s, ok := placeholder(msg[i+1:i+1+end], args)
			if !ok {
				return "", false
			}
			b.WriteString(s)
			i += end + 1
		case '}':
			if i+1 < len(msg) && msg[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", false
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), true
}

// placeholder renders the body of one {...} item.
func placeholder(body string, args []any) (string, bool) {
	if strings.IndexByte(body, '{') >= 0 {
		return "", false
	}
	head, _, _ := strings.Cut(body, ":")
	idx, align, hasAlign := strings.Cut(head, ",")

	n, ok := parseIndex(idx)
	if !ok || n >= len(args) {
		return "", false
	}
	s := renderArg(args[n])

	if !hasAlign {
		return s, true
	}
	width, err := strconv.Atoi(strings.TrimSpace(align))
	if err != nil || width > maxAlignment || width < -maxAlignment {
		return "", false
	}
	return pad(s, width), true
}

func parseIndex(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// renderArg renders a nil argument as the empty string.
// fmt recovers panics raised by String and Error methods.
func renderArg(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return a
	default:
		return fmt.Sprint(a)
	}
}

func pad(s string, width int) string {
	left := width < 0
	if left {
		width = -width
	}
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(" ", n)
	}
	return strings.Repeat(" ", n) + s
}
