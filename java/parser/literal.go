package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/jpp/java/tree"
)

// numericLiteral converts an integer or floating point token, negated when
// it follows a unary minus.
func numericLiteral(tok Token, negate bool) (*tree.Literal, error) {
	text := strings.ReplaceAll(tok.Literal, "_", "")
	if tok.Kind == TokenFloatLiteral {
		return floatLiteral(text, negate)
	}

	long := strings.HasSuffix(text, "l") || strings.HasSuffix(text, "L")
	if long {
		text = text[:len(text)-1]
	}
	base := 10
	switch {
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		base, text = 16, text[2:]
	case strings.HasPrefix(text, "0b"), strings.HasPrefix(text, "0B"):
		base, text = 2, text[2:]
	case len(text) > 1 && text[0] == '0':
		base, text = 8, text[1:]
	}
	bits := 32
	if long {
		bits = 64
	}
	v, err := strconv.ParseUint(text, base, bits)
	if err != nil {
		return nil, fmt.Errorf("integer literal %s out of range", tok.Literal)
	}

	// Decimal literals are signed; the largest magnitude is only valid
	// as the operand of a minus sign. Other bases use two's complement.
	if base == 10 {
		limit := uint64(math.MaxInt32)
		if long {
			limit = math.MaxInt64
		}
		if negate {
			limit++
		}
		if v > limit {
			return nil, fmt.Errorf("integer literal %s out of range", tok.Literal)
		}
	}
	if long {
		n := int64(v)
		if negate {
			n = -n
		}
		return tree.NewLongLiteral(n), nil
	}
	n := int32(uint32(v))
	if negate {
		n = -n
	}
	return tree.NewIntLiteral(n), nil
}

func floatLiteral(text string, negate bool) (*tree.Literal, error) {
	bits := 64
	switch text[len(text)-1] {
	case 'f', 'F':
		bits = 32
		text = text[:len(text)-1]
	case 'd', 'D':
		text = text[:len(text)-1]
	}
	v, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return nil, fmt.Errorf("floating point literal %s out of range", text)
	}
	if negate {
		v = -v
	}
	if bits == 32 {
		return tree.NewFloatLiteral(float32(v))
	}
	return tree.NewDoubleLiteral(v)
}

func charLiteral(tok Token) (*tree.Literal, error) {
	s, err := unescape(tok.Literal[1 : len(tok.Literal)-1])
	if err != nil {
		return nil, err
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r > 0xFFFF {
		return nil, fmt.Errorf("character literal %s must hold exactly one UTF-16 unit", tok.Literal)
	}
	return tree.NewCharLiteral(r)
}

func stringLiteral(tok Token) (*tree.Literal, error) {
	var (
		s   string
		err error
	)
	if tok.Kind == TokenTextBlock {
		s, err = textBlock(tok.Literal)
	} else {
		s, err = unescape(tok.Literal[1 : len(tok.Literal)-1])
	}
	if err != nil {
		return nil, err
	}
	return tree.NewStringLiteral(s), nil
}

// textBlock returns the content of a """ literal with incidental
// indentation and trailing spaces removed and escapes processed.
func textBlock(lit string) (string, error) {
	body := lit[3 : len(lit)-3]
	nl := strings.IndexByte(body, '\n')
	if nl < 0 || strings.TrimSpace(body[:nl]) != "" {
		return "", fmt.Errorf("text block must start with a line break")
	}
	lines := strings.Split(strings.ReplaceAll(body[nl+1:], "\r\n", "\n"), "\n")

	indent := math.MaxInt
	for i, line := range lines {
		last := i == len(lines)-1
		if strings.TrimSpace(line) == "" && !last {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		indent = min(indent, n)
	}
	for i, line := range lines {
		if len(line) >= indent {
			line = line[indent:]
		} else {
			line = ""
		}
		lines[i] = strings.TrimRight(line, " \t")
	}
	return unescape(strings.Join(lines, "\n"))
}

// unescape processes Java escape sequences, including unicode escapes
// and line continuations.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	var units []uint16
	flush := func() {
		if len(units) > 0 {
			b.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			flush()
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("unterminated escape sequence")
		}
		switch c = s[i]; c {
		case 'u':
			for i < len(s) && s[i] == 'u' {
				i++
			}
			if i+4 > len(s) {
				return "", fmt.Errorf("malformed unicode escape")
			}
			v, err := strconv.ParseUint(s[i:i+4], 16, 16)
			if err != nil {
				return "", fmt.Errorf("malformed unicode escape \\u%s", s[i:i+4])
			}
			units = append(units, uint16(v))
			i += 3
			continue
		case 'b':
			flush()
			b.WriteByte('\b')
		case 't':
			flush()
			b.WriteByte('\t')
		case 'n':
			flush()
			b.WriteByte('\n')
		case 'f':
			flush()
			b.WriteByte('\f')
		case 'r':
			flush()
			b.WriteByte('\r')
		case 's':
			flush()
			b.WriteByte(' ')
		case '"', '\'', '\\':
			flush()
			b.WriteByte(c)
		case '\n':
			flush()
		default:
			if c < '0' || c > '7' {
				return "", fmt.Errorf("invalid escape sequence \\%c", c)
			}
			flush()
			j := i
			limit := 3
			if c > '3' {
				limit = 2
			}
			for j < len(s) && j-i < limit && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(s[i:j], 8, 8)
			b.WriteRune(rune(v))
			i = j - 1
		}
	}
	flush()
	return b.String(), nil
}
