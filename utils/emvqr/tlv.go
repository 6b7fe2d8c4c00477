package emvqr

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultContainerTags - templates decoded recursively: merchant account
// information (26, 27, 38) and additional data (62).
var DefaultContainerTags = []string{"26", "27", "38", "62"}

const (
	tagLen    = 2
	lengthLen = 2
	headerLen = tagLen + lengthLen
)

// Value is one decoded field. It holds either a scalar string or, for a
// container tag, a nested Tree.
type Value struct {
	scalar    string
	children  Tree
	container bool
}

// Scalar -
func Scalar(s string) Value {
	return Value{scalar: s}
}

// Container -
func Container(t Tree) Value {
	if t == nil {
		t = Tree{}
	}
	return Value{children: t, container: true}
}

// IsContainer reports whether the field was decoded as a nested template.
func (v Value) IsContainer() bool {
	return v.container
}

// Str returns the scalar value; ok is false for containers.
func (v Value) Str() (s string, ok bool) {
	if v.container {
		return "", false
	}
	return v.scalar, true
}

// Tree returns the nested fields; ok is false for scalars.
func (v Value) Tree() (t Tree, ok bool) {
	if !v.container {
		return nil, false
	}
	return v.children, true
}

func (v Value) String() string {
	if v.container {
		return v.children.String()
	}
	return v.scalar
}

// Tree maps a 2-character tag to its decoded value. When a tag repeats
// at the same level the last occurrence wins.
type Tree map[string]Value

// Scalar returns the scalar value stored under tag, or "" when the tag is
// absent or is a container.
func (t Tree) Scalar(tag string) string {
	v, ok := t[tag]
	if !ok {
		return ""
	}
	s, _ := v.Str()
	return s
}

// Sub returns the nested tree stored under tag.
func (t Tree) Sub(tag string) (Tree, bool) {
	v, ok := t[tag]
	if !ok {
		return nil, false
	}
	return v.Tree()
}

// Tags returns the tags of t in ascending order.
func (t Tree) Tags() []string {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (t Tree) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, tag := range t.Tags() {
		if i > 0 {
			b.WriteString(" ")
		}
		v := t[tag]
		if v.container {
			fmt.Fprintf(&b, "%s:%s", tag, v.children.String())
		} else {
			fmt.Fprintf(&b, "%s:%q", tag, v.scalar)
		}
	}
	b.WriteString("}")
	return b.String()
}

// Parser decodes EMVCo "tag(2) length(2) value(length)" payloads into a
// Tree. A Parser is immutable and safe for concurrent use.
type Parser struct {
	containers map[string]struct{}
}

// NewParser creates a parser that recurses into the given container tags.
// With no tags it uses DefaultContainerTags.
func NewParser(containerTags ...string) *Parser {
	if len(containerTags) == 0 {
		containerTags = DefaultContainerTags
	}
	containers := make(map[string]struct{}, len(containerTags))
	for _, tag := range containerTags {
		containers[tag] = struct{}{}
	}
	return &Parser{containers: containers}
}

var defaultParser = NewParser()

// ParseTLV decodes payload with the default container tags.
func ParseTLV(payload string) Tree {
	return defaultParser.Parse(payload)
}

// IsContainer reports whether tag is decoded recursively by p.
func (p *Parser) IsContainer(tag string) bool {
	_, ok := p.containers[tag]
	return ok
}

// Parse never fails. It stops at the first length field that is not a
// non-negative decimal and returns the fields decoded so far. A value whose
// declared length runs past the end of the payload is cut short.
//
// Lengths count characters, not bytes, so multi-byte merchant names keep
// their declared width.
func (p *Parser) Parse(payload string) Tree {
	return p.parse([]rune(payload))
}

func (p *Parser) parse(data []rune) Tree {
	result := Tree{}
	offset := 0
	for offset+headerLen <= len(data) {
		tag := string(data[offset : offset+tagLen])
		length, ok := parseLength(data[offset+tagLen : offset+headerLen])
		if !ok {
			break
		}

		start := offset + headerLen
		end := start + length
		if end > len(data) {
			end = len(data)
		}
		value := data[start:end]
		offset = start + length

		if p.IsContainer(tag) {
			result[tag] = Container(p.parse(value))
		} else {
			result[tag] = Scalar(string(value))
		}
	}
	return result
}

// parseLength reads the leading decimal digits of s, so "1A" reads as 1.
// A field with no leading digit or a negative value is rejected.
func parseLength(s []rune) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n, digits := 0, 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		digits++
	}
	// "-0" is a zero length, any other negative length is rejected
	if digits == 0 || (neg && n != 0) {
		return 0, false
	}
	return n, true
}

// Encode serializes t back to payload form, tags in ascending order.
// Values longer than 99 characters cannot be represented and are skipped.
func Encode(t Tree) string {
	var b strings.Builder
	for _, tag := range t.Tags() {
		v := t[tag]
		var value string
		if v.container {
			value = Encode(v.children)
		} else {
			value = v.scalar
		}
		n := len([]rune(value))
		if n > 99 {
			continue
		}
		fmt.Fprintf(&b, "%s%02d%s", tag, n, value)
	}
	return b.String()
}
