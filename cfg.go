package spyce

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ConfigNode is one block of KSP-style configuration text:
//
//	BODY
//	{
//		name = Kerbin
//		ORBIT
//		{
//			semi_major_axis = 13599840256
//		}
//	}
//
// A node holds scalar entries (key = value) and named sub-blocks, in file
// order. Keys repeat freely; the plural accessors return every match.
type ConfigNode struct {
	entries []configEntry
}

type configEntry struct {
	key   string
	value string
	node  *ConfigNode // non-nil for a block entry
}

// ParseConfig reads a whole block-format document. Comments run from "//"
// to the end of the line. A block opens with its name on one line and "{"
// on the next (or trailing the name) and closes with "}". Anything else —
// unbalanced braces, a bare word which never opens a block, an entry
// without "=" — is ErrMalformedConfig with a line number.
func ParseConfig(r io.Reader) (*ConfigNode, error) {
	root := &ConfigNode{}
	stack := []*ConfigNode{root}
	pendingKey := ""
	pendingLine := 0

	open := func(key string) {
		child := &ConfigNode{}
		top := stack[len(stack)-1]
		top.entries = append(top.entries, configEntry{key: key, node: child})
		stack = append(stack, child)
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case line == "{":
			if pendingKey == "" {
				return nil, fmt.Errorf("cfg line %d: block without a name: %w", lineNo, ErrMalformedConfig)
			}
			open(pendingKey)
			pendingKey = ""
		case line == "}":
			if pendingKey != "" {
				return nil, fmt.Errorf("cfg line %d: %q never opened a block: %w", pendingLine, pendingKey, ErrMalformedConfig)
			}
			if len(stack) == 1 {
				return nil, fmt.Errorf("cfg line %d: unbalanced closing brace: %w", lineNo, ErrMalformedConfig)
			}
			stack = stack[:len(stack)-1]
		case strings.Contains(line, "="):
			if pendingKey != "" {
				return nil, fmt.Errorf("cfg line %d: %q never opened a block: %w", pendingLine, pendingKey, ErrMalformedConfig)
			}
			kv := strings.SplitN(line, "=", 2)
			key := strings.TrimSpace(kv[0])
			if key == "" {
				return nil, fmt.Errorf("cfg line %d: entry without a key: %w", lineNo, ErrMalformedConfig)
			}
			top := stack[len(stack)-1]
			top.entries = append(top.entries, configEntry{key: key, value: strings.TrimSpace(kv[1])})
		default:
			if pendingKey != "" {
				return nil, fmt.Errorf("cfg line %d: %q never opened a block: %w", pendingLine, pendingKey, ErrMalformedConfig)
			}
			word := line
			if strings.HasSuffix(word, "{") {
				word = strings.TrimSpace(strings.TrimSuffix(word, "{"))
			} else {
				pendingKey, pendingLine = word, lineNo
			}
			if len(strings.Fields(word)) != 1 || strings.ContainsAny(word, "{}") {
				return nil, fmt.Errorf("cfg line %d: unexpected %q: %w", lineNo, line, ErrMalformedConfig)
			}
			if pendingKey == "" {
				open(word)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pendingKey != "" {
		return nil, fmt.Errorf("cfg line %d: %q never opened a block: %w", pendingLine, pendingKey, ErrMalformedConfig)
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("cfg: %d unclosed block(s): %w", len(stack)-1, ErrMalformedConfig)
	}
	return root, nil
}

// Keys returns every entry key in file order, duplicates included.
func (n *ConfigNode) Keys() []string {
	keys := make([]string, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.key
	}
	return keys
}

// Get returns the first scalar value for key.
func (n *ConfigNode) Get(key string) (string, bool) {
	for _, e := range n.entries {
		if e.key == key && e.node == nil {
			return e.value, true
		}
	}
	return "", false
}

// GetAll returns every scalar value for key, in file order.
func (n *ConfigNode) GetAll(key string) []string {
	var vals []string
	for _, e := range n.entries {
		if e.key == key && e.node == nil {
			vals = append(vals, e.value)
		}
	}
	return vals
}

// Float returns the first value for key parsed as a float64.
func (n *ConfigNode) Float(key string) (float64, error) {
	v, ok := n.Get(key)
	if !ok {
		return 0, fmt.Errorf("cfg: missing key %q: %w", key, ErrMalformedConfig)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("cfg: key %q: %v: %w", key, err, ErrMalformedConfig)
	}
	return f, nil
}

// Int returns the first value for key parsed as an int64.
func (n *ConfigNode) Int(key string) (int64, error) {
	v, ok := n.Get(key)
	if !ok {
		return 0, fmt.Errorf("cfg: missing key %q: %w", key, ErrMalformedConfig)
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cfg: key %q: %v: %w", key, err, ErrMalformedConfig)
	}
	return i, nil
}

// Node returns the first sub-block for key.
func (n *ConfigNode) Node(key string) (*ConfigNode, bool) {
	for _, e := range n.entries {
		if e.key == key && e.node != nil {
			return e.node, true
		}
	}
	return nil, false
}

// Nodes returns every sub-block for key, in file order.
func (n *ConfigNode) Nodes(key string) []*ConfigNode {
	var nodes []*ConfigNode
	for _, e := range n.entries {
		if e.key == key && e.node != nil {
			nodes = append(nodes, e.node)
		}
	}
	return nodes
}

// NodeNamed returns the sub-block for key whose own "name" entry equals
// name. This is how parts and bodies are looked up in game data files.
func (n *ConfigNode) NodeNamed(key, name string) (*ConfigNode, bool) {
	for _, node := range n.Nodes(key) {
		if v, ok := node.Get("name"); ok && v == name {
			return node, true
		}
	}
	return nil, false
}
