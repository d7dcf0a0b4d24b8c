// Package envfile reads and patches key=value .env files.
//
// Patching is upsert-by-key: the first occurrence of a key is rewritten in
// place, unknown keys are appended, and duplicate lines for an updated key
// are dropped so the file never grows conflicting values.
package envfile

import (
	"bufio"
	"fmt"
	"sort"
	"strings"
)

// Parse reads .env content into a key-value map.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	if content == "" {
		return env, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !ok {
			continue
		}
		env[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read env content: %w", err)
	}

	return env, nil
}

// Patch upserts the provided key/value pairs into .env content and returns
// the new content. Existing lines that do not hold an updated key are kept
// verbatim, comments and blank lines included.
func Patch(content string, updates map[string]string) string {
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	firstIndex := make(map[string]int)
	for i, line := range lines {
		key, _, ok, err := parseLine(line)
		if err != nil || !ok {
			continue
		}
		if _, seen := firstIndex[key]; !seen {
			firstIndex[key] = i
		}
	}

	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	updated := make(map[string]bool)
	for _, key := range keys {
		entry := fmt.Sprintf("%s=%s", key, encodeValue(updates[key]))
		if idx, ok := firstIndex[key]; ok {
			lines[idx] = entry
		} else {
			lines = append(lines, entry)
			firstIndex[key] = len(lines) - 1
		}
		updated[key] = true
	}

	filtered := lines[:0:0]
	for i, line := range lines {
		key, _, ok, err := parseLine(line)
		if err == nil && ok && updated[key] && firstIndex[key] != i {
			continue
		}
		filtered = append(filtered, line)
	}

	out := strings.Join(filtered, "\n")
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// parseLine parses a single .env line and reports whether it held a key.
func parseLine(line string) (string, string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	if rest, ok := strings.CutPrefix(trimmed, "export "); ok {
		trimmed = strings.TrimSpace(rest)
	}
	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return "", "", false, fmt.Errorf("expected KEY=value, got %q", trimmed)
	}
	key := strings.TrimSpace(trimmed[:idx])
	value := strings.TrimSpace(trimmed[idx+1:])
	if unquoted, err := unquoteValue(value); err != nil {
		return "", "", false, err
	} else {
		value = unquoted
	}
	return key, value, true, nil
}

// unquoteValue strips surrounding single or double quotes from a value.
func unquoteValue(value string) (string, error) {
	if len(value) < 2 {
		return value, nil
	}
	quote := value[0]
	if quote != '"' && quote != '\'' {
		return value, nil
	}
	if value[len(value)-1] != quote {
		return "", fmt.Errorf("unterminated quoted value %q", value)
	}
	return value[1 : len(value)-1], nil
}

// encodeValue quotes a value when it would otherwise be ambiguous.
func encodeValue(value string) string {
	if strings.ContainsAny(value, " \t#\"'") {
		return fmt.Sprintf("%q", value)
	}
	return value
}
