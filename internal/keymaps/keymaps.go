// Package keymaps loads the custom keymap drill list.
package keymaps

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// Defaults is used when no custom keymap list can be loaded.
var Defaults = []string{"<leader>ff", "<C-n>", "<Space>b", "<C-w>v", "<A-j>"}

// Load reads a keymap list. Files ending in .json or .jsonc hold an array of
// strings (comments allowed); any other file holds one entry per line.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		entries, err = parseJSON(data)
	default:
		entries, err = parseLines(data)
	}
	if err != nil {
		return nil, err
	}
	entries = clean(entries)
	if len(entries) == 0 {
		return nil, fmt.Errorf("keymap list is empty")
	}
	return entries, nil
}

// LoadOrDefault tries each path in order and returns the first list that
// loads. Missing or malformed files fall back to Defaults.
func LoadOrDefault(paths ...string) []string {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if entries, err := Load(path); err == nil {
			return entries
		}
	}
	return append([]string(nil), Defaults...)
}

func parseJSON(data []byte) ([]string, error) {
	var entries []string
	if err := json.Unmarshal(jsonc.ToJSON(data), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode keymaps: %w", err)
	}
	return entries, nil
}

func parseLines(data []byte) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keymaps: %w", err)
	}
	return entries, nil
}

func clean(entries []string) []string {
	out := entries[:0]
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		out = append(out, entry)
	}
	return out
}
