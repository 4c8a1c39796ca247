// File: bundle.go
// Title: Message Bundle Loading
// Description: Reads locale files from a file system layer and flattens nested
//              tables into dot separated message keys. TOML, YAML and JSON with
//              comments are supported.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: TOML and YAML loading from the locales directory
// - 2026-10-14 v0.2.0: fs.FS layers, JSON(C) bundles, flattened keys

package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/verifier/core/error"
)

// Format represents the language file format
type Format int

const (
	// FormatAuto accepts every supported extension (default)
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML

	// FormatJSON represents JSON format, comments allowed
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json", "jsonc":
		return FormatJSON, nil
	}
	return FormatAuto, mdwerror.New("unknown bundle format").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("i18n.ParseFormat").
		WithDetail("format", s)
}

// extensions returns accepted file extensions in preference order
func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	case FormatJSON:
		return []string{".json", ".jsonc"}
	default:
		return []string{".toml", ".yaml", ".yml", ".json", ".jsonc"}
	}
}

func (f Format) accepts(ext string) (int, bool) {
	for i, e := range f.extensions() {
		if e == ext {
			return i, true
		}
	}
	return 0, false
}

// bundle maps flattened keys to message patterns
type bundle map[string]string

// layer is one source of bundles, e.g. the locales directory or embedded defaults
type layer struct {
	name    string
	fsys    fs.FS
	bundles map[language.Tag]bundle
	files   map[language.Tag][]string
}

// load reads every supported file of the layer. Files that fail to parse are
// reported and skipped.
func (l *layer) load(format Format) []error {
	l.bundles = make(map[language.Tag]bundle)
	l.files = make(map[language.Tag][]string)

	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return []error{mdwerror.Wrap(err, "failed to read bundle directory").
			WithCode(mdwerror.CodeBundleLoad).
			WithOperation("i18n.load").
			WithDetail("source", l.name)}
	}

	type candidate struct {
		name string
		rank int
		tag  language.Tag
	}
	var candidates []candidate
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		rank, ok := format.accepts(strings.ToLower(path.Ext(name)))
		if !ok {
			continue
		}
		tag, err := ParseLocale(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			errs = append(errs, mdwerror.Wrap(err, "bundle file name is not a locale").
				WithCode(mdwerror.CodeBundleLoad).
				WithOperation("i18n.load").
				WithDetail("source", l.name).
				WithDetail("file", name))
			continue
		}
		candidates = append(candidates, candidate{name: name, rank: rank, tag: tag})
	}

	// preferred extensions first so they win on duplicate keys
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].rank < candidates[j].rank })

	for _, c := range candidates {
		b, err := l.readFile(c.name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		l.merge(c.tag, c.name, b)
	}

	return errs
}

func (l *layer) merge(tag language.Tag, name string, b bundle) {
	target, ok := l.bundles[tag]
	if !ok {
		target = make(bundle, len(b))
		l.bundles[tag] = target
	}
	for k, v := range b {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
	l.files[tag] = append(l.files[tag], name)
}

func (l *layer) readFile(name string) (bundle, error) {
	content, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read bundle file").
			WithCode(mdwerror.CodeBundleLoad).
			WithOperation("i18n.readFile").
			WithDetail("source", l.name).
			WithDetail("file", name)
	}

	b, err := parseBundle(strings.ToLower(path.Ext(name)), content)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse bundle file").
			WithCode(mdwerror.CodeBundleLoad).
			WithOperation("i18n.readFile").
			WithDetail("source", l.name).
			WithDetail("file", name)
	}
	return b, nil
}

// parseBundle decodes content according to ext and flattens it
func parseBundle(ext string, content []byte) (bundle, error) {
	var data map[string]interface{}

	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("YAML: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(content), &data); err != nil {
			return nil, fmt.Errorf("JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}

	out := make(bundle)
	flatten(out, "", data)
	return out, nil
}

// flatten collects leaf values using dot notation. Lists contribute their
// first element.
func flatten(out bundle, prefix string, data map[string]interface{}) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			flatten(out, fullKey, v)
		case []interface{}:
			if len(v) > 0 {
				out[fullKey] = fmt.Sprintf("%v", v[0])
			}
		case nil:
		default:
			out[fullKey] = fmt.Sprintf("%v", v)
		}
	}
}
