package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/releaseorder/pkg/errors"
)

// Format identifies a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat converts a user-supplied format name. "yml" is accepted as an
// alias for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q (want json, yaml or toml)", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer format of %s: no extension", path)
	}
	return ParseFormat(ext)
}

// Decode reads one document of the given format from r into v.
func Decode(r io.Reader, format Format, v any) error {
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(v)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(v)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown key %q", undecoded[0].String())
			}
		}
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q", format)
	}

	if errors.Is(err, io.EOF) {
		return errs.New(errs.ErrCodeInvalidManifest, "empty %s document", format)
	}
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidManifest, err, "decode %s", format)
	}
	return nil
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q", format)
}
