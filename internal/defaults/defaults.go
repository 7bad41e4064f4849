// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

// Package defaults ships the baseline ProTECT configuration documents
// compiled into the binaries.
package defaults

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pimmuno/protectconf/configtree"
)

//go:embed defaults.yaml
var defaultsYAML []byte

//go:embed template.yaml
var templateYAML []byte

// TemplateFileName is the conventional name for a freshly generated run
// configuration in the working directory.
const TemplateFileName = "ProTECT_config.yaml"

// ErrTemplateExists is returned by [WriteTemplate] when the target file is
// already present and force was not set.
var ErrTemplateExists = errors.New("configuration file already exists")

// Tree parses the bundled defaults document into a fresh tree. Every call
// returns an independent copy, so callers can hand the result to merge
// operations without coordinating ownership.
func Tree() (*configtree.Tree, error) {
	t, err := configtree.Parse(defaultsYAML)
	if err != nil {
		return nil, fmt.Errorf("parse bundled defaults: %w", err)
	}
	return t, nil
}

// Raw returns the bundled defaults document verbatim, comments included.
func Raw() []byte {
	out := make([]byte, len(defaultsYAML))
	copy(out, defaultsYAML)
	return out
}

// Template returns the annotated starting configuration written by the
// generate command.
func Template() []byte {
	out := make([]byte, len(templateYAML))
	copy(out, templateYAML)
	return out
}

// WriteTemplate writes the starting configuration to path, refusing to
// overwrite an existing file unless force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrTemplateExists)
		}
	}
	if err := os.WriteFile(path, templateYAML, 0o644); err != nil {
		return fmt.Errorf("write configuration template: %w", err)
	}
	return nil
}

// ProtectedKeys lists the key paths a run configuration may never collide
// with once a default value exists at the same path. `patients` carries
// per-run sample sheets and must only ever come from the user document.
func ProtectedKeys() [][]string {
	return [][]string{{"patients"}}
}
