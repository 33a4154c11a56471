/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/trustbloc/edge-sss/pkg/internal/logging/metadata"
)

// ErrMultipleDefaults is returned by SetSpec when a spec has more than one default level.
var ErrMultipleDefaults = errors.New("multiple default values found")

// SetSpec sets module levels from a spec of the form
// ModuleName1=Level1:ModuleName2=Level2:DefaultLevel.
// The spec is applied only if it parses completely.
func SetSpec(spec string) error {
	levels := make(map[string]Level)

	var (
		defaultLevel Level
		hasDefault   bool
	)

	for _, part := range strings.Split(spec, ":") {
		module, levelName, isModule := strings.Cut(part, "=")

		if !isModule {
			if hasDefault {
				return ErrMultipleDefaults
			}

			l, err := ParseLevel(part)
			if err != nil {
				return err
			}

			defaultLevel, hasDefault = l, true

			continue
		}

		l, err := ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("module %s: %w", module, err)
		}

		levels[module] = l
	}

	for module, l := range levels {
		SetLevel(module, l)
	}

	if hasDefault {
		SetLevel(metadata.DefaultModule, defaultLevel)
	}

	return nil
}

// GetSpec returns the current levels in the format accepted by SetSpec.
func GetSpec() string {
	all := GetAllLevels()

	var parts []string

	for module, l := range all {
		if module == metadata.DefaultModule {
			continue
		}

		parts = append(parts, module+"="+ParseString(l))
	}

	sort.Strings(parts)

	return strings.Join(append(parts, ParseString(GetLevel(metadata.DefaultModule))), ":")
}
