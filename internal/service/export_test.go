// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package service

// DefaultListLimit exposes defaultListLimit to the external test package.
const DefaultListLimit = defaultListLimit
