// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package server

import "errors"

// errNoTransports is returned by NewServer when neither the HTTP nor the
// gRPC address is configured.
var errNoTransports = errors.New("no transports configured")
