// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package handler

import "errors"

// errNoTransportHandlers is returned by NewHandlers when neither transport
// has an address configured. The daemon treats it as a fatal
// misconfiguration at startup.
var errNoTransportHandlers = errors.New("no transport handlers configured")
