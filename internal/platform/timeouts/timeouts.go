// Package timeouts defines shared timeout constants.
package timeouts

import "time"

// Shutdown limits how long telemetry may spend flushing spans when the
// process exits.
const Shutdown = 5 * time.Second
