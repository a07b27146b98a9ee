// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook that talks to an external system.
const DefaultTimeout = 10 * time.Second
