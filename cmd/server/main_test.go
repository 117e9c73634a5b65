package main

import (
	"testing"
)

// main must return immediately when SKIP_SERVER_RUN is set so the package
// test binary never binds a port.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}
