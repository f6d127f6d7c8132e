//go:build linux

package signal

import (
	mobysignal "github.com/moby/sys/signal"
)

// Parse translates a symbolic signal name such as "TERM" or "SIGHUP", or a
// numeric string, into a Signal.
func Parse(name string) (Signal, error) {
	sig, err := mobysignal.ParseSignal(name)
	if err != nil {
		return 0, err
	}
	return sig, nil
}
