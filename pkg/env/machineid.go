package env

import (
	"github.com/denisbrodbeck/machineid"
)

// FallbackDeviceID is used when the machine id can't be read.
const FallbackDeviceID = "irlink"

// MachineID returns an id of this machine scoped to the application, so
// the raw machine id is never published.
func MachineID() (string, error) {
	return machineid.ProtectedID("irlink")
}
