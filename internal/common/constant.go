// Package common contains shared constants, sentinel errors and small helpers
// used across BiteShare client layers.
package common

// Keys of the local metadata table.
const (
	// SessionKey holds the sealed session record of the signed-in user.
	SessionKey = "session"

	// DeviceKeyName holds the per-installation secret used to seal the
	// session record and encrypt attachments.
	DeviceKeyName = "device_key"
)

// DeviceKeySize is the length of the per-installation secret in bytes.
const DeviceKeySize = 32
