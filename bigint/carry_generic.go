//go:build !amd64

package bigint

// On non-amd64 platforms there is no ADX/BMI2 feature to probe, so addVV
// and subVV keep their portable implementations (addVVPortable and
// subVVPortable) and this file has nothing to override.
func init() {}
