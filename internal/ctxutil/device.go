// Package ctxutil provides context utilities that can be safely imported
// anywhere. This package has no internal dependencies to avoid import
// cycles.
package ctxutil

import "context"

// DeviceKey is the context key for the handheld terminal identity.
type DeviceKey struct{}

// WithDeviceID returns a context with the device ID embedded.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, DeviceKey{}, deviceID)
}

// DeviceFromContext returns the device ID from context, or empty string if
// not set.
func DeviceFromContext(ctx context.Context) string {
	if v := ctx.Value(DeviceKey{}); v != nil {
		return v.(string)
	}
	return ""
}
