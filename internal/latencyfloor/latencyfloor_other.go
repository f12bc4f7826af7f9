//go:build !linux

package latencyfloor

// Hold always reports ErrUnavailable; only Linux exposes a PM QoS device.
func Hold(path string, target int32) (*Handle, error) {
	return nil, ErrUnavailable
}

// Close is a no-op.
func (h *Handle) Close() error {
	return nil
}
