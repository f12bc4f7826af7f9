//go:build linux

package latencyfloor

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Hold opens path and writes target (microseconds) as a native-endian int32.
// The kernel honours the request for as long as the descriptor stays open.
func Hold(path string, target int32) (*Handle, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("latencyfloor: open %s: %w", path, err)
	}

	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(target))
	if _, err := unix.Write(fd, buf[:]); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("latencyfloor: write %s: %w", path, err)
	}
	return &Handle{fd: fd, path: path}, nil
}

// Close drops the latency request. It is safe on a nil Handle.
func (h *Handle) Close() error {
	if h == nil || h.fd < 0 {
		return nil
	}
	err := unix.Close(h.fd)
	h.fd = -1
	if err != nil {
		return fmt.Errorf("latencyfloor: close %s: %w", h.path, err)
	}
	return nil
}
