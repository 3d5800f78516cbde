// Package cartridge provides access to Game Boy ROM images.
package cartridge

import (
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/gbdisasm/internal/banking"
)

// ErrImageTooSmall is returned for images without a complete bank and for
// reads beyond the end of an image.
var ErrImageTooSmall = errors.New("image too small")

// Image is an immutable ROM image.
type Image struct {
	data []byte
}

// New returns an image for the given data. The data must contain at least
// one complete bank and is not copied, callers must not modify it afterwards.
func New(data []byte) (*Image, error) {
	if len(data) < banking.Size {
		return nil, fmt.Errorf("%w: %d bytes, a bank has %d bytes", ErrImageTooSmall, len(data), banking.Size)
	}
	return &Image{data: data}, nil
}

// Load reads a complete image.
func Load(reader io.Reader) (*Image, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return New(data)
}

// Len returns the image size in bytes.
func (img *Image) Len() int {
	return len(img.data)
}

// Banks returns the number of complete banks of the image.
func (img *Image) Banks() int {
	return len(img.data) >> banking.Shift
}

// Partial returns whether the image ends with an incomplete bank.
func (img *Image) Partial() bool {
	return len(img.data)%banking.Size != 0
}

// Data returns the raw image bytes, the caller must not modify them.
func (img *Image) Data() []byte {
	return img.data
}

// ReadU8 reads the byte at the given location.
func (img *Image) ReadU8(location int) (byte, error) {
	if location < 0 || location >= len(img.data) {
		return 0, fmt.Errorf("%w: reading location %s", ErrImageTooSmall, banking.Format(location))
	}
	return img.data[location], nil
}

// ReadU16 reads the little endian word at the given location.
func (img *Image) ReadU16(location int) (uint16, error) {
	low, err := img.ReadU8(location)
	if err != nil {
		return 0, err
	}
	high, err := img.ReadU8(location + 1)
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// Bytes returns count bytes starting at the location, clipped to the image end.
func (img *Image) Bytes(location, count int) []byte {
	end := min(location+count, len(img.data))
	return img.data[location:end]
}
