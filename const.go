//Package ws2812bang drives WS2812 LED strips by bit-banging a single GPIO pin using plain GO.
package ws2812bang

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Errors
var (
	ErrInvalidConfig       = errors.New("invalid attach config size")
	ErrUnsupportedPlatform = errors.New("board not supported")
	ErrIndexOutOfRange     = errors.New("pixel index out of range")
	ErrInvalidCommand      = errors.New("malformed patch command")
	ErrFrameLength         = errors.New("frame length does not match pixel count")
	ErrNotAttached         = errors.New("device not attached")
	ErrDeviceAttached      = errors.New("device already attached")
	ErrNoPlatform          = errors.New("no platform set")
	ErrPortNotAvailable    = errors.New("port group not available on this platform")
)

//ErrorKind is the code sent with every error report.
type ErrorKind uint8

//Valid ErrorKinds
const (
	KindInvalidConfiguration ErrorKind = iota + 1
	KindUnsupportedPlatform
	KindIndexOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConfiguration:
		return "invalid-configuration"
	case KindUnsupportedPlatform:
		return "unsupported-platform"
	case KindIndexOutOfRange:
		return "out-of-range-index"
	}
	return "unknown"
}

const (
	attachConfigSize = 2 // {pin, pixelCount}

	patchLengthOffset = 2 // byte holding the length of the quadruple region
	patchDataOffset   = 3 // first quadruple
	patchEntrySize    = 4 // {index, red, green, blue}

	bitsPerByte     = 8
	channelsPerLED  = 3
	bitsPerPixel    = bitsPerByte * channelsPerLED
	nanosPerSecond  = 1e9
	microsPerSecond = 1e6
)

// DefaultRefreshInterval limits Update to roughly 30 frames per second.
const DefaultRefreshInterval = 33 * time.Millisecond

//Enable Debug output
var Debug bool

var logger = zerolog.New(os.Stderr).With().Timestamp().Str("pkg", "ws2812bang").Logger()

//SetLogger replaces the logger used for Debug output.
func SetLogger(l zerolog.Logger) {
	logger = l
}

//SetLogOutput sends Debug output to w.
func SetLogOutput(w io.Writer) {
	logger = logger.Output(w)
}

// logOutput returns nil while Debug is off; zerolog treats a nil event as a no-op.
func logOutput() *zerolog.Event {
	if !Debug {
		return nil
	}
	return logger.Debug()
}
