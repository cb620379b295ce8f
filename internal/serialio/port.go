package serialio

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/tarm/serial"
)

// Port reads single-byte commands from a serial transport and forwards
// them to a sink. The protocol has no framing and no acknowledgements:
// every byte is a complete command.
type Port struct {
	rc   io.ReadCloser
	done chan struct{}
}

// Open opens the serial device and starts forwarding bytes to sink.
func Open(dev string, baud int, sink func(byte)) (*Port, error) {
	if baud <= 0 {
		baud = 9600
	}
	s, err := serial.OpenPort(&serial.Config{Name: dev, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", dev, err)
	}
	log.Info().Str("dev", dev).Int("baud", baud).Msg("serial command stream open")
	return Forward(s, sink), nil
}

// Forward runs the reader loop over any byte stream. Split out so tests
// can feed commands without a device.
func Forward(rc io.ReadCloser, sink func(byte)) *Port {
	p := &Port{rc: rc, done: make(chan struct{})}
	go p.loop(sink)
	return p
}

func (p *Port) loop(sink func(byte)) {
	defer close(p.done)
	buf := make([]byte, 1)
	for {
		n, err := p.rc.Read(buf)
		if n > 0 {
			sink(buf[0])
		}
		if err != nil {
			if err != io.EOF {
				log.Warn().Err(err).Msg("serial read stopped")
			}
			return
		}
	}
}

// Close stops the reader and closes the transport.
func (p *Port) Close() error {
	err := p.rc.Close()
	<-p.done
	return err
}
