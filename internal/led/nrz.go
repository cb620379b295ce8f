package led

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"
)

// WS2812-family bit rate, kHz per channel bit.
const refreshRate physic.Frequency = 800

// NRZ drives a chain of WS2812-style pixels over SPI using periph.io's
// non-return-to-zero encoder. When no SPI port is present it falls back
// to a terminal screen drawer so the animation stays visible during
// development.
type NRZ struct {
	drawer display.Drawer
	img    *image.NRGBA
	count  int

	// Hardware reports whether a real SPI port is attached.
	Hardware bool
}

// OpenNRZ initializes the periph host, opens the SPI port named by dev
// (empty picks the first available) and prepares the pixel encoder.
func OpenNRZ(dev string, count int) (*NRZ, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid light count: %d", count)
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	d := &NRZ{
		count: count,
		img:   image.NewNRGBA(image.Rect(0, 0, count, 1)),
	}

	port, err := spireg.Open(dev)
	if err != nil {
		d.drawer = screen.New(count)
		return d, nil
	}

	opts := nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      ((refreshRate * 3) + 100) * physic.KiloHertz,
	}
	nd, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	_ = nd.Halt()
	d.drawer = nd
	d.Hardware = true
	return d, nil
}

func (d *NRZ) Write(rgb []byte) error {
	if len(rgb) != d.count*3 {
		return fmt.Errorf("rgb length %d does not match count %d", len(rgb), d.count)
	}
	for i := 0; i < d.count; i++ {
		d.img.SetNRGBA(i, 0, color.NRGBA{R: rgb[i*3], G: rgb[i*3+1], B: rgb[i*3+2], A: 255})
	}
	if err := d.drawer.Draw(d.drawer.Bounds(), d.img, image.Point{}); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func (d *NRZ) Close() error {
	return d.drawer.Halt()
}
