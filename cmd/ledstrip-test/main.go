package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ledstrip"
	"github.com/BeatGlow/ledstrip/pixel"
)

func main() {
	countFlag := flag.Int("count", 30, "Number of pixels on the strip")
	brightnessFlag := flag.Float64("brightness", 1, "Brightness level between 0 and 1")
	gammaFlag := flag.Float64("gamma", 0, "Gamma encoding exponent (0 or 1 is linear)")
	orderFlag := flag.String("order", "", "Channel order override, like GRB or RGBW")
	temperatureFlag := flag.Float64("temperature", 0, "Color temperature correction in Kelvin (0 disables)")
	colorFlag := flag.String("color", "", "Show a solid SVG color name instead of the rainbow sweep")
	gradientFlag := flag.String("gradient", "", "Show a gradient between two hex colors, like #204090,#90e0d0")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	dataPinFlag := flag.String("data", "GPIO10", "Data GPIO pin (bitbang and pulse buses)")
	clockPinFlag := flag.String("clock", "GPIO11", "Clock GPIO pin (bitbang bus)")
	speedFlag := flag.Int("speed", 1_000_000, "Bit-bang clock speed in Hz")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bus> <chip>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Buses: spi, bitbang, pulse")
		fmt.Fprintln(os.Stderr, "Chips: apa102, lpd8806 (spi or bitbang); ws2812, sk6812 (pulse)")
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	config := &ledstrip.Config{
		Count:      *countFlag,
		Brightness: *brightnessFlag,
		Gamma:      *gammaFlag,
	}
	if *orderFlag != "" {
		order, err := pixel.ParseOrder(*orderFlag)
		if err != nil {
			fatal(err)
		}
		config.Order = order
	}
	if *temperatureFlag > 0 {
		config.Correction = pixel.TemperatureCorrection(*temperatureFlag)
	}

	var (
		w   ledstrip.Writer
		pw  ledstrip.PulseWriter
		err error
	)
	switch busType := flag.Arg(0); busType {
	case "spi":
		w, err = ledstrip.OpenSPI(&ledstrip.SPIConfig{
			Bus:    *spiBusFlag,
			Device: *spiDeviceFlag,
		})
	case "bitbang":
		w, err = ledstrip.OpenBitBang(&ledstrip.BitBangConfig{
			Data:     gpioreg.ByName(*dataPinFlag),
			Clock:    gpioreg.ByName(*clockPinFlag),
			DataRate: physic.Frequency(*speedFlag) * physic.Hertz,
		})
	case "pulse":
		pw, err = ledstrip.OpenPulsePin(&ledstrip.PulsePinConfig{
			Pin: gpioreg.ByName(*dataPinFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	if w != nil {
		fmt.Printf("using connection: %s\n", w)
	} else {
		fmt.Printf("using connection: %s\n", pw)
	}

	var strip ledstrip.Strip
	switch chip := strings.ToLower(flag.Arg(1)); chip {
	case "apa102":
		strip, err = ledstrip.APA102(w, config)
	case "lpd8806":
		strip, err = ledstrip.LPD8806(w, config)
	case "ws2812":
		strip, err = ledstrip.WS2812(pw, config)
	case "sk6812":
		strip, err = ledstrip.SK6812(pw, config)
	default:
		err = fmt.Errorf("unsupported chip %q", chip)
	}
	if err != nil {
		fatal(err)
	}
	defer strip.Close()
	fmt.Printf("using driver: %s\n", strip)

	var animate = true
	switch {
	case *colorFlag != "":
		c, ok := colornames.Map[strings.ToLower(*colorFlag)]
		if !ok {
			fatal(fmt.Errorf("unknown color %q", *colorFlag))
		}
		strip.Fill(c)
		animate = false

	case *gradientFlag != "":
		parts := strings.Split(*gradientFlag, ",")
		if len(parts) != 2 {
			fatal(fmt.Errorf("invalid gradient %q, need two colors", *gradientFlag))
		}
		from, err := colorful.Hex(parts[0])
		if err != nil {
			fatal(err)
		}
		to, err := colorful.Hex(parts[1])
		if err != nil {
			fatal(err)
		}
		for i := 0; i < strip.Len(); i++ {
			var t float64
			if n := strip.Len(); n > 1 {
				t = float64(i) / float64(n-1)
			}
			strip.Set(i, from.BlendLab(to, t).Clamped())
		}
		animate = false
	}

	var (
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
	)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for {
		if animate {
			for i := 0; i < strip.Len(); i++ {
				h := float64(i+offset) / float64(strip.Len())
				strip.Set(i, pixel.NewHSV[pixel.Rainbow](h, 1, 1))
			}
			offset++
		}
		if err = strip.Refresh(); err != nil {
			fatal(err)
		}
		<-ticker.C
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
