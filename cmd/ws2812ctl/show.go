package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DerLukas15/ws2812bang"
	"github.com/DerLukas15/ws2812bang/metrics"
	"github.com/DerLukas15/ws2812bang/registry"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const deviceName = "ws2812ctl"

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Attach the strip, write pixels and show them",
		Example: `  ws2812ctl show --pixels 3 --set 0=ff0000 --set 2=0000ff
  ws2812ctl show --fill 202020 --frames 30 --shift
  ws2812ctl show --platform rpi --pin 18 --pixels 60 --off`,
		RunE: runShow,
	}
	f := cmd.Flags()
	f.String("fill", "", "set every pixel to RRGGBB")
	f.StringArray("set", nil, "set one pixel, INDEX=RRGGBB (repeatable)")
	f.Int("frames", 1, "number of frames to show")
	f.Bool("shift", false, "rotate the strip by one pixel after every frame")
	f.Bool("off", false, "turn every pixel off")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	fill, _ := flags.GetString("fill")
	sets, _ := flags.GetStringArray("set")
	frames, _ := flags.GetInt("frames")
	shift, _ := flags.GetBool("shift")
	off, _ := flags.GetBool("off")

	entries, err := parseEntries(sets)
	if err != nil {
		return err
	}

	platform, sim, closer, err := openPlatform(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer(); err != nil {
			log.Warn().Err(err).Msg("platform close failed")
		}
	}()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, metrics.Handler()); err != nil {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server stopped")
			}
		}()
	}

	reg := registry.New()
	defer reg.OnAttached(func(e registry.AttachedEvent) {
		log.Info().Str("device", e.Name).Uint8("pin", e.Info.Pin).Int("pixels", e.Info.Pixels).Stringer("port", e.Info.Port).Msg("attached")
	})()
	defer reg.OnDetached(func(e registry.DetachedEvent) {
		metrics.Delete(e.Info.Pin)
		log.Debug().Str("device", e.Name).Uint8("pin", e.Info.Pin).Msg("detached")
	})()
	defer reg.OnError(func(e registry.ErrorEvent) {
		log.Error().Str("device", e.Name).Stringer("kind", e.Kind).Msg(e.Message)
	})()

	opts := append(cfg.Options(), ws2812bang.WithReporter(reg.Reporter(deviceName)), ws2812bang.WithObserver(metrics.Observer{}))
	d, err := ws2812bang.New(platform, opts...)
	if err != nil {
		return err
	}
	if err := d.AttachPin(cfg.Pin, cfg.Pixels); err != nil {
		return err
	}
	defer d.Detach()

	out := cmd.OutOrStdout()
	if off {
		if sim != nil {
			sim.ResetRecording()
		}
		d.Off()
		printFrame(out, sim, d)
		return nil
	}

	if fill != "" {
		p, err := parseColor(fill)
		if err != nil {
			return err
		}
		d.Fill(p)
	}
	if len(entries) > 0 {
		err := d.WritePatch(ws2812bang.EncodePatch(entries...))
		if errors.Cause(err) == ws2812bang.ErrIndexOutOfRange {
			log.Warn().Err(err).Msg("some pixels were skipped")
		} else if err != nil {
			return err
		}
	}

	for shown := 0; shown < frames; {
		if sim != nil {
			sim.ResetRecording()
		}
		if !d.Update() {
			wait(sim, time.Millisecond)
			continue
		}
		shown++
		printFrame(out, sim, d)
		if shift {
			d.ShiftRight(1)
		} else if shown < frames {
			// rewrite the same frame so Update sends it again
			d.WriteFrame(frameBytes(d))
		}
	}
	return nil
}

// wait lets time pass, virtually on the sim platform.
func wait(sim *ws2812bang.SimPlatform, d time.Duration) {
	if sim != nil {
		sim.Advance(d)
		return
	}
	time.Sleep(d)
}

// printFrame prints what reached the strip. Only the sim platform can tell, the
// others print the buffer.
func printFrame(out io.Writer, sim *ws2812bang.SimPlatform, d *ws2812bang.Device) {
	pixels := d.Pixels()
	if sim != nil {
		pp := d.PinPort()
		pixels = sim.DecodePixels(pp.Group, pp.Mask(), d.Cycles())
	}
	colors := make([]string, len(pixels))
	for i, p := range pixels {
		colors[i] = fmt.Sprintf("%06x", p.UInt32())
	}
	fmt.Fprintln(out, strings.Join(colors, " "))
}

func frameBytes(d *ws2812bang.Device) []byte {
	pixels := d.Pixels()
	out := make([]byte, 0, 3*len(pixels))
	for _, p := range pixels {
		out = append(out, p.R, p.G, p.B)
	}
	return out
}

func parseColor(s string) (ws2812bang.Pixel, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return ws2812bang.Pixel{}, errors.Errorf("color %q is not RRGGBB", s)
	}
	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ws2812bang.Pixel{}, errors.Wrapf(err, "color %q", s)
	}
	return ws2812bang.PixelFromUInt32(uint32(val)), nil
}

func parseEntries(sets []string) ([]ws2812bang.PatchEntry, error) {
	entries := make([]ws2812bang.PatchEntry, 0, len(sets))
	for _, set := range sets {
		idx, color, ok := strings.Cut(set, "=")
		if !ok {
			return nil, errors.Errorf("--set %q is not INDEX=RRGGBB", set)
		}
		index, err := strconv.ParseUint(idx, 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "--set %q", set)
		}
		p, err := parseColor(color)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ws2812bang.PatchEntry{Index: uint8(index), Pixel: p})
	}
	return entries, nil
}
