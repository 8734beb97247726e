//Package metrics exports frame statistics of ws2812bang devices to Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/DerLukas15/ws2812bang"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	framesShown = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ws2812bang",
		Subsystem: "device",
		Name:      "frames_shown_total",
		Help:      "Frames sent to the strip",
	}, []string{"pin"})

	framesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ws2812bang",
		Subsystem: "device",
		Name:      "frames_dropped_total",
		Help:      "Show requests dropped inside the reset interval",
	}, []string{"pin"})

	pixelsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ws2812bang",
		Subsystem: "device",
		Name:      "pixels_sent_total",
		Help:      "Pixels sent to the strip",
	}, []string{"pin"})

	patchEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ws2812bang",
		Subsystem: "patch",
		Name:      "entries_total",
		Help:      "Patch entries by result",
	}, []string{"pin", "result"})
)

//Observer implements ws2812bang.Observer.
type Observer struct{}

//FrameShown counts a frame and its pixels.
func (Observer) FrameShown(pin uint8, pixels int) {
	label := pinLabel(pin)
	framesShown.WithLabelValues(label).Inc()
	pixelsSent.WithLabelValues(label).Add(float64(pixels))
}

//ShowDropped counts a dropped show request.
func (Observer) ShowDropped(pin uint8) {
	framesDropped.WithLabelValues(pinLabel(pin)).Inc()
}

//PatchApplied counts applied and rejected patch entries.
func (Observer) PatchApplied(pin uint8, entries int, rejected int) {
	label := pinLabel(pin)
	patchEntries.WithLabelValues(label, "applied").Add(float64(entries))
	patchEntries.WithLabelValues(label, "rejected").Add(float64(rejected))
}

//Delete removes all series of pin.
func Delete(pin uint8) {
	label := pinLabel(pin)
	framesShown.DeleteLabelValues(label)
	framesDropped.DeleteLabelValues(label)
	pixelsSent.DeleteLabelValues(label)
	patchEntries.DeleteLabelValues(label, "applied")
	patchEntries.DeleteLabelValues(label, "rejected")
}

//Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func pinLabel(pin uint8) string {
	return strconv.Itoa(int(pin))
}

var _ ws2812bang.Observer = Observer{}
