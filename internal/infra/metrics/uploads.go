package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(imageUploadsTotal) }

var imageUploadsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "image_uploads_total",
		Help: "Image uploads to the storage backend by type and result.",
	},
	[]string{"type", "result"}, // type: 'avatar', 'gallery'; result: 'ok', 'error'
)

func IncImageUpload(imageType, result string) {
	imageUploadsTotal.WithLabelValues(norm(imageType), norm(result)).Inc()
}
