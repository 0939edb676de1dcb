package metrics

// InitializeMetrics pre-populates expected label combinations so that every
// metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	formats := []string{"jxl", "avif", "webp", "png", "jpeg"}

	for _, src := range formats {
		for _, dst := range formats {
			TranscodeDuration.WithLabelValues(src, dst)
		}
	}

	for _, stage := range []string{"read", "decode", "resize", "encode"} {
		TranscodeErrors.WithLabelValues(stage)
	}
}
