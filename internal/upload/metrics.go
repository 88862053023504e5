package upload

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// batch results
const (
	resultOK       = "ok"
	resultDecode   = "decode_error"
	resultInvalid  = "invalid"
	resultCanceled = "canceled"
)

var (
	batchesTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "gameitem_upload_batches_total",
			Help: "Number of processed upload batches by result.",
		},
		[]string{"result"},
	)

	recordsTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "gameitem_upload_records_total",
			Help: "Number of uploaded item records by outcome.",
		},
		[]string{"outcome"},
	)
)
