package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the pipeline.
var metrics struct {
	SearchRequests atomic.Int64
	SearchErrors   atomic.Int64
	LinksKept      atomic.Int64
	LinksStale     atomic.Int64
	ChannelFetches atomic.Int64
	ChannelErrors  atomic.Int64
	Probes         atomic.Int64
	ProbesLive     atomic.Int64
	rejects        [numRejectReasons]atomic.Int64
}

var metricKeys = []string{
	"search_requests", "search_errors",
	"links_kept", "links_stale",
	"channel_fetches", "channel_errors",
	"probes", "probes_live",
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	m := map[string]int64{
		"search_requests": metrics.SearchRequests.Load(),
		"search_errors":   metrics.SearchErrors.Load(),
		"links_kept":      metrics.LinksKept.Load(),
		"links_stale":     metrics.LinksStale.Load(),
		"channel_fetches": metrics.ChannelFetches.Load(),
		"channel_errors":  metrics.ChannelErrors.Load(),
		"probes":          metrics.Probes.Load(),
		"probes_live":     metrics.ProbesLive.Load(),
	}
	for r := RejectReason(1); r < numRejectReasons; r++ {
		m["reject_"+r.String()] = metrics.rejects[r].Load()
	}
	return m
}

// FormatMetrics returns metrics as "name value" lines.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	for r := RejectReason(1); r < numRejectReasons; r++ {
		k := "reject_" + r.String()
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

func incrReject(r RejectReason) {
	if r > 0 && r < numRejectReasons {
		metrics.rejects[r].Add(1)
	}
}
