package liveprops

import "github.com/prometheus/client_golang/prometheus"

var SetCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "liveprops",
	Subsystem: "store",
	Name:      "sets",
}, []string{"result"})

var FlushCount = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "liveprops",
	Subsystem: "store",
	Name:      "flushes",
})

var ReconcileCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "liveprops",
	Subsystem: "store",
	Name:      "reconciliations",
}, []string{"result"})
