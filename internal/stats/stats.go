package stats

import (
	"runtime"
	"sync"
	"time"
)

// Stats is a point-in-time snapshot of request activity and process health
type Stats struct {
	Timestamp time.Time      `json:"timestamp"`
	Requests  RequestStats   `json:"requests"`
	Memory    MemoryStats    `json:"memory"`
	Runtime   RuntimeStats   `json:"runtime"`
	Endpoints []EndpointStat `json:"endpoints"`
}

// RequestStats aggregates totals across all endpoints
type RequestStats struct {
	Total   int64 `json:"total"`
	Success int64 `json:"success"`
	Failed  int64 `json:"failed"`
}

// EndpointStat holds per-endpoint counters
type EndpointStat struct {
	Name    string `json:"name"`
	Success int64  `json:"success"`
	Failed  int64  `json:"failed"`
}

type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"total_alloc"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"num_gc"`
	HeapAlloc  uint64 `json:"heap_alloc"`
	HeapInuse  uint64 `json:"heap_inuse"`
}

type RuntimeStats struct {
	NumGoroutines int   `json:"num_goroutines"`
	NumCPU        int   `json:"num_cpu"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}

var memStatsCacheDuration = 5 * time.Second

// Collector counts requests per endpoint and exposes process-level stats.
// It is safe for concurrent use.
type Collector struct {
	startTime time.Time

	mu      sync.RWMutex
	success map[string]int64
	failed  map[string]int64

	cachedMem  *MemoryStats
	cacheTime  time.Time
	cacheMutex sync.RWMutex
}

func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		success:   make(map[string]int64),
		failed:    make(map[string]int64),
	}
}

// RecordSuccess counts a completed request against the named endpoint
func (c *Collector) RecordSuccess(endpoint string) {
	c.mu.Lock()
	c.success[endpoint]++
	c.mu.Unlock()
}

// RecordFailure counts a failed request against the named endpoint
func (c *Collector) RecordFailure(endpoint string) {
	c.mu.Lock()
	c.failed[endpoint]++
	c.mu.Unlock()
}

// Collect assembles a snapshot of counters and process stats
func (c *Collector) Collect() *Stats {
	stats := &Stats{
		Timestamp: time.Now(),
	}

	stats.Memory = c.collectMemoryStats()
	stats.Runtime = c.collectRuntimeStats()
	stats.Endpoints, stats.Requests = c.collectRequestStats()

	return stats
}

func (c *Collector) collectRequestStats() ([]EndpointStat, RequestStats) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make(map[string]bool)
	for name := range c.success {
		names[name] = true
	}
	for name := range c.failed {
		names[name] = true
	}

	var endpoints []EndpointStat
	var totals RequestStats
	for name := range names {
		stat := EndpointStat{
			Name:    name,
			Success: c.success[name],
			Failed:  c.failed[name],
		}
		endpoints = append(endpoints, stat)
		totals.Success += stat.Success
		totals.Failed += stat.Failed
	}
	totals.Total = totals.Success + totals.Failed

	return endpoints, totals
}

func (c *Collector) collectMemoryStats() MemoryStats {
	c.cacheMutex.RLock()
	if c.cachedMem != nil && time.Since(c.cacheTime) < memStatsCacheDuration {
		mem := *c.cachedMem
		c.cacheMutex.RUnlock()
		return mem
	}
	c.cacheMutex.RUnlock()

	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mem := MemoryStats{
		Alloc:      m.Alloc,
		TotalAlloc: m.TotalAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		HeapAlloc:  m.HeapAlloc,
		HeapInuse:  m.HeapInuse,
	}

	c.cachedMem = &mem
	c.cacheTime = time.Now()

	return mem
}

func (c *Collector) collectRuntimeStats() RuntimeStats {
	uptime := time.Since(c.startTime).Seconds()
	return RuntimeStats{
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		UptimeSeconds: int64(uptime),
	}
}
