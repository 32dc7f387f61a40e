package services

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// MetricSample is one snapshot of host load plus inventory headline counts,
// sampled on an interval and streamed to the admin dashboard.
type MetricSample struct {
	CapturedAt        time.Time `json:"capturedAt"`
	SystemMemoryTotal int64     `json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `json:"diskTotalBytes"`
	DiskUsedBytes     int64     `json:"diskUsedBytes"`
	ProcessCpuLoad    float64   `json:"processCpuLoad"`
	SystemCpuLoad     float64   `json:"systemCpuLoad"`
	TotalBarang       int64     `json:"totalBarang"`
	TotalDipinjam     int64     `json:"totalDipinjam"`
}

func CaptureMetrics(database *sqlx.DB, diskPath string) (MetricSample, error) {
	memStat, _ := mem.VirtualMemory()
	diskStat, err := disk.Usage(diskPath)
	if err != nil {
		diskStat, _ = disk.Usage("/")
	}
	processCPU := float64(0)
	if proc, _ := process.NewProcess(int32(os.Getpid())); proc != nil {
		cpuPerc, _ := proc.CPUPercent()
		processCPU = cpuPerc / 100.0
	}
	sysCPU, _ := cpu.Percent(0, false)
	sysCPUValue := 0.0
	if len(sysCPU) > 0 {
		sysCPUValue = sysCPU[0] / 100.0
	}
	sample := MetricSample{
		CapturedAt:        time.Now().UTC(),
		SystemMemoryTotal: int64(memStat.Total),
		SystemMemoryUsed:  int64(memStat.Total - memStat.Available),
		DiskTotalBytes:    int64(diskStat.Total),
		DiskUsedBytes:     int64(diskStat.Used),
		ProcessCpuLoad:    processCPU,
		SystemCpuLoad:     sysCPUValue,
	}
	_ = database.Get(&sample.TotalBarang, `SELECT COUNT(*) FROM barang`)
	_ = database.Get(&sample.TotalDipinjam, `SELECT COUNT(*) FROM barang WHERE status = 'dipinjam'`)

	insert := database.Rebind(`
INSERT INTO server_metric_samples (
  id, captured_at, system_memory_total_bytes, system_memory_used_bytes,
  disk_total_bytes, disk_used_bytes, process_cpu_load, system_cpu_load,
  total_barang, total_dipinjam
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = database.Exec(insert, uuid.NewString(), sample.CapturedAt,
		sample.SystemMemoryTotal, sample.SystemMemoryUsed,
		sample.DiskTotalBytes, sample.DiskUsedBytes,
		sample.ProcessCpuLoad, sample.SystemCpuLoad,
		sample.TotalBarang, sample.TotalDipinjam)
	if err != nil {
		return MetricSample{}, WrapError(err, "insert metric sample")
	}
	return sample, nil
}

func LatestMetrics(database *sqlx.DB, limit int) ([]MetricSample, error) {
	type row struct {
		CapturedAt        time.Time `db:"captured_at"`
		SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
		SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
		DiskTotalBytes    int64     `db:"disk_total_bytes"`
		DiskUsedBytes     int64     `db:"disk_used_bytes"`
		ProcessCpuLoad    float64   `db:"process_cpu_load"`
		SystemCpuLoad     float64   `db:"system_cpu_load"`
		TotalBarang       int64     `db:"total_barang"`
		TotalDipinjam     int64     `db:"total_dipinjam"`
	}
	rows := []row{}
	query := database.Rebind(`
SELECT captured_at, system_memory_total_bytes, system_memory_used_bytes,
       disk_total_bytes, disk_used_bytes, process_cpu_load, system_cpu_load,
       total_barang, total_dipinjam
FROM server_metric_samples
ORDER BY captured_at DESC
LIMIT ?`)
	if err := database.Select(&rows, query, limit); err != nil {
		return nil, WrapError(err, "load metric samples")
	}
	items := make([]MetricSample, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		items = append(items, MetricSample{
			CapturedAt:        rows[i].CapturedAt,
			SystemMemoryTotal: rows[i].SystemMemoryTotal,
			SystemMemoryUsed:  rows[i].SystemMemoryUsed,
			DiskTotalBytes:    rows[i].DiskTotalBytes,
			DiskUsedBytes:     rows[i].DiskUsedBytes,
			ProcessCpuLoad:    rows[i].ProcessCpuLoad,
			SystemCpuLoad:     rows[i].SystemCpuLoad,
			TotalBarang:       rows[i].TotalBarang,
			TotalDipinjam:     rows[i].TotalDipinjam,
		})
	}
	return items, nil
}

// MetricsHub fans samples out to connected dashboard sockets.
type MetricsHub struct {
	clients map[*websocket.Conn]bool
	ch      chan MetricSample
	joins   chan *websocket.Conn
	leaves  chan *websocket.Conn
}

func NewMetricsHub() *MetricsHub {
	return &MetricsHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan MetricSample, 16),
		joins:   make(chan *websocket.Conn),
		leaves:  make(chan *websocket.Conn),
	}
}

func (h *MetricsHub) Run(ctx context.Context) {
	for {
		select {
		case conn := <-h.joins:
			h.clients[conn] = true
		case conn := <-h.leaves:
			delete(h.clients, conn)
		case sample := <-h.ch:
			for conn := range h.clients {
				_ = conn.WriteJSON(sample)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *MetricsHub) Broadcast(sample MetricSample) {
	select {
	case h.ch <- sample:
	default:
	}
}

func (h *MetricsHub) Add(conn *websocket.Conn) {
	h.joins <- conn
}

func (h *MetricsHub) Remove(conn *websocket.Conn) {
	h.leaves <- conn
}
