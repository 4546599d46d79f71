package services

import (
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// DashboardServiceProvider defines the interface for dashboard statistics.
type DashboardServiceProvider interface {
	GetStats() (models.DashboardStats, error)
}

// DashboardService aggregates content counts and host statistics for the
// admin dashboard.
type DashboardService struct {
	db    *sql.DB
	store *upload.Store
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(db *sql.DB, store *upload.Store) *DashboardService {
	return &DashboardService{db: db, store: store}
}

// GetStats collects counts and host stats. Host metrics are best-effort:
// a failing probe zeroes the field instead of failing the request.
func (s *DashboardService) GetStats() (models.DashboardStats, error) {
	var stats models.DashboardStats

	counts := []struct {
		table string
		dest  *int
	}{
		{"weddings", &stats.Weddings},
		{"packages", &stats.Packages},
		{"hero_carousel", &stats.CarouselItems},
		{"contact_inquiries", &stats.Inquiries},
	}
	for _, c := range counts {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest); err != nil {
			return models.DashboardStats{}, err
		}
	}

	if size, err := s.store.DirSize(); err == nil {
		stats.UploadsBytes = size
	} else {
		log.Warn().Err(err).Msg("Failed to measure uploads directory")
	}

	if usage, err := disk.Usage(s.store.BaseDir()); err == nil {
		stats.DiskTotalBytes = usage.Total
		stats.DiskUsedPercent = usage.UsedPercent
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemUsedPercent = vm.UsedPercent
	}
	if uptime, err := host.Uptime(); err == nil {
		stats.HostUptimeSecs = uptime
	}

	return stats, nil
}
