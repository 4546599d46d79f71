package models

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	Weddings      int `json:"weddings"`
	Packages      int `json:"packages"`
	CarouselItems int `json:"carouselItems"`
	Inquiries     int `json:"inquiries"`

	UploadsBytes    uint64  `json:"uploadsBytes"`
	DiskTotalBytes  uint64  `json:"diskTotalBytes"`
	DiskUsedPercent float64 `json:"diskUsedPercent"`
	MemUsedPercent  float64 `json:"memUsedPercent"`
	HostUptimeSecs  uint64  `json:"hostUptimeSecs"`
}
