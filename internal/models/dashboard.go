package models

// DashboardStats summarizes registrations and enrollments.
// ByStrand is keyed by strand then grade level and is zero-filled for every
// known strand and grade.
type DashboardStats struct {
	Registered int                       `json:"registered"`
	Enrolled   int                       `json:"enrolled"`
	Unenrolled int                       `json:"unenrolled"`
	ByGrade    map[string]int            `json:"by_grade"`
	ByStrand   map[string]map[string]int `json:"by_strand"`
}

// NewDashboardStats returns stats with every grade and strand present at zero
func NewDashboardStats() *DashboardStats {
	stats := &DashboardStats{
		ByGrade:  make(map[string]int),
		ByStrand: make(map[string]map[string]int),
	}
	for _, grade := range GradeLevels() {
		stats.ByGrade[grade] = 0
	}
	for _, strand := range Strands() {
		stats.ByStrand[strand] = make(map[string]int)
		for _, grade := range GradeLevels() {
			stats.ByStrand[strand][grade] = 0
		}
	}
	return stats
}
