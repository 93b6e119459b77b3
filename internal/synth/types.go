// Package synth generates the synthetic pavement-monitoring datasets: a road
// network, a quarterly pavement-condition history, rule-triggered maintenance
// records, and a monthly traffic series. The four stages run in order and all
// draws come from a single seeded source, so a fixed seed reproduces the same
// tables byte for byte.
package synth

import "time"

// Road categories.
const (
	CategoryHighway   = "Highway"
	CategoryArterial  = "Arterial"
	CategoryCollector = "Collector"
	CategoryLocal     = "Local"
)

// Repair types, in trigger-priority order.
const (
	RepairResurfacing  = "resurfacing"
	RepairPotholePatch = "pothole_patch"
	RepairCrackSealing = "crack_sealing"
	RepairPreventive   = "preventive_maintenance"
)

// Road is an immutable top-level road record. Segment attributes that do not
// vary along the road (category, lanes, traffic baseline) live here.
type Road struct {
	ID            string
	Category      string
	Lanes         int
	Latitude      float64
	Longitude     float64
	TrafficVolume int // baseline vehicles per day
}

// Segment is a short subdivision of a Road, the atomic unit of condition and
// maintenance tracking. The ID embeds the parent road ID as a prefix.
type Segment struct {
	ID          string
	RoadID      string
	Latitude    float64
	Longitude   float64
	LengthMiles float64
}

// Network is the static road topology produced by the first stage.
type Network struct {
	Roads    []Road
	Segments []Segment

	roadByID map[string]*Road
}

// Road returns the parent road for a road ID, or nil if unknown.
func (n *Network) Road(roadID string) *Road {
	return n.roadByID[roadID]
}

// TotalMiles sums segment lengths across the network.
func (n *Network) TotalMiles() float64 {
	var total float64
	for _, s := range n.Segments {
		total += s.LengthMiles
	}
	return total
}

// ConditionObservation is one per-segment reading for a reporting period.
// Road attributes are carried denormalised so each row stands alone in the
// output table.
type ConditionObservation struct {
	RoadID           string
	SegmentID        string
	Date             time.Time
	Lanes            int
	ConditionScore   float64 // 0..100, 100 = perfect
	RoughnessIndex   float64
	CrackingPercent  float64
	PotholeCount     int
	Precipitation    float64 // inches
	FreezeThawCycles int
	TemperatureAvg   float64
	TrafficVolume    int
	RoadType         string
	Latitude         float64
	Longitude        float64
}

// MaintenanceEvent is a repair record triggered by the condition history.
type MaintenanceEvent struct {
	ID                 string // M%06d, strictly increasing across the pass
	RoadID             string
	SegmentID          string
	Date               time.Time
	RepairType         string
	Cost               int
	EffectivenessScore float64
	Contractor         string
	WeatherDelayDays   int
	LanesAffected      int
	ConditionBefore    float64
	TrafficVolume      int
}

// TrafficObservation is one monthly traffic reading for a segment.
type TrafficObservation struct {
	RoadID          string
	SegmentID       string
	Year            int
	Month           int
	AvgDailyTraffic int
	PeakHourFactor  float64
	TruckPercentage float64
}

// Params controls a generation run. Use DefaultParams as the base and
// override fields as needed; the zero value is not usable.
type Params struct {
	Seed uint64

	RoadCount       int
	SegmentMean     float64 // Poisson mean segments per road
	CenterLatitude  float64
	CenterLongitude float64

	StartYear int
	EndYear   int
}

// DefaultParams returns the standard generation parameters: a 200-road
// network around the continental US centroid, observed 2020 through 2024.
func DefaultParams() Params {
	return Params{
		Seed:            42,
		RoadCount:       200,
		SegmentMean:     40,
		CenterLatitude:  39.8283,
		CenterLongitude: -98.5795,
		StartYear:       2020,
		EndYear:         2024,
	}
}
