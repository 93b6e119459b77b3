package synth

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

const dateLayout = "2006-01-02"

// WriteNetworkCSV writes the road network table, one row per segment with its
// parent road's attributes joined in.
func WriteNetworkCSV(w io.Writer, net *Network) error {
	cw := csv.NewWriter(w)

	header := []string{
		"road_id", "segment_id", "road_type", "lanes",
		"latitude", "longitude", "traffic_volume", "segment_length_miles",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write network header: %w", err)
	}

	for _, seg := range net.Segments {
		road := net.Road(seg.RoadID)
		row := []string{
			road.ID,
			seg.ID,
			road.Category,
			strconv.Itoa(road.Lanes),
			fmt.Sprintf("%.6f", seg.Latitude),
			fmt.Sprintf("%.6f", seg.Longitude),
			strconv.Itoa(road.TrafficVolume),
			fmt.Sprintf("%.6f", seg.LengthMiles),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write network row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteConditionCSV writes the pavement-condition table.
func WriteConditionCSV(w io.Writer, observations []ConditionObservation) error {
	cw := csv.NewWriter(w)

	header := []string{
		"road_id", "segment_id", "date", "lanes", "condition_score",
		"roughness_index", "cracking_percent", "pothole_count", "precipitation",
		"freeze_thaw_cycles", "temperature_avg", "traffic_volume", "road_type",
		"latitude", "longitude",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write condition header: %w", err)
	}

	for _, obs := range observations {
		row := []string{
			obs.RoadID,
			obs.SegmentID,
			obs.Date.Format(dateLayout),
			strconv.Itoa(obs.Lanes),
			fmt.Sprintf("%.1f", obs.ConditionScore),
			fmt.Sprintf("%.1f", obs.RoughnessIndex),
			fmt.Sprintf("%.1f", obs.CrackingPercent),
			strconv.Itoa(obs.PotholeCount),
			fmt.Sprintf("%.2f", obs.Precipitation),
			strconv.Itoa(obs.FreezeThawCycles),
			fmt.Sprintf("%.1f", obs.TemperatureAvg),
			strconv.Itoa(obs.TrafficVolume),
			obs.RoadType,
			fmt.Sprintf("%.6f", obs.Latitude),
			fmt.Sprintf("%.6f", obs.Longitude),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write condition row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMaintenanceCSV writes the maintenance-record table.
func WriteMaintenanceCSV(w io.Writer, events []MaintenanceEvent) error {
	cw := csv.NewWriter(w)

	header := []string{
		"maintenance_id", "road_id", "segment_id", "date", "repair_type",
		"cost", "effectiveness_score", "contractor", "weather_delay_days",
		"lanes_affected", "condition_before", "traffic_volume",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write maintenance header: %w", err)
	}

	for _, ev := range events {
		row := []string{
			ev.ID,
			ev.RoadID,
			ev.SegmentID,
			ev.Date.Format(dateLayout),
			ev.RepairType,
			strconv.Itoa(ev.Cost),
			fmt.Sprintf("%.4f", ev.EffectivenessScore),
			ev.Contractor,
			strconv.Itoa(ev.WeatherDelayDays),
			strconv.Itoa(ev.LanesAffected),
			fmt.Sprintf("%.1f", ev.ConditionBefore),
			strconv.Itoa(ev.TrafficVolume),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write maintenance row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTrafficCSV writes the monthly traffic table.
func WriteTrafficCSV(w io.Writer, observations []TrafficObservation) error {
	cw := csv.NewWriter(w)

	header := []string{
		"road_id", "segment_id", "year", "month",
		"avg_daily_traffic", "peak_hour_factor", "truck_percentage",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write traffic header: %w", err)
	}

	for _, obs := range observations {
		row := []string{
			obs.RoadID,
			obs.SegmentID,
			strconv.Itoa(obs.Year),
			strconv.Itoa(obs.Month),
			strconv.Itoa(obs.AvgDailyTraffic),
			fmt.Sprintf("%.4f", obs.PeakHourFactor),
			fmt.Sprintf("%.4f", obs.TruckPercentage),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write traffic row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
