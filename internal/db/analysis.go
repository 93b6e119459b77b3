package db

import "fmt"

// AnalysisRow is one row of the pavement_analysis view: a condition reading
// joined to its segment with the segment's maintenance rollup.
type AnalysisRow struct {
	SegmentID            string  `json:"segment_id"`
	RoadType             string  `json:"road_type"`
	Lanes                int     `json:"lanes"`
	TrafficVolume        int     `json:"traffic_volume"`
	Date                 string  `json:"date"`
	ConditionScore       float64 `json:"condition_score"`
	RoughnessIndex       float64 `json:"roughness_index"`
	CrackingPercent      float64 `json:"cracking_percent"`
	PotholeCount         int     `json:"pothole_count"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	RepairCount          int     `json:"repair_count"`
}

// SegmentAnalysis returns the analysis view rows for one segment, in date
// order.
func (db *DB) SegmentAnalysis(segmentID string) ([]AnalysisRow, error) {
	rows, err := db.Query(`
		SELECT segment_id, road_type, lanes, traffic_volume, date,
		       condition_score, roughness_index, cracking_percent,
		       pothole_count, total_maintenance_cost, repair_count
		FROM pavement_analysis
		WHERE segment_id = ?
		ORDER BY date`, segmentID)
	if err != nil {
		return nil, fmt.Errorf("query pavement_analysis: %w", err)
	}
	defer rows.Close()

	var out []AnalysisRow
	for rows.Next() {
		var r AnalysisRow
		if err := rows.Scan(
			&r.SegmentID, &r.RoadType, &r.Lanes, &r.TrafficVolume, &r.Date,
			&r.ConditionScore, &r.RoughnessIndex, &r.CrackingPercent,
			&r.PotholeCount, &r.TotalMaintenanceCost, &r.RepairCount,
		); err != nil {
			return nil, fmt.Errorf("scan pavement_analysis row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DateScore is the network-wide mean condition score for one reporting date.
type DateScore struct {
	Date  string
	Score float64
}

// AvgScoreByDate returns the mean condition score per reporting period.
func (db *DB) AvgScoreByDate() ([]DateScore, error) {
	rows, err := db.Query(`
		SELECT date, AVG(condition_score)
		FROM pavement_condition
		GROUP BY date
		ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("query average scores: %w", err)
	}
	defer rows.Close()

	var out []DateScore
	for rows.Next() {
		var d DateScore
		if err := rows.Scan(&d.Date, &d.Score); err != nil {
			return nil, fmt.Errorf("scan average score row: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// RepairCost is the total spend for one repair type.
type RepairCost struct {
	RepairType string
	TotalCost  float64
	Count      int
}

// CostByRepairType returns total maintenance spend grouped by repair type,
// highest spend first.
func (db *DB) CostByRepairType() ([]RepairCost, error) {
	rows, err := db.Query(`
		SELECT repair_type, SUM(cost), COUNT(*)
		FROM maintenance_records
		GROUP BY repair_type
		ORDER BY SUM(cost) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query repair costs: %w", err)
	}
	defer rows.Close()

	var out []RepairCost
	for rows.Next() {
		var r RepairCost
		if err := rows.Scan(&r.RepairType, &r.TotalCost, &r.Count); err != nil {
			return nil, fmt.Errorf("scan repair cost row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ConditionScores returns every stored condition score.
func (db *DB) ConditionScores() ([]float64, error) {
	rows, err := db.Query(`SELECT condition_score FROM pavement_condition`)
	if err != nil {
		return nil, fmt.Errorf("query condition scores: %w", err)
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan condition score: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
