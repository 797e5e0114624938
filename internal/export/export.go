// Package export serializes solved snapshots and trajectories.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/kinsolve/internal/kinematics"
)

// VarData is the JSON form of one variable.
type VarData struct {
	Value   float64 `json:"value"`
	Known   bool    `json:"known"`
	UserSet bool    `json:"user_set"`
	Rule    string  `json:"rule,omitempty"`
}

// SnapshotData is the JSON form of a solved state.
type SnapshotData struct {
	X map[string]VarData `json:"x"`
	Y map[string]VarData `json:"y"`

	LaunchSpeed VarData `json:"launch_speed"`
	LaunchAngle VarData `json:"launch_angle"`
	FinalSpeed  VarData `json:"final_speed"`

	MaxHeight    *float64 `json:"max_height,omitempty"`
	TimeOfFlight *float64 `json:"time_of_flight,omitempty"`
	Range        *float64 `json:"range,omitempty"`
}

func varData(v kinematics.VarView) VarData {
	return VarData{Value: v.Value, Known: v.Known, UserSet: v.UserSet, Rule: v.Rule}
}

func derivedData(d kinematics.DerivedView) *float64 {
	if !d.Known {
		return nil
	}
	v := d.Value
	return &v
}

// Build converts a snapshot into its serializable form.
func Build(snap kinematics.Snapshot) SnapshotData {
	data := SnapshotData{
		X:            make(map[string]VarData, kinematics.NumRoles),
		Y:            make(map[string]VarData, kinematics.NumRoles),
		LaunchSpeed:  varData(snap.LaunchSpeed),
		LaunchAngle:  varData(snap.LaunchAngle),
		FinalSpeed:   varData(snap.FinalSpeed),
		MaxHeight:    derivedData(snap.MaxHeight),
		TimeOfFlight: derivedData(snap.TimeOfFlight),
		Range:        derivedData(snap.Range),
	}
	for r := kinematics.Role(0); r < kinematics.NumRoles; r++ {
		data.X[r.String()] = varData(snap.X[r])
		data.Y[r.String()] = varData(snap.Y[r])
	}
	return data
}

// JSON writes an indented snapshot document.
func JSON(w io.Writer, snap kinematics.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(snap))
}

// JSONFile writes the snapshot document to a file.
func JSONFile(path string, snap kinematics.Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return JSON(file, snap)
}

// TrajectoryCSV writes sampled trajectory points as t,x,y rows.
func TrajectoryCSV(w io.Writer, pts []kinematics.Point) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"t", "x", "y"}); err != nil {
		return err
	}
	for _, p := range pts {
		row := []string{
			strconv.FormatFloat(p.T, 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
