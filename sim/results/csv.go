package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvColumns is the on-disk column order. Column names match the record
// schema of the simulation table.
var csvColumns = []string{
	"replication",
	"asset_id",
	"phase",
	"phase_idx",
	"phase_duration",
	"phase_success_prob",
	"phase_start_time",
	"phase_end_time",
	"phase_outcome",
	"asset_init_time",
}

// WriteCSV writes the record table with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range records {
		row := []string{
			strconv.Itoa(r.Replication),
			strconv.Itoa(r.AssetID),
			r.Phase,
			strconv.Itoa(r.PhaseIndex),
			formatFloat(r.PhaseDuration),
			formatFloat(r.PhaseSuccessProb),
			formatFloat(r.PhaseStart),
			formatFloat(r.PhaseEnd),
			string(r.Outcome),
			formatFloat(r.AssetArrival),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the record table to a file, creating or truncating it.
func WriteCSVFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses a record table previously written by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	if len(header) != len(csvColumns) {
		return nil, fmt.Errorf("CSV header has %d columns, expected %d", len(header), len(csvColumns))
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	if len(row) != len(csvColumns) {
		return Record{}, fmt.Errorf("CSV row has %d columns, expected %d", len(row), len(csvColumns))
	}
	var (
		rec  Record
		err  error
		errf = func(col string, e error) error { return fmt.Errorf("parsing %s: %w", col, e) }
	)
	if rec.Replication, err = strconv.Atoi(row[0]); err != nil {
		return Record{}, errf("replication", err)
	}
	if rec.AssetID, err = strconv.Atoi(row[1]); err != nil {
		return Record{}, errf("asset_id", err)
	}
	rec.Phase = row[2]
	if rec.PhaseIndex, err = strconv.Atoi(row[3]); err != nil {
		return Record{}, errf("phase_idx", err)
	}
	if rec.PhaseDuration, err = strconv.ParseFloat(row[4], 64); err != nil {
		return Record{}, errf("phase_duration", err)
	}
	if rec.PhaseSuccessProb, err = strconv.ParseFloat(row[5], 64); err != nil {
		return Record{}, errf("phase_success_prob", err)
	}
	if rec.PhaseStart, err = strconv.ParseFloat(row[6], 64); err != nil {
		return Record{}, errf("phase_start_time", err)
	}
	if rec.PhaseEnd, err = strconv.ParseFloat(row[7], 64); err != nil {
		return Record{}, errf("phase_end_time", err)
	}
	switch Outcome(row[8]) {
	case OutcomeSuccess, OutcomeFailure:
		rec.Outcome = Outcome(row[8])
	default:
		return Record{}, fmt.Errorf("unknown phase_outcome %q", row[8])
	}
	if rec.AssetArrival, err = strconv.ParseFloat(row[9], 64); err != nil {
		return Record{}, errf("asset_init_time", err)
	}
	return rec, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
