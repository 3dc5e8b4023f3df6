package fintrack

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the import/export surface: CSV for spreadsheet
// consumers, and a jsonpath-driven importer for backups produced by other
// tracker apps.

// ExportOccurrencesCSV writes occurrences to w as CSV, one row per
// occurrence, in the order given (the materializer emits newest first).
func ExportOccurrencesCSV(w io.Writer, occurrences []Occurrence) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "source", "label", "date", "amount", "currency"}); err != nil {
		return err
	}
	for _, occ := range occurrences {
		row := []string{
			occ.ID(),
			occ.SourceID,
			occ.Label,
			occ.Date.String(),
			occ.Amount.Decimal().String(),
			occ.Amount.Currency(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportMemberTotalsCSV writes aggregated member shares to w as CSV.
func ExportMemberTotalsCSV(w io.Writer, totals []MemberTotal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"member", "name", "total", "currency"}); err != nil {
		return err
	}
	for _, t := range totals {
		row := []string{t.MemberID, t.Name, t.Total.Decimal().String(), t.Total.Currency()}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportSpec maps one record kind out of a foreign JSON backup. Records is a
// jsonpath expression selecting an array of objects; the field expressions
// are object keys within each selected record.
type ImportSpec struct {
	Records     string // e.g. "$.subscriptions[*]"
	IDField     string
	NameField   string
	AmountField string
	StartField  string
	Currency    string // backups rarely carry one; caller supplies it
}

// ImportSubscriptions extracts subscription records from a foreign JSON
// backup according to the import spec and adds them to the tracker. Intervals,
// overrides and notice periods are not portable across apps, so imported
// subscriptions default to a monthly cycle; users adjust afterwards.
func (t *Tracker) ImportSubscriptions(r io.Reader, spec ImportSpec) (int, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("cannot parse backup: %w", err)
	}

	jval, err := jsonpath.Get(spec.Records, jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot select records with %q: %w", spec.Records, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer; normalize to a list.
		jlist = []any{jval}
	}

	count := 0
	for i, jrec := range jlist {
		rec, ok := jrec.(map[string]any)
		if !ok {
			return count, fmt.Errorf("record %d selected by %q is not an object", i, spec.Records)
		}
		id := jstring(rec, spec.IDField)
		if id == "" {
			id = fmt.Sprintf("import-%d", i)
		}
		amount, err := jnumber(rec, spec.AmountField)
		if err != nil {
			return count, fmt.Errorf("record %d: %w", i, err)
		}
		start, err := ParseDate(jstring(rec, spec.StartField))
		if err != nil {
			return count, fmt.Errorf("record %d: %w", i, err)
		}
		sub := Subscription{
			ID:       id,
			Name:     jstring(rec, spec.NameField),
			Amount:   M(amount, spec.Currency),
			Start:    start,
			Interval: BillMonthly,
		}
		if err := t.AddSubscription(sub); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func jstring(rec map[string]any, field string) string {
	s, _ := rec[field].(string)
	return s
}

func jnumber(rec map[string]any, field string) (float64, error) {
	switch v := rec[field].(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q is not a number: %q", field, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q is not a number: %v", field, v)
	}
}
