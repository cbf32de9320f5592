package cscbench

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// OutputFile is an output together with the file name it was loaded
// under, which need not be the canonical FileName.
type OutputFile struct {
	Name string
	Output
}

// LoadDataDirFiles reads every *.json output file in dir, keeping each
// file's name so callers can rewrite or move the exact source file.
// Subdirectories and other files are skipped.
func LoadDataDirFiles(dir string) ([]OutputFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	res := make([]OutputFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), ".json") {
			continue
		}

		o, err := LoadOutputFile(path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		res = append(res, OutputFile{Name: e.Name(), Output: o})
	}
	return res, nil
}

// LoadDataDir reads every *.json output file in dir. Subdirectories and
// other files are skipped.
func LoadDataDir(dir string) ([]Output, error) {
	files, err := LoadDataDirFiles(dir)
	if err != nil {
		return nil, err
	}

	res := make([]Output, 0, len(files))
	for _, f := range files {
		res = append(res, f.Output)
	}
	return res, nil
}

// LoadOutputFile reads a single output file.
func LoadOutputFile(file string) (Output, error) {
	f, err := os.Open(file)
	if err != nil {
		return Output{}, err
	}
	defer f.Close()

	var o Output
	if err := json.NewDecoder(f).Decode(&o); err != nil {
		return Output{}, fmt.Errorf("decode %s: %w", file, err)
	}
	return o, nil
}

// WriteJSONFile writes data as JSON to outputFile, creating or truncating it.
func WriteJSONFile(outputFile string, data interface{}) error {
	out, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	return enc.Encode(data)
}

// FileName is the canonical data-dir name for an output.
func FileName(date time.Time, label string) string {
	return date.Format(dateLayout) + "_" + label + ".json"
}

// Time parses the output's date.
func (o Output) Time() (time.Time, error) {
	return time.Parse(dateLayout, o.Date)
}

// SortByDate orders outputs oldest first. Outputs with unparseable dates
// sort before everything else.
func SortByDate(outputs []Output) {
	sort.SliceStable(outputs, func(i, j int) bool {
		ti, _ := outputs[i].Time()
		tj, _ := outputs[j].Time()
		return ti.Before(tj)
	})
}

// Merge adds src series missing from dst, matching on (test, variant,
// key count). It returns a description of every duplicate it skipped.
func Merge(dst *Output, src Output) []string {
	var skipped []string
	for _, s := range src.Results {
		cfg := Config{Test: s.Test, KeyCount: s.KeyCount}
		if dst.Series(cfg, s.Variant) != nil {
			skipped = append(skipped,
				fmt.Sprintf("%s/%d/%s in %s - %s", s.Test, s.KeyCount, s.Variant, src.Date, src.Label))
			continue
		}
		dst.Results = append(dst.Results, s)
	}
	return skipped
}
