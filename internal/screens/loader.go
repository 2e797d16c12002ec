package screens

import (
    "encoding/csv"
    "fmt"
    "os"
    "path/filepath"
    "strconv"
    "strings"
)

// LoadPresetsFromDataDir loads screen presets from a data directory (best-effort).
// It reads screens.csv and the optional custom_screens.csv.
func LoadPresetsFromDataDir(dataDir string) ([]Preset, error) {
    files := []string{
        filepath.Join(dataDir, "screens.csv"),
        filepath.Join(dataDir, "custom_screens.csv"),
    }

    var all []Preset
    var found bool
    for _, f := range files {
        if _, err := os.Stat(f); err != nil {
            // skip missing files
            continue
        }
        found = true
        ps, err := loadSingleCSV(f)
        if err != nil {
            return nil, fmt.Errorf("loading %s: %w", f, err)
        }
        all = append(all, ps...)
    }
    if !found {
        return nil, fmt.Errorf("no screen CSVs found in %s", dataDir)
    }
    return all, nil
}

func loadSingleCSV(path string) ([]Preset, error) {
    fp, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer fp.Close()

    r := csv.NewReader(fp)
    r.FieldsPerRecord = -1
    rows, err := r.ReadAll()
    if err != nil {
        return nil, err
    }
    if len(rows) < 1 {
        return nil, fmt.Errorf("csv %s has no header", path)
    }
    cols := map[string]int{}
    for i, h := range rows[0] {
        cols[strings.ToLower(strings.TrimSpace(h))] = i
    }

    get := func(row []string, name string) string {
        if idx, ok := cols[name]; ok && idx < len(row) {
            return strings.TrimSpace(row[idx])
        }
        return ""
    }

    out := []Preset{}
    for i, row := range rows[1:] {
        p := Preset{
            Name:  get(row, "name"),
            Class: strings.ToLower(get(row, "class")),
        }
        w, werr := strconv.Atoi(get(row, "width"))
        h, herr := strconv.Atoi(get(row, "height"))
        if werr != nil || herr != nil || w <= 0 || h <= 0 {
            return nil, fmt.Errorf("csv %s row %d: bad size %q x %q", path, i+2, get(row, "width"), get(row, "height"))
        }
        p.Width, p.Height = w, h
        if p.Class == "" {
            // infer from orientation
            if w >= h {
                p.Class = ClassLaptop
            } else {
                p.Class = ClassMobile
            }
        }
        if p.Name == "" {
            p.Name = p.Value()
        }
        out = append(out, p)
    }
    return out, nil
}
