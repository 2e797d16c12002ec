package screens

import "strings"

type FilterOptions struct {
    Classes   []string
    FreeWords string
    MinWidth  int
    MinHeight int
}

func Filter(presets []Preset, opt FilterOptions) []Preset {
    var out []Preset
    for _, p := range presets {
        if len(opt.Classes) > 0 {
            matched := false
            for _, c := range opt.Classes {
                if strings.EqualFold(p.Class, c) {
                    matched = true
                    break
                }
            }
            if !matched {
                continue
            }
        }
        if p.Width < opt.MinWidth || p.Height < opt.MinHeight {
            continue
        }
        if opt.FreeWords != "" {
            ok := true
            for _, k := range strings.Fields(strings.ToLower(opt.FreeWords)) {
                if !strings.Contains(strings.ToLower(p.Name), k) && !strings.Contains(p.Value(), k) {
                    ok = false
                    break
                }
            }
            if !ok {
                continue
            }
        }
        out = append(out, p)
    }
    return out
}
