package chart

import (
	"fmt"
	"sort"
	"strings"
)

// Theme is the chart's styling. Colours are CSS colour strings.
type Theme struct {
	Name              string
	Line              string
	GradientTop       string
	GradientBottom    string
	Grid              string
	Tick              string
	TooltipBackground string
}

var Themes = map[string]Theme{
	"light": {
		Name:              "light",
		Line:              "#0066ff",
		GradientTop:       "rgba(0, 102, 255, 0.2)",
		GradientBottom:    "rgba(0, 102, 255, 0.0)",
		Grid:              "rgba(0, 0, 0, 0.05)",
		Tick:              "#999",
		TooltipBackground: "rgba(0, 0, 0, 0.8)",
	},
	"dark": {
		Name:              "dark",
		Line:              "#4d94ff",
		GradientTop:       "rgba(77, 148, 255, 0.35)",
		GradientBottom:    "rgba(77, 148, 255, 0.0)",
		Grid:              "rgba(255, 255, 255, 0.08)",
		Tick:              "#8a8f98",
		TooltipBackground: "rgba(255, 255, 255, 0.9)",
	},
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "light"

// ThemeByName looks a theme up case-insensitively.
func ThemeByName(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultTheme
	}
	th, ok := Themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("unknown chart theme %q (allowed: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return th, nil
}

func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for n := range Themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
