package config

import "sort"

var Presets = map[string]map[string]Dataset{
	"binary-search": {
		"hit":    {Values: []int{2, 5, 9, 14, 20, 27, 33, 41}, Target: IntPtr(27)},
		"miss":   {Values: []int{2, 5, 9, 14, 20, 27, 33, 41}, Target: IntPtr(30)},
		"edges":  {Values: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, Target: IntPtr(16)},
		"single": {Values: []int{42}, Target: IntPtr(42)},
	},
	"two-pointers": {
		"dupes":    {Values: []int{0, 0, 1, 1, 1, 2, 2, 3, 3, 4}},
		"distinct": {Values: []int{1, 2, 3, 4, 5}},
		"same":     {Values: []int{7, 7, 7, 7, 7, 7}},
	},
	"sliding-window": {
		"revenue": {Values: []int{120, 80, 150, 90, 200, 60, 110}, Window: 3},
		"spikes":  {Values: []int{1, 1, 20, 1, 1, 25, 1, 1}, Window: 2},
		"whole":   {Values: []int{5, 4, 3, 2, 1}, Window: 5},
	},
	"graph": {
		"bfs": {Mode: "bfs", Start: "A"},
		"dfs": {Mode: "dfs", Start: "A"},
		"dag": {
			Mode:  "bfs",
			Start: "extract",
			Graph: map[string][]string{
				"extract":   {"clean", "audit"},
				"clean":     {"join"},
				"audit":     {"report"},
				"join":      {"aggregate"},
				"aggregate": {"report"},
				"report":    {},
			},
		},
	},
	"recursion": {
		"small": {Values: []int{3}},
		"deep":  {Values: []int{8}},
	},
	"heap": {
		"burst": {Values: []int{1, 2, 3, 4, 5, 6, 7}},
		"ties":  {Values: []int{5, 5, 3, 5, 1}},
	},
	"stack-queue": {
		"lag":   {Mode: "queue", ProduceRate: 3, ConsumeRate: 1, Threshold: 4},
		"stack": {Mode: "stack", ProduceRate: 2, ConsumeRate: 1, Threshold: 3},
		"calm":  {Mode: "queue", ProduceRate: 1, ConsumeRate: 1, Threshold: 2},
	},
	"top-k": {
		"wide":  {Workers: 3, Size: 8, K: 5, Seed: 11},
		"tiny":  {Workers: 3, Size: 3, K: 2, Seed: 3},
		"given": {Workers: 3, K: 3, Values: []int{14, 3, 27, 8, 19, 41, 5, 33, 22}},
	},
}

func GetPreset(lesson, preset string) *Dataset {
	lessonPresets, ok := Presets[lesson]
	if !ok {
		return nil
	}
	ds, ok := lessonPresets[preset]
	if !ok {
		return nil
	}
	return &ds
}

func ListPresets(lesson string) []string {
	lessonPresets, ok := Presets[lesson]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(lessonPresets))
	for name := range lessonPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
