// Package glyph renders the growth stages of a study tree for the terminal.
package glyph

import "fmt"

const (
	escape    = "\x1b"
	resetCode = 0
	boldCode  = 1
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

var stageNames = []string{
	"Seed Sprout",
	"Small Plant",
	"Sapling",
	"Young Tree",
	"Mature Tree",
}

// StageName returns the display name for a growth stage (1..5).
func StageName(stage int) string {
	if stage < 1 {
		stage = 1
	}
	if stage > len(stageNames) {
		stage = len(stageNames)
	}
	return stageNames[stage-1]
}

// Rows are a uniform 9 runes so the block does not shift between stages.
var stageArt = [][]string{
	{
		`         `,
		`         `,
		`   \|/   `,
		`    |    `,
	},
	{
		`         `,
		`    o    `,
		`   \|/   `,
		`    |    `,
	},
	{
		`   (o)   `,
		`  (ooo)  `,
		`    |    `,
		`    |    `,
	},
	{
		`  (ooo)  `,
		` (ooooo) `,
		`    |    `,
		`    |    `,
	},
	{
		` (ooooo) `,
		`(ooooooo)`,
		`  (ooo)  `,
		`    |    `,
	},
}

// Tree returns the art rows for a growth stage (1..5).
func Tree(stage int) []string {
	if stage < 1 {
		stage = 1
	}
	if stage > len(stageArt) {
		stage = len(stageArt)
	}
	return stageArt[stage-1]
}

// TypeBadge returns the marker shown next to a tree of the given rarity.
func TypeBadge(treeType string) string {
	switch treeType {
	case "golden":
		return "✦"
	case "crystal":
		return "❄"
	case "mythic":
		return "✵"
	default:
		return "•"
	}
}
