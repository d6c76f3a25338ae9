package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TipLibrary holds the static lookup tables behind the recommendations
// section: domain code names, grade tip sets, generic tips, congratulatory
// tips and grade colors. Defaults are compiled in; a YAML file can override
// them for districts with their own phrasing.
type TipLibrary struct {
	DomainNames map[string]string   `yaml:"domain_names"`
	GradeTips   map[string][]string `yaml:"grade_tips"`
	GenericTips []string            `yaml:"generic_tips"`
	CongratTips []string            `yaml:"congrat_tips"`
	GradeColors map[string]string   `yaml:"grade_colors"`
}

const (
	defaultGrade = "6"
	// Bar color when the grade has no entry in GradeColors.
	fallbackGradeColor = "#3F51B5"
)

// DefaultTipLibrary returns the built-in tables.
func DefaultTipLibrary() *TipLibrary {
	return &TipLibrary{
		DomainNames: map[string]string{
			"EE":  "Expressions and Equations",
			"NS":  "The Number System",
			"G":   "Geometry",
			"RP":  "Ratios and Proportional Relationships",
			"OA":  "Operations and Algebraic Thinking",
			"NF":  "Number and Operations - Fractions",
			"MD":  "Measurement and Data",
			"NBT": "Number and Operations in Base Ten",
			"SP":  "Statistics and Probability",
			"F":   "Functions",
		},
		GradeTips: map[string][]string{
			"3": {
				"Practice multiplication and division facts daily with flash cards.",
				"Draw pictures or use objects to act out word problems.",
				"Break measurement problems into smaller steps you can check.",
			},
			"4": {
				"Work through multi-digit multiplication one place value at a time.",
				"Use fraction strips or number lines to compare fractions.",
				"Re-read word problems and underline what the question asks for.",
			},
			"5": {
				"Practice adding and subtracting fractions with unlike denominators.",
				"Estimate the answer first, then check your exact work against it.",
				"Plot points on a coordinate grid to make patterns visible.",
			},
			"6": {
				"Rewrite word problems as expressions before solving them.",
				"Practice working with ratios using real examples like recipes.",
				"Check negative-number arithmetic by placing values on a number line.",
			},
			"7": {
				"Set up proportions carefully and label both sides with units.",
				"Practice combining like terms before solving multi-step equations.",
				"Work probability problems by listing the full sample space first.",
			},
			"8": {
				"Graph linear equations by hand to connect slope with steepness.",
				"Practice solving systems of equations with both substitution and elimination.",
				"Review the Pythagorean theorem with right triangles drawn to scale.",
			},
		},
		GenericTips: []string{
			"Review your incorrect answers and rework each problem from scratch.",
			"Study in short, focused sessions rather than one long sitting.",
			"Explain your solution steps out loud to a parent or classmate.",
			"Keep a notebook of problem types that slowed you down.",
		},
		CongratTips: []string{
			"Great work! You scored well across every domain.",
			"Keep your skills sharp with regular mixed-topic practice.",
			"Try some challenge problems from the next grade level.",
		},
		GradeColors: map[string]string{
			"3": "#4CAF50",
			"4": "#2196F3",
			"5": "#9C27B0",
			"6": "#FF9800",
			"7": "#009688",
			"8": "#E91E63",
		},
	}
}

// LoadTipLibrary reads overrides from a YAML file on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadTipLibrary(path string) (*TipLibrary, error) {
	lib := DefaultTipLibrary()
	if path == "" {
		return lib, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tips file %s: %w", path, err)
	}
	var override TipLibrary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse tips file %s: %w", path, err)
	}
	if len(override.DomainNames) > 0 {
		lib.DomainNames = override.DomainNames
	}
	if len(override.GradeTips) > 0 {
		lib.GradeTips = override.GradeTips
	}
	if len(override.GenericTips) > 0 {
		lib.GenericTips = override.GenericTips
	}
	if len(override.CongratTips) > 0 {
		lib.CongratTips = override.CongratTips
	}
	if len(override.GradeColors) > 0 {
		lib.GradeColors = override.GradeColors
	}
	return lib, nil
}

// GradeColor returns the chart color for a grade, falling back to a neutral
// color for unknown grades.
func (lib *TipLibrary) GradeColor(grade string) string {
	if color, ok := lib.GradeColors[grade]; ok {
		return color
	}
	return fallbackGradeColor
}

// tipsForGrade returns the grade tip set, defaulting to grade 6 when the
// supplied grade key is unknown.
func (lib *TipLibrary) tipsForGrade(grade string) []string {
	if tips, ok := lib.GradeTips[grade]; ok {
		return tips
	}
	return lib.GradeTips[defaultGrade]
}
