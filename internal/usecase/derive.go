package usecase

import (
	"math"

	"github.com/portionwise/backend/internal/domain"
)

// Consistency band thresholds (percent). Both are exclusive lower bounds of
// the next band: 4.9% is still "ok", 5.0% is "default"; 14.9% is still
// "default", 15.0% is "warn".
const (
	bandDefaultThreshold = 5.0
	bandWarnThreshold    = 15.0
)

// NormalizeInput coerces a raw PortionInput into the model's valid domain.
// Macro and calorie fields that are NaN or negative become 0; the portion
// fields (gramsPerServing, servingCount) are pulled up to a minimum of 1
// since a portion of at least one unit is always being analyzed. The model
// places no upper bound on any field.
func NormalizeInput(in domain.PortionInput) domain.PortionInput {
	return domain.PortionInput{
		CaloriesPer100:  clampNonNegative(in.CaloriesPer100),
		FatPer100:       clampNonNegative(in.FatPer100),
		CarbPer100:      clampNonNegative(in.CarbPer100),
		ProteinPer100:   clampNonNegative(in.ProteinPer100),
		GramsPerServing: clampMinOne(in.GramsPerServing),
		ServingCount:    clampMinOne(in.ServingCount),
	}
}

// ComputeDerived transforms a PortionInput into the full derived breakdown.
// It is total and deterministic: every finite input produces a finite
// output, guarded divisions yield 0 rather than NaN or Inf, and nothing is
// read or written outside the arguments.
//
// The input is normalized first, so callers may pass raw values straight
// from a widget or a decoded request body.
func ComputeDerived(raw domain.PortionInput) domain.DerivedNutrition {
	in := NormalizeInput(raw)

	totalGrams := in.GramsPerServing * in.ServingCount
	scale := totalGrams / 100

	fatGrams := in.FatPer100 * scale
	carbGrams := in.CarbPer100 * scale
	proteinGrams := in.ProteinPer100 * scale

	// The consistency check compares declared vs macro-derived calories at
	// the per-100g basis so the percentage is independent of portion size.
	// The portion-level figure is then scaled from the same number rather
	// than recomputed from scaled macros, keeping one source of truth for
	// the energy density constants.
	fromMacrosPer100 := in.FatPer100*domain.KcalPerGramFat +
		in.CarbPer100*domain.KcalPerGramCarb +
		in.ProteinPer100*domain.KcalPerGramProtein

	absDiff := math.Abs(in.CaloriesPer100 - fromMacrosPer100)
	pctDiff := 0.0
	if fromMacrosPer100 != 0 {
		pctDiff = absDiff / fromMacrosPer100 * 100
	}

	macroCalories := domain.MacroCalories{
		Fat:     fatGrams * domain.KcalPerGramFat,
		Carb:    carbGrams * domain.KcalPerGramCarb,
		Protein: proteinGrams * domain.KcalPerGramProtein,
	}
	macroTotal := macroCalories.Fat + macroCalories.Carb + macroCalories.Protein

	macroPercent := domain.MacroPercent{}
	if macroTotal != 0 {
		macroPercent.Fat = macroCalories.Fat / macroTotal * 100
		macroPercent.Carb = macroCalories.Carb / macroTotal * 100
		macroPercent.Protein = macroCalories.Protein / macroTotal * 100
	}

	return domain.DerivedNutrition{
		TotalGrams:               totalGrams,
		ScaleFactor:              scale,
		FatGrams:                 fatGrams,
		CarbGrams:                carbGrams,
		ProteinGrams:             proteinGrams,
		LabeledCalories:          in.CaloriesPer100 * scale,
		CaloriesFromMacrosPer100: fromMacrosPer100,
		CaloriesFromMacros:       fromMacrosPer100 * scale,
		ConsistencyAbsDiff:       absDiff,
		ConsistencyPctDiff:       pctDiff,
		ConsistencyBand:          ClassifyConsistency(pctDiff),
		MacroCalories:            macroCalories,
		MacroCalorieTotal:        macroTotal,
		MacroPercent:             macroPercent,
	}
}

// ClassifyConsistency maps a percentage discrepancy onto its band
func ClassifyConsistency(pctDiff float64) domain.ConsistencyBand {
	switch {
	case pctDiff < bandDefaultThreshold:
		return domain.BandOK
	case pctDiff < bandWarnThreshold:
		return domain.BandDefault
	default:
		return domain.BandWarn
	}
}

// clampNonNegative maps NaN and negative values to 0
func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// clampMinOne maps NaN and anything below 1 to 1
func clampMinOne(v float64) float64 {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return v
}
