package domain

// Energy densities in kcal per gram, the fixed constants used to cross-check
// a label's declared calories against its declared macros.
const (
	KcalPerGramFat     = 9.0
	KcalPerGramCarb    = 4.0
	KcalPerGramProtein = 4.0
)

// ConsistencyBand classifies how far a label's declared calories drift from
// the calories implied by its macros.
type ConsistencyBand string

const (
	// BandOK means the declared and macro-derived calories agree within 5%
	BandOK ConsistencyBand = "ok"

	// BandDefault means a moderate discrepancy (5% to 15%)
	BandDefault ConsistencyBand = "default"

	// BandWarn means a large discrepancy (15% or more)
	BandWarn ConsistencyBand = "warn"
)

// PortionInput holds the per-100g values from a nutrition label plus the
// portion the user wants analyzed
type PortionInput struct {
	CaloriesPer100  float64 `json:"caloriesPer100"`
	FatPer100       float64 `json:"fatPer100"`     // grams
	CarbPer100      float64 `json:"carbPer100"`    // grams
	ProteinPer100   float64 `json:"proteinPer100"` // grams
	GramsPerServing float64 `json:"gramsPerServing"`
	ServingCount    float64 `json:"servingCount"`
}

// DefaultPortionInput returns the fallback input used whenever no persisted
// snapshot is available or a stored record cannot be decoded.
func DefaultPortionInput() PortionInput {
	return PortionInput{
		CaloriesPer100:  250,
		FatPer100:       10,
		CarbPer100:      30,
		ProteinPer100:   12,
		GramsPerServing: 100,
		ServingCount:    1,
	}
}

// MacroCalories holds the calorie contribution of each macronutrient for the
// chosen portion
type MacroCalories struct {
	Fat     float64 `json:"fat"`
	Carb    float64 `json:"carb"`
	Protein float64 `json:"protein"`
}

// MacroPercent holds each macronutrient's share of total macro calories,
// in percent
type MacroPercent struct {
	Fat     float64 `json:"fat"`
	Carb    float64 `json:"carb"`
	Protein float64 `json:"protein"`
}

// DerivedNutrition is the complete computed breakdown for a portion. It is a
// pure projection of PortionInput — no identity, no lifecycle — and is
// recomputed from scratch on every input change.
type DerivedNutrition struct {
	TotalGrams  float64 `json:"totalGrams"`
	ScaleFactor float64 `json:"scaleFactor"`

	FatGrams     float64 `json:"fatGrams"`
	CarbGrams    float64 `json:"carbGrams"`
	ProteinGrams float64 `json:"proteinGrams"`

	// LabeledCalories scales the label's declared kcal to the portion;
	// CaloriesFromMacros is the same portion recomputed from the macros.
	LabeledCalories          float64 `json:"labeledCalories"`
	CaloriesFromMacrosPer100 float64 `json:"caloriesFromMacrosPer100"`
	CaloriesFromMacros       float64 `json:"caloriesFromMacros"`

	// Consistency figures are computed at the per-100g basis so they are
	// independent of portion size.
	ConsistencyAbsDiff float64         `json:"consistencyAbsDiff"`
	ConsistencyPctDiff float64         `json:"consistencyPctDiff"`
	ConsistencyBand    ConsistencyBand `json:"consistencyBand"`

	MacroCalories     MacroCalories `json:"macroCalories"`
	MacroCalorieTotal float64       `json:"macroCalorieTotal"`
	MacroPercent      MacroPercent  `json:"macroPercent"`
}
