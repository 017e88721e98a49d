package readiness

import (
	"fmt"
	"math"
	"strings"
)

type Category string

const (
	CategoryCompound  Category = "compound"
	CategoryIsolation Category = "isolation"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryCompound, CategoryIsolation:
		return true
	default:
		return false
	}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid exercise category: %q", s)
	}
	return c, nil
}

// Reasons attached to a recommendation. This is the complete vocabulary.
const (
	ReasonStartingLoad      = "starting load suggestion"
	ReasonExcellentRecovery = "excellent recovery, +5%"
	ReasonGoodRecovery      = "good recovery, slight increase"
	ReasonLowRecovery       = "low recovery, −10%"
	ReasonNormalRecovery    = "normal recovery, maintain"
	ReasonNoRecoveryData    = "standard increase (no recovery data), 2.5%"
	ReasonInvalidUser       = "invalid user"
)

const (
	startingLoadCompound  = 20
	startingLoadIsolation = 10
)

// load multipliers in per mille; identical for compound and isolation exercises
const (
	permilleExcellent = 1050
	permilleGood      = 1025
	permilleLow       = 900
)

// PolicyInput holds everything the load adjustment decision looks at.
type PolicyInput struct {
	CurrentLoad  float64
	Category     Category
	Readiness    float64 // R, readiness score on the 0-10 scale
	Soreness     int
	RecentAvgRPE *float64
	HasHistory   bool
}

type Decision struct {
	SuggestedLoad int
	Reason        string
}

// AdjustLoad evaluates the load adjustment table; the first matching rule wins.
func AdjustLoad(in PolicyInput) Decision {
	load := math.Max(in.CurrentLoad, 0)

	switch {
	case !in.HasHistory:
		return Decision{SuggestedLoad: StartingLoad(in.Category), Reason: ReasonStartingLoad}
	case in.Readiness >= 8 && in.RecentAvgRPE != nil && *in.RecentAvgRPE < 7:
		return Decision{SuggestedLoad: applyPermille(load, permilleExcellent), Reason: ReasonExcellentRecovery}
	case in.Readiness >= 7:
		return Decision{SuggestedLoad: applyPermille(load, permilleGood), Reason: ReasonGoodRecovery}
	case in.Readiness <= 4 || in.Soreness >= 7:
		return Decision{SuggestedLoad: applyPermille(load, permilleLow), Reason: ReasonLowRecovery}
	default:
		return Decision{SuggestedLoad: RoundLoad(load), Reason: ReasonNormalRecovery}
	}
}

// StartingLoad is the suggested load for an exercise without any load history.
func StartingLoad(c Category) int {
	if c == CategoryCompound {
		return startingLoadCompound
	}
	return startingLoadIsolation
}

func applyPermille(load float64, permille int) int {
	return RoundLoad(load * float64(permille) / 1000)
}

// MaxLoad caps every suggested load so it always fits an int on every platform.
const MaxLoad = math.MaxInt32

// RoundLoad rounds to the nearest integer, halves up, within [0, MaxLoad].
// The epsilon absorbs float noise left by the multiplication.
func RoundLoad(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	rounded := math.Floor(v + 0.5 + 1e-9)
	if rounded >= MaxLoad {
		return MaxLoad
	}
	return int(rounded)
}
