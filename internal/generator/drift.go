package generator

import (
	"fmt"
	"math"
)

// DriftThresholds are the fixed limits the drift classifier checks against.
type DriftThresholds struct {
	Speed     float64 // seconds
	LengthMin int     // characters
	LengthMax int     // characters
	PSI       float64
}

// DriftAssessment is the outcome of classifying one generated story.
type DriftAssessment struct {
	PSI        float64
	Reasons    []string
	IsDrifting bool
}

// ComputePSI returns the Performance-Suitability Index:
//
//	psi = 0.3*speed + 0.4*flesch + 0.3*(length/1000)
//
// rounded to 2 decimals. The blend sums unlike units (seconds, Flesch
// points, kilocharacters); the formula is preserved exactly for
// compatibility with stored history and must only be changed here.
func ComputePSI(speed, fleschScore float64, storyLength int) float64 {
	const (
		speedWeight  = 0.3
		fleschWeight = 0.4
		lengthWeight = 0.3
	)
	psi := speedWeight*speed + fleschWeight*fleschScore + lengthWeight*(float64(storyLength)/1000)
	return round2(psi)
}

// ClassifyDrift evaluates the four drift axes independently and collects
// every applicable reason, in fixed order: speed, readability, length, PSI.
func ClassifyDrift(speed, fleschScore float64, storyLength int, band Band, t DriftThresholds) DriftAssessment {
	psi := ComputePSI(speed, fleschScore, storyLength)

	var reasons []string
	if speed > t.Speed {
		reasons = append(reasons, fmt.Sprintf("Speed drift (speed=%vs > %vs)", speed, t.Speed))
	}
	if !band.Contains(fleschScore) {
		reasons = append(reasons, fmt.Sprintf("Flesch drift (score=%v not in %d-%d)", fleschScore, band.Min, band.Max))
	}
	if storyLength < t.LengthMin || storyLength > t.LengthMax {
		reasons = append(reasons, fmt.Sprintf("Length drift (length=%d not in %d-%d)", storyLength, t.LengthMin, t.LengthMax))
	}
	if psi > t.PSI {
		reasons = append(reasons, fmt.Sprintf("Performance & Suitability Index drift (psi=%v > %v)", psi, t.PSI))
	}

	return DriftAssessment{
		PSI:        psi,
		Reasons:    reasons,
		IsDrifting: len(reasons) > 0,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
