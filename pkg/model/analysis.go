package model

// SimulationResult is the output of one lap simulation.
type SimulationResult struct {
	LapTime        string  `json:"lapTime"` // "M:SS.mmm"
	LapTimeSeconds float64 `json:"lapTimeSeconds"`
	StraightTime   float64 `json:"straightTime"` // s
	CornerTime     float64 `json:"cornerTime"`   // s
}

// CircuitAnalysis compares the caller's setup against the track optimum.
type CircuitAnalysis struct {
	TrackName            string               `json:"trackName"`
	QualifyingLapTime    string               `json:"qualifyingLapTime"`
	RaceLapTime          string               `json:"raceLapTime"`
	OptimalConfig        FixedSetup           `json:"optimalConfig"`
	TimeGainQuali        float64              `json:"timeGainQuali"` // s, positive: optimal is faster
	TimeGainRace         float64              `json:"timeGainRace"`  // s
	DownforceRequirement DownforceLevel       `json:"downforceRequirement"`
	TopSpeedEstimate     float64              `json:"topSpeedEstimate"` // km/h
	AvgCornerSpeed       float64              `json:"avgCornerSpeed"`   // km/h
	SetupRecommendations SetupRecommendations `json:"setupRecommendations"`
	CriticalCorners      []CriticalCorner     `json:"criticalCorners"`
}

// SetupRecommendations summarizes how the current setup relates to the
// track-optimal one.
type SetupRecommendations struct {
	WingAngles        WingGuidance   `json:"wingAngles"`
	RideHeights       HeightGuidance `json:"rideHeights"`
	DragAnalysis      DeltaAnalysis  `json:"dragAnalysis"`
	DownforceAnalysis DeltaAnalysis  `json:"downforceAnalysis"`
	DownforceLevel    DownforceLevel `json:"downforceLevel"`
	Priority          string         `json:"priority"`
	KeyFocus          string         `json:"keyFocus"`
}

type WingGuidance struct {
	FrontOptimal     float64 `json:"frontOptimal"` // degrees
	RearOptimal      float64 `json:"rearOptimal"`
	FrontCurrent     float64 `json:"frontCurrent"`
	RearCurrent      float64 `json:"rearCurrent"`
	AdjustmentNeeded bool    `json:"adjustmentNeeded"`
}

type HeightGuidance struct {
	FrontOptimal float64 `json:"frontOptimal"` // mm
	RearOptimal  float64 `json:"rearOptimal"`
	Note         string  `json:"note"`
}

type DeltaAnalysis struct {
	Current float64 `json:"current"`
	Optimal float64 `json:"optimal"`
	Status  string  `json:"status"`
	Impact  string  `json:"impact"`
}

type CriticalCorner struct {
	CornerType     string `json:"cornerType"`
	Importance     string `json:"importance"`
	SpeedRange     string `json:"speedRange"`
	Downforce      string `json:"downforceRequirement"`
	Recommendation string `json:"setupRecommendation"`
	PhysicsNote    string `json:"physicsNote"`
	LaptimeImpact  string `json:"laptimeImpact"`
}

// BaselineComparison relates a predicted lap time to the 2024 reference.
type BaselineComparison struct {
	Available      bool    `json:"comparisonAvailable"`
	Baseline2024   string  `json:"baseline2024,omitempty"`
	Predicted      string  `json:"predicted,omitempty"`
	DeltaSeconds   float64 `json:"deltaSeconds,omitempty"`
	PercentageDiff float64 `json:"percentageDiff,omitempty"`
}

// PerformanceMetrics is the calibrated full-car performance estimate.
type PerformanceMetrics struct {
	TopSpeed            float64 `json:"topSpeed"`       // km/h
	AvgCornerSpeed      float64 `json:"avgCornerSpeed"` // km/h
	LDRatio             float64 `json:"ldRatio"`
	Acceleration0To100  float64 `json:"acceleration0To100Kmh"` // s
	Acceleration0To200  float64 `json:"acceleration0To200Kmh"` // s
	BrakingDist100To0   float64 `json:"brakingDistance100To0"` // m
	BrakingDist200To0   float64 `json:"brakingDistance200To0"` // m
	OverallBalance      float64 `json:"overallBalance"`        // % front bias
	AeroEfficiency      float64 `json:"aeroEfficiency"`        // 0-1
	StraightPerformance float64 `json:"straightLinePerformance"`
	CornerPerformance   float64 `json:"cornerPerformance"`
	TireStressFactor    float64 `json:"tireStressFactor"`
	FuelEfficiency      float64 `json:"fuelEfficiency"`
}
