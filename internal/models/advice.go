package models

type CropSuggestion struct {
	Name                string `json:"name"`
	SowingSeason        string `json:"sowing_season"`
	WaterRequirements   string `json:"water_requirements"`
	SoilSuitability     string `json:"soil_suitability"`
	PotentialYield      string `json:"potential_yield"`
	CommonPestsDiseases string `json:"common_pests_diseases"`
}

type FarmingAdvice struct {
	WeatherSummary  string           `json:"weather_summary"`
	CropSuggestions []CropSuggestion `json:"crop_suggestions"`
}

const (
	MinCropSuggestions = 3
	MaxCropSuggestions = 5
)
