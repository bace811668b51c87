package gemini

import "github.com/google/generative-ai-go/genai"

const AdvisorSystemInstruction = "You are an expert agricultural advisor for Indian farmers. " +
	"Provide concise, practical, and actionable advice. " +
	"Your response must be in JSON format conforming to the provided schema."

const FarmingAdvicePromptTemplate = `Based on the following query, provide farming advice: "%s"`

// FarmingAdviceSchema is the response contract: a weather summary and 3 to 5
// crop suggestions with every field required.
func FarmingAdviceSchema() *genai.Schema {
	str := func(description string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: description}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"weather_summary": str("A brief, one-paragraph summary of the likely weather conditions for the described region and season. " +
				"Mention temperature ranges, rainfall expectations, and humidity."),
			"crop_suggestions": {
				Type:        genai.TypeArray,
				Description: "A list of 3 to 5 suitable crop suggestions.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":                  str("The name of the crop."),
						"sowing_season":         str("The best time/season to sow this crop."),
						"water_requirements":    str("Description of the crop's water needs (e.g., low, medium, high, drought-resistant)."),
						"soil_suitability":      str("The type of soil best suited for this crop (e.g., loamy, sandy, clay)."),
						"potential_yield":       str("An estimated potential yield per acre or hectare."),
						"common_pests_diseases": str("A brief list of common pests or diseases that affect this crop."),
					},
					Required: []string{
						"name",
						"sowing_season",
						"water_requirements",
						"soil_suitability",
						"potential_yield",
						"common_pests_diseases",
					},
				},
			},
		},
		Required: []string{"weather_summary", "crop_suggestions"},
	}
}
