package tables

// Weight profile names
const (
	DefaultWeightProfile = "default"
	ClientFocusedProfile = "client_focused"
	QualityFocusedProfile = "quality_focused"
)

// Competition levels
const (
	CompetitionLow    = "low"
	CompetitionMedium = "medium"
	CompetitionHigh   = "high"
)

// Provider skill levels
const (
	SkillJunior = "junior"
	SkillMedium = "medium"
	SkillSenior = "senior"
	SkillExpert = "expert"
)

// Default returns the compiled-in engine configuration
func Default() *Tables {
	return &Tables{
		WeightProfiles: map[string]ScoringWeights{
			DefaultWeightProfile: {
				Price:                 0.25,
				Quality:               0.20,
				Fit:                   0.20,
				Delay:                 0.15,
				Risk:                  0.10,
				CompletionProbability: 0.10,
			},
			ClientFocusedProfile: {
				Price:                 0.35,
				Quality:               0.25,
				Fit:                   0.15,
				Delay:                 0.15,
				Risk:                  0.05,
				CompletionProbability: 0.05,
			},
			QualityFocusedProfile: {
				Price:                 0.15,
				Quality:               0.30,
				Fit:                   0.25,
				Delay:                 0.10,
				Risk:                  0.10,
				CompletionProbability: 0.10,
			},
		},
		Pricing: PricingTables{
			ComplexityHourlyRates: map[string]float64{
				"low":    35,
				"medium": 50,
				"high":   70,
			},
			CompetitionMultipliers: map[string]float64{
				CompetitionLow:    1.1,
				CompetitionMedium: 0.95,
				CompetitionHigh:   0.85,
			},
			SkillMultipliers: map[string]float64{
				SkillJunior: 0.8,
				SkillMedium: 1.0,
				SkillSenior: 1.2,
				SkillExpert: 1.4,
			},
			CategoryBasePrices: map[string]map[string]BasePrice{
				"web_development": {
					"simple":  {Min: 150000, Med: 300000, Max: 500000, Days: 21},
					"medium":  {Min: 300000, Med: 600000, Max: 900000, Days: 35},
					"complex": {Min: 600000, Med: 1200000, Max: 2000000, Days: 56},
				},
				"mobile_development": {
					"simple":  {Min: 250000, Med: 500000, Max: 800000, Days: 28},
					"medium":  {Min: 500000, Med: 1000000, Max: 1500000, Days: 42},
					"complex": {Min: 1000000, Med: 2000000, Max: 3500000, Days: 70},
				},
				"design_graphique": {
					"simple":  {Min: 50000, Med: 120000, Max: 200000, Days: 7},
					"medium":  {Min: 120000, Med: 250000, Max: 400000, Days: 14},
					"complex": {Min: 250000, Med: 500000, Max: 800000, Days: 21},
				},
				"marketing_digital": {
					"simple":  {Min: 80000, Med: 180000, Max: 300000, Days: 14},
					"medium":  {Min: 180000, Med: 400000, Max: 700000, Days: 28},
					"complex": {Min: 400000, Med: 800000, Max: 1500000, Days: 42},
				},
				"construction": {
					"simple":  {Min: 200000, Med: 500000, Max: 800000, Days: 14},
					"medium":  {Min: 500000, Med: 1200000, Max: 2000000, Days: 28},
					"complex": {Min: 1200000, Med: 3000000, Max: 6000000, Days: 56},
				},
				"services_personne": {
					"simple":  {Min: 2000, Med: 4000, Max: 6000, Days: 1},
					"medium":  {Min: 4000, Med: 8000, Max: 12000, Days: 2},
					"complex": {Min: 8000, Med: 15000, Max: 25000, Days: 3},
				},
			},
			CategoryAliases: map[string]string{
				"developpement":   "web_development",
				"web-development": "web_development",
				"mobile":          "mobile_development",
				"design":          "design_graphique",
				"marketing":       "marketing_digital",
				"construction":    "construction",
				"travaux":         "construction",
				"plomberie":       "construction",
				"electricite":     "construction",
				"menage":          "services_personne",
				"garde_enfants":   "services_personne",
				"jardinage":       "services_personne",
			},
			FallbackCategory: "web_development",
			AdjustmentFactors: map[string]map[string]float64{
				"urgency": {
					"urgent":   1.3,
					"normal":   1.0,
					"flexible": 0.9,
				},
				"location": {
					"paris":        1.2,
					"grande_ville": 1.1,
					"petite_ville": 0.9,
				},
				"client_type": {
					"entreprise":  1.1,
					"association": 0.85,
				},
				"quality_requirement": {
					"premium": 1.4,
					"budget":  0.7,
				},
			},
			ComplexityKeywords: map[string][]string{
				"simple":  {"simple", "basique", "standard", "classique"},
				"medium":  {"personnalisé", "spécifique", "adapté", "intégration"},
				"complex": {"complexe", "avancé", "sur-mesure", "architecture", "scalable", "enterprise"},
			},
			ComplexityIndicators: map[string][]string{
				"integrations":    {"api", "intégration", "webhook", "sync"},
				"custom_features": {"personnalisé", "spécifique", "unique"},
				"technical_terms": {"architecture", "scalable", "performance", "sécurité"},
				"platforms":       {"ios", "android", "web", "desktop"},
			},
			UrgencyKeywords: map[string][]string{
				"urgent":   {"urgent", "rapide", "vite", "asap", "pressé", "immédiat"},
				"flexible": {"flexible", "pas pressé", "quand possible"},
			},
			ClientTypeKeywords: map[string][]string{
				"entreprise":  {"entreprise", "société", "business", "corporate"},
				"association": {"association", "ong", "bénévole"},
			},
			QualityKeywords: map[string][]string{
				"premium": {"premium", "haut de gamme", "luxe", "excellence"},
				"budget":  {"budget", "économique", "pas cher"},
			},
			BigCities: []string{"lyon", "marseille", "lille", "toulouse", "bordeaux"},
		},
	}
}
