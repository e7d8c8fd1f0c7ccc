package catalog

// tableCatalog is a read-only slice-backed catalog.
type tableCatalog []ModelInfo

func (t tableCatalog) Lookup(modelID, provider string) (ModelInfo, bool) {
	for _, m := range t {
		if m.ID == modelID && (provider == "" || m.Provider == provider) {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// openaiModels lists the supported OpenAI models.
var openaiModels = []ModelInfo{
	{
		ID:               "gpt-4o-mini",
		Name:             "GPT-4o Mini",
		Provider:         "openai",
		ContextWindow:    128000,
		MaxOutputTokens:  16384,
		InputPricePer1M:  0.15,
		OutputPricePer1M: 0.60,
	},
	{
		ID:               "gpt-4o",
		Name:             "GPT-4o",
		Provider:         "openai",
		ContextWindow:    128000,
		MaxOutputTokens:  16384,
		InputPricePer1M:  2.50,
		OutputPricePer1M: 10.00,
	},
	{
		ID:               "gpt-4-turbo",
		Name:             "GPT-4 Turbo",
		Provider:         "openai",
		ContextWindow:    128000,
		MaxOutputTokens:  4096,
		InputPricePer1M:  10.00,
		OutputPricePer1M: 30.00,
	},
	{
		ID:               "gpt-3.5-turbo",
		Name:             "GPT-3.5 Turbo",
		Provider:         "openai",
		ContextWindow:    16385,
		MaxOutputTokens:  4096,
		InputPricePer1M:  0.50,
		OutputPricePer1M: 1.50,
	},
}

// anthropicModels lists the supported Anthropic models.
var anthropicModels = []ModelInfo{
	{
		ID:               "claude-sonnet-4-20250514",
		Name:             "Claude Sonnet 4",
		Provider:         "anthropic",
		ContextWindow:    200000,
		MaxOutputTokens:  8192,
		InputPricePer1M:  3.00,
		OutputPricePer1M: 15.00,
	},
	{
		ID:               "claude-haiku-4-20250414",
		Name:             "Claude Haiku 4",
		Provider:         "anthropic",
		ContextWindow:    200000,
		MaxOutputTokens:  8192,
		InputPricePer1M:  0.80,
		OutputPricePer1M: 4.00,
	},
	{
		ID:               "claude-3-5-sonnet-20241022",
		Name:             "Claude 3.5 Sonnet",
		Provider:         "anthropic",
		ContextWindow:    200000,
		MaxOutputTokens:  8192,
		InputPricePer1M:  3.00,
		OutputPricePer1M: 15.00,
	},
}

// geminiModels lists the supported Google models, including the
// open-weight Gemma family served through the Gemini API.
var geminiModels = []ModelInfo{
	{
		ID:               "gemini-2.0-flash",
		Name:             "Gemini 2.0 Flash",
		Provider:         "gemini",
		ContextWindow:    1048576,
		MaxOutputTokens:  8192,
		InputPricePer1M:  0.10,
		OutputPricePer1M: 0.40,
	},
	{
		ID:               "gemini-2.5-pro",
		Name:             "Gemini 2.5 Pro",
		Provider:         "gemini",
		ContextWindow:    1048576,
		MaxOutputTokens:  65536,
		InputPricePer1M:  1.25,
		OutputPricePer1M: 10.00,
	},
	{
		ID:               "gemini-2.5-flash",
		Name:             "Gemini 2.5 Flash",
		Provider:         "gemini",
		ContextWindow:    1048576,
		MaxOutputTokens:  65536,
		InputPricePer1M:  0.15,
		OutputPricePer1M: 0.60,
	},
	{
		ID:               "gemma-3-27b-it",
		Name:             "Gemma 3 27B",
		Provider:         "gemini",
		ContextWindow:    131072,
		MaxOutputTokens:  8192,
		InputPricePer1M:  0.10,
		OutputPricePer1M: 0.30,
	},
	{
		ID:               "gemma-3-12b-it",
		Name:             "Gemma 3 12B",
		Provider:         "gemini",
		ContextWindow:    131072,
		MaxOutputTokens:  8192,
		InputPricePer1M:  0.08,
		OutputPricePer1M: 0.20,
	},
	{
		ID:               "gemma-3-4b-it",
		Name:             "Gemma 3 4B",
		Provider:         "gemini",
		ContextWindow:    131072,
		MaxOutputTokens:  8192,
		InputPricePer1M:  0.05,
		OutputPricePer1M: 0.10,
	},
	{
		ID:               "gemma-3-1b-it",
		Name:             "Gemma 3 1B",
		Provider:         "gemini",
		ContextWindow:    32768,
		MaxOutputTokens:  8192,
		InputPricePer1M:  0.02,
		OutputPricePer1M: 0.05,
	},
	{
		ID:               "gemma-3n-e4b-it",
		Name:             "Gemma 3n E4B",
		Provider:         "gemini",
		ContextWindow:    32768,
		MaxOutputTokens:  8192,
		InputPricePer1M:  0.02,
		OutputPricePer1M: 0.05,
	},
}

// copilotModels lists models reachable through a GitHub Copilot
// subscription. Per-token prices are zero; access is subscription-based.
var copilotModels = []ModelInfo{
	{
		ID:              "gpt-4o-mini",
		Name:            "GPT-4o Mini (Copilot)",
		Provider:        "copilot",
		ContextWindow:   128000,
		MaxOutputTokens: 16384,
	},
	{
		ID:              "gpt-4o",
		Name:            "GPT-4o (Copilot)",
		Provider:        "copilot",
		ContextWindow:   128000,
		MaxOutputTokens: 16384,
	},
	{
		ID:              "gpt-4-turbo",
		Name:            "GPT-4 Turbo (Copilot)",
		Provider:        "copilot",
		ContextWindow:   128000,
		MaxOutputTokens: 4096,
	},
	{
		ID:              "claude-sonnet-4",
		Name:            "Claude Sonnet 4 (Copilot)",
		Provider:        "copilot",
		ContextWindow:   200000,
		MaxOutputTokens: 8192,
	},
	{
		ID:              "claude-haiku-4",
		Name:            "Claude Haiku 4 (Copilot)",
		Provider:        "copilot",
		ContextWindow:   200000,
		MaxOutputTokens: 8192,
	},
	{
		ID:              "o3-mini",
		Name:            "o3-mini (Copilot)",
		Provider:        "copilot",
		ContextWindow:   128000,
		MaxOutputTokens: 16384,
	},
	{
		ID:              "gemini-2.0-flash",
		Name:            "Gemini 2.0 Flash (Copilot)",
		Provider:        "copilot",
		ContextWindow:   1048576,
		MaxOutputTokens: 8192,
	},
}

// builtin is the combined model table, in lookup order.
var builtin = func() tableCatalog {
	var t tableCatalog
	t = append(t, openaiModels...)
	t = append(t, anthropicModels...)
	t = append(t, geminiModels...)
	t = append(t, copilotModels...)
	return t
}()

// Builtin returns the built-in model catalog. The returned catalog is
// read-only and safe for concurrent use.
func Builtin() Catalog {
	return builtin
}

// ModelsForProvider returns the built-in models for a provider, in
// catalog order. Unknown providers yield an empty slice.
func ModelsForProvider(provider string) []ModelInfo {
	var out []ModelInfo
	for _, m := range builtin {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out
}
