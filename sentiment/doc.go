// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sentiment classifies journal entries with a language model.

One request per entry: BuildPrompt asks for a single emotion out of
models.Emotions plus a 2-3 sentence analysis as a JSON object. ParseReply
accepts bare JSON or JSON inside a markdown code fence.

	model, err := sentiment.NewModel(sentiment.Config{
		BaseURL: "https://api.x.ai/v1",
		Model:   "grok-2",
		APIKey:  os.Getenv("XAI_API_KEY"),
	})
	analyzer := sentiment.NewAnalyzer(model)
	result := analyzer.Analyze(ctx, "Went for a long walk, felt great.")

Analyze does not return errors. Transport failures, malformed JSON and
labels outside the allowed set all yield Fallback():

	{Emotion: "neutral", Analysis: "Unable to analyze sentiment. Please try again later."}
*/
package sentiment
