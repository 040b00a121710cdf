// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Mindful API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, analyzer)

# Endpoints

Health:

	GET /health

Journal:

	POST   /journal      - Analyze and save an entry
	GET    /journal      - List entries, newest first
	GET    /journal/{id} - Get one entry
	DELETE /journal/{id} - Delete an entry
	POST   /analyze      - Sentiment only, nothing stored

Habits:

	GET    /habits             - List habits with completed dates
	POST   /habits             - Create habit
	POST   /habits/seed        - Insert default habits into an empty table
	GET    /habits/{id}        - Get habit
	PUT    /habits/{id}        - Update habit
	DELETE /habits/{id}        - Delete habit and its completions
	POST   /habits/{id}/toggle - Toggle completion for a day

Moods:

	GET /moods        - List moods, oldest first
	GET /moods/{date} - Get the mood for a day
	PUT /moods/{date} - Create or replace the mood for a day

Authentication and CORS wrap the whole mux in main.
*/
package router
