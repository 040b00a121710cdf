// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL sticks to the subset shared by PostgreSQL and SQLite, so the same
schema backs production (lib/pq) and local development or tests
(modernc.org/sqlite).

# Tables

  - journal_entries: journal text, classified emotion, analysis, timestamp
  - habits: tracked habits
  - habit_completions: one row per habit per completed day
  - mood_entries: one mood log per calendar day

# Relationships

	habits 1──* habit_completions

The foreign key uses ON DELETE CASCADE.

# Unique Keys

  - habit_completions.(habit_id, date): toggled on and off
  - mood_entries.date: upserted
*/
package db
