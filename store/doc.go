// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the data-access functions for journal entries, habits
and mood entries.

	s := store.New(conn)
	entry, err := s.SaveJournalEntry(ctx, models.JournalEntry{...})

Queries use $N placeholders and ON CONFLICT, which PostgreSQL (lib/pq) and
SQLite (modernc.org/sqlite) both accept.

# Keyed Writes

  - SaveMoodEntry upserts on mood_entries.date in a single statement
  - ToggleHabitCompletion deletes the (habit, date) completion if present and
    inserts it otherwise, inside one transaction
  - SeedDefaultHabits only writes when the habits table is empty

# Errors

Lookups of missing rows return ErrNotFound. Validation failures wrap
ErrInvalid. Everything else is a wrapped driver error.
*/
package store
