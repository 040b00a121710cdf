// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides request authentication and ID generation utilities.

# API Token

The server is a single-user tool. When API_TOKEN is configured, every
request must carry it as a bearer token:

	Authorization: Bearer <token>

Extract and check it with:

	token, err := auth.BearerToken(r.Header.Get("Authorization"))
	err = auth.ValidateToken(token, cfg.APIToken)

The comparison is constant time (hmac.Equal). An empty configured token
disables the check.

# ID Generation

Row IDs are random UUIDv4 strings:

	id := auth.GenerateID()
	ok := auth.IsValidID(id)
*/
package auth
