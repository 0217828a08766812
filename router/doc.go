// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the roll store server.

# Routes

	GET  /health - health check
	GET  /exec   - read actions (getMetadata, search, searchByName, checkAadhar)
	POST /exec   - mutation actions (save, delete)
	GET  /       - API banner

Requests pass through request-ID and logging middleware; the whole mux is
wrapped in CORS for browser entry clients.
*/
package router
