// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: request start/completion logging with duration
  - WithRequestID: X-Request-ID propagation (generated when absent)
  - CORS: cross-origin headers for the browser entry client

# JSON Helpers

  - JSONResponse: write a JSON body with status code
  - ErrorResponse: write the uniform {success:false, error} failure shape
  - ParseJSONBody: decode a request body into a struct

The query interface reports failures in-body rather than relying on HTTP
status alone, so ErrorResponse always carries the models.ErrorResponse
shape.
*/
package middleware
