// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

Required:

  - DATABASE_URL (-d): database connection string

Optional:

  - PORT (-p): server port (default: 4180)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded by main before parsing.
*/
package cliparse
