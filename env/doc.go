// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("FOTOWARE_HOST")

# Testing

The Reader interface allows injecting a fake in tests to avoid relying on
real environment variables:

	reader := env.MapReader{"FOTOWARE_HOST": "https://acme.fotoware.cloud"}
	cfg, err := config.FromEnv(reader)

# Design

Production code accepts an env.Reader; tests substitute a MapReader. This
keeps configuration loading deterministic under `go test` without touching
the process environment.
*/
package env
