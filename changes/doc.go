// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

// Package changes queues asset mutations (metadata updates, moves,
// uploads) and commits them against the API in one pass. Rejected changes
// stay queued for inspection and retry; moves and uploads run server-side
// in the background and can be followed up with CheckSubmitted.
package changes
