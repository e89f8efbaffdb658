// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

package model

// Services lists the endpoints a tenant exposes.
type Services struct {
	Search           string `json:"search,omitempty"`
	RenditionRequest string `json:"rendition_request,omitempty"`
}

// InstanceInfo describes the tenant instance behind /fotoweb/me.
type InstanceInfo struct {
	Services  Services `json:"services"`
	SearchURL string   `json:"searchURL"`
}
