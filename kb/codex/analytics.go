// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package codex

import "net/http"

// Version is the client library version reported to the API.
const Version = "0.1.0"

// analyticsSource identifies this client library to the service.
const analyticsSource = "remedy-go-sdk"

// DefaultIntegrationType is reported when no integration type is
// configured on the client.
const DefaultIntegrationType = "validator"

// setAnalyticsHeaders attaches integration metadata to every request so
// the service can attribute traffic to client integrations.
func setAnalyticsHeaders(h http.Header, integrationType string) {
	if integrationType == "" {
		integrationType = DefaultIntegrationType
	}
	h.Set("X-Integration-Type", integrationType)
	h.Set("X-Source", analyticsSource)
	h.Set("X-Client-Library-Version", Version)
}
