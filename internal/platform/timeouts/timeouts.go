// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StoreQuery caps a single storage round trip made on behalf of a request.
const StoreQuery = 3 * time.Second

// CountFetch caps the arcade's count request against the club API.
const CountFetch = 4 * time.Second

// WebsocketWrite caps a single arcade frame write to a websocket peer.
const WebsocketWrite = 2 * time.Second

// NoticeRevert is how long a transient failure notice stays visible before
// the previous label comes back.
const NoticeRevert = 3 * time.Second
