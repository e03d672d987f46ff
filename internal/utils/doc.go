// Package utils provides the low-level transport helpers the streaming
// client is built on: [DoPostStream] for opening an SSE request against a
// provider endpoint, [SSEScanner] for reading its events, and small string
// helpers for keeping error output readable.
package utils
