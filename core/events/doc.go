// Package events defines the payloads exchanged on the internal event
// bus between the transport listener and observers.
package events
