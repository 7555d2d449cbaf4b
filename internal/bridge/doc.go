// Package bridge is the HTTP client for the Python listener running inside
// the Unreal Editor. Commands are JSON documents posted to the listener,
// which executes them on the game thread and replies with a JSON result.
package bridge
