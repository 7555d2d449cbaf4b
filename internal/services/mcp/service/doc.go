// Package service assembles the MCP server: it wires the editor bridge
// client and the operation history into the domain tool handlers and runs
// the server over stdio or HTTP.
package service
