// Package domain defines the MCP tool surface of the editor bridge: input
// and result schemas, tool constructors, and the handlers that dispatch
// commands to the in-editor listener while recording them on the operation
// history timeline.
package domain
