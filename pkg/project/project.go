package project

// Name is the project name, used as the MCP server name.
const Name = "rdocs-mcp"

// Version is the project version, used as the MCP server version.
const Version = "0.2.0"
