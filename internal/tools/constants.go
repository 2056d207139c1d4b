package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "rdocs."

// Tool names
const (
	ToolDescribe   = ToolPrefix + "describe"
	ToolGetFullDoc = ToolPrefix + "get_full_doc"
	ToolSearch     = ToolPrefix + "search"
)
