package version

const Version = "1.0.0"

// ProtocolVersion is the default MCP protocol revision offered when the
// client requests one the server does not know.
const ProtocolVersion = "2024-11-05"

var SupportedProtocolVersions = []string{
	"2025-06-18",
	"2025-03-26",
	"2024-11-05",
}
