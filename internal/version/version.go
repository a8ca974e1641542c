package version

// Version is the released shoshin version. It is embedded in the CLI
// `--version` output and in troubleshooting links.
const Version = "0.3.0"
