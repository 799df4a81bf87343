package xfiles

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Keep a selection of file paths across shell invocations"
	MsgRootUse   = "xfiles [+ | - | ++ | --] [path...]"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrWorkDir    = "failed to resolve working directory: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimSpace(msgRootExampleRaw)
)
