package config

import (
	_ "embed"
)

//go:embed defaults/hanoi.yaml
var defaultYAML []byte
