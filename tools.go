//go:build tools
// +build tools

package sharedref

import (
	_ "github.com/matryer/moq"
	_ "github.com/mgechev/revive"
)
