//go:build purego || !(amd64 || arm64)

package minmax

import (
	_ "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/generic"
	_ "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/registry"
)
