//go:build arm64 && !purego

package minmax

import (
	_ "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/generic"
	_ "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/registry"
	_ "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/vec128"
)
