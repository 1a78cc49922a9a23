//go:build amd64 && !purego

package minmax

import (
	_ "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/generic"  // register scalar backend
	_ "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/registry" // initialize backend registry
	_ "github.com/cwbudde/algo-minmax/stats/minmax/internal/arch/vec128"   // register SSE2 backend
)
