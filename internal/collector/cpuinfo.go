package collector

import (
	"runtime"
	"strconv"

	"github.com/klauspost/cpuid/v2"

	"sysdash/internal/snapshot"
)

// gatherCPUInfo reports processor identification from CPUID. On
// platforms where the brand string is unavailable the fields fall back
// to runtime information rather than going missing.
func gatherCPUInfo() snapshot.Value {
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = snapshot.NA
	}

	features := snapshot.List{}
	for _, f := range cpuid.CPU.FeatureSet() {
		features = append(features, f)
	}

	return snapshot.Mapping{
		{Key: "brand_raw", Value: brand},
		{Key: "arch", Value: runtime.GOARCH},
		{Key: "bits", Value: int64(strconv.IntSize)},
		{Key: "count", Value: int64(runtime.NumCPU())},
		{Key: "features", Value: features},
	}
}
