// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cpuinfo captures a one-shot snapshot of CPU identity and cache
// topology, for attaching to benchmark result records.
package cpuinfo

import "github.com/klauspost/cpuid/v2"

// unknownAssociativity is reported when the probing library does not expose
// a cache's associativity. -1 is used rather than 0, which would read as "a
// real, measured associativity of zero."
const unknownAssociativity = -1

// CacheLevel describes one level of the cache hierarchy.
type CacheLevel struct {
	Size          int `json:"size"`
	Associativity int `json:"associativity"`
	LineSize      int `json:"line_size"`
}

// Info is a snapshot of the host CPU's identity and cache topology.
type Info struct {
	Vendor         string     `json:"vendor"`
	Uarch          string     `json:"uarch"`
	L1ICache       CacheLevel `json:"l1iCache"`
	L1DCache       CacheLevel `json:"l1dCache"`
	L2Cache        CacheLevel `json:"l2Cache"`
	L3Cache        CacheLevel `json:"l3Cache"`
	CoresPerSocket int        `json:"coresPerSocket"`
}

// Probe queries the running process's CPU once and returns its topology.
// cpuid.CPU is populated at package init time by the cpuid library itself;
// this call only shapes it into the result schema.
func Probe() Info {
	c := cpuid.CPU

	lineSize := c.CacheLine
	if lineSize <= 0 {
		lineSize = 64
	}

	return Info{
		Vendor:         c.VendorString,
		Uarch:          uarchString(c),
		L1ICache:       CacheLevel{Size: c.Cache.L1I, Associativity: unknownAssociativity, LineSize: lineSize},
		L1DCache:       CacheLevel{Size: c.Cache.L1D, Associativity: unknownAssociativity, LineSize: lineSize},
		L2Cache:        CacheLevel{Size: c.Cache.L2, Associativity: unknownAssociativity, LineSize: lineSize},
		L3Cache:        CacheLevel{Size: c.Cache.L3, Associativity: unknownAssociativity, LineSize: lineSize},
		CoresPerSocket: c.PhysicalCores,
	}
}

// uarchString prefers the microarchitecture name; falls back to the brand
// string when cpuid cannot classify the microarchitecture (e.g. on non-x86
// hosts or unrecognized steppings).
func uarchString(c cpuid.CPUInfo) string {
	if u := c.Microarchitecture(); u != cpuid.UarchUnknown {
		return u.String()
	}
	return c.BrandName
}
