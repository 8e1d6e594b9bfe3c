// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strconv"

	units "github.com/docker/go-units"
)

// humanUnits are binary unit prefixes without the trailing "iB"
var humanUnits = []string{"", "K", "M", "G", "T", "P", "E"}

// humanize formats size in binary units with one decimal, e.g. "1.5K".
// Sizes below one KiB are printed as plain byte counts.
func humanize(size int64) string {
	if size < 1024 {
		return strconv.FormatInt(size, 10)
	}
	return units.CustomSize("%.1f%s", float64(size), 1024.0, humanUnits)
}
