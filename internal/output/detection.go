// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package output

import "strings"

var detectionBreaks = strings.NewReplacer(
	"&&", "\n  &&",
	"||", "\n  ||",
	"],", "],\n  ",
)

// FormatDetection breaks a single-line detection before every boolean
// operator and after every closing list so that it reads top to bottom.
func FormatDetection(detection string) string {
	return detectionBreaks.Replace(detection)
}
