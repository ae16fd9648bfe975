// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import "errors"

var (
	ErrLoadEML        = errors.New("could not load EML")
	ErrLoadMSG        = errors.New("could not load MSG")
	ErrLoadMBOX       = errors.New("could not load MBOX")
	ErrLoadMDM        = errors.New("could not load MDM")
	ErrLoadDetections = errors.New("could not load detections")
	ErrNoDetections   = errors.New("no detections/queries found")
)
