// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-cookbook/models"
)

func renderBuildInfoLine(info models.AppBuildInfo) string {
	return helpStyle.Render("Cookbook " + info.Version + " (" + info.Date + ", " + info.Commit + ")")
}
