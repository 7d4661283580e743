// Copyright (c) 2025 CinemaSeatReservation
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"
)

// PresentError formats an error for operator display. The context prefix is
// optional; multi-line diagnostics are indented so aggregated attempt lists
// stay readable under the message that introduces them.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	text := strings.ReplaceAll(err.Error(), "\n", "\n   ")
	if context == "" {
		return text
	}
	return fmt.Sprintf("%s: %s", context, text)
}
