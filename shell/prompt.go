// Copyright © 2025 Scrollsh contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/prompt.go
// Summary: Prompt formatting and user/host resolution with fixed fallbacks.

package shell

import (
	"fmt"
	"os"
	"os/user"
)

const (
	fallbackUser = "user"
	fallbackHost = "host"
)

// FormatPrompt renders the input prompt for the given identity and
// directory: "user@host(dir): ".
func FormatPrompt(userName, host, dir string) string {
	return fmt.Sprintf("%s@%s(%s): ", userName, host, dir)
}

// CurrentUser returns the login name, or a fixed placeholder when it
// cannot be resolved.
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return fallbackUser
}

// CurrentHost returns the hostname, or a fixed placeholder.
func CurrentHost() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return fallbackHost
}
