// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package directive parses script lines of the form
//
//	<command1>=<param1>;<command2>=<param2>
//
// into at most two directives. Neither ';' nor '=' can be escaped, so a parameter
// containing either character is split at it.
package directive
