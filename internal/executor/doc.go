// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package executor resolves a directive to a script and runs it as a child process.
//
// The executable is always <base dir><command>.sh, run with the directive parameter as
// its only argument and the environment of the current process. The caller blocks until
// the child has been reaped.
//
// A script that cannot be executed is reported the way a shell would see it: as a normal
// exit with status 127. The underlying error is kept in Result.LaunchErr.
package executor
