// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress defines the events emitted while a script runs and the
// reporter that turns them into the human readable diagnostic stream.
package progress
