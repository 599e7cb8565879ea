// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package chain drives a script through the directive parser and the executor.
//
// Lines are processed strictly one after another. On each line the first directive
// runs, and the second runs only if the first succeeded. Nothing is carried from one
// line to the next.
package chain
