// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scriptsource opens the script a run reads its directives from.
//
// Plain paths are opened through an afero filesystem so tests can swap it out.
// Anything that looks like a go-getter source, for example
// git::https://github.com/org/repo//scripts/chain.txt?ref=v1, is downloaded first.
// See https://github.com/hashicorp/go-getter.
package scriptsource
