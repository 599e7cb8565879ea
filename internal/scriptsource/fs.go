// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scriptsource

import "github.com/spf13/afero"

// FsFactory returns the filesystem local scripts are opened from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
