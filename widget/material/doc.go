// SPDX-License-Identifier: Unlicense OR MIT

// Package material builds widgets styled after the Material Design
// palette and type scale.
//
// To use it, create a Theme and construct widgets from it:
//
//	th := material.NewTheme()
//	title := th.H5("Settings")
//	ok := material.Button(th, "OK")
package material
