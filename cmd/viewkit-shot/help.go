// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The viewkit-shot command renders a demo view hierarchy offscreen and
writes the result as a PNG image.

Usage:

	viewkit-shot [flags]

The demo runs in a headless window through the same run loop as an
interactive application. The -tap flag, which may be repeated, taps the
window at a point given as x,y before the image is captured, so gestures
and button actions show up in the output.

The -config flag names a YAML file with launch options:

	title: Gallery
	size: {width: 360, height: 640}
	fps: 60

The -width and -height flags override the configured size.

The -o flag specifies the output file, "shot.png" by default. The -scale
flag resizes the captured image before it is encoded.

The -v flag enables debug logging. Logs are written to standard error as
text on a terminal and as JSON otherwise.
`
