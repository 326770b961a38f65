// Package internal contains the shared infrastructure of the navigator
// frontends: logging, localization, theming, layout and icon rasterization.
// Types and functions in this package are not part of the public API.
package internal
