package blazefx

import (
	_ "embed"
)

//go:embed VERSION
var Version string

//go:embed blazefx.toml
var DefaultConfig string

// Stylesheet holds the base animation rule and the keyframes for every kind.
//
//go:embed assets/blazefx.css
var Stylesheet string

// Script defines window.blazeFX, including applyAnimation.
//
//go:embed assets/blazefx.js
var Script string
