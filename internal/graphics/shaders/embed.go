// Package shaders embeds the GLSL sources used by the viewer.
package shaders

import _ "embed"

//go:embed skin.vert
var SkinVert string

//go:embed skin.frag
var SkinFrag string
