// Package scene loads declarative layout scenes from TOML manifests and
// builds them into widget trees ready for a layout pass.
//
// A manifest has one [shell] table describing the root container and any
// number of [[control]] entries, each naming its parent (the shell by
// default):
//
//	[shell]
//	name   = "login"
//	width  = 360
//	height = 240
//
//	[shell.layout]
//	kind    = "grid"
//	columns = 2
//
//	[[control]]
//	name   = "user-label"
//	width  = 80
//	height = 20
//
//	[[control]]
//	name = "user-field"
//
//	[control.grid]
//	h_align = "fill"
//	grab_x  = true
//
// Containers declare a [control.layout] table selecting one of the five
// manager kinds (fill, row, grid, form, stack) with the manager's options;
// leaves may carry a [control.grid], [control.row], or [control.form] table
// matching their parent's manager. Form attachments reference sibling
// controls by name and may point forward in the file.
//
// [Load] reads and validates a manifest, [Scene.Build] turns it into a
// [Tree] of widgets with managers assigned and an initial layout pass done.
package scene
