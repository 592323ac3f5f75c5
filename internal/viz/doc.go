// Package viz is the terminal UI: a lesson menu and one lesson screen at a
// time, built on Bubble Tea.
//
//   - [App]: router between the menu and the mounted lesson
//   - [Canvas]: Braille canvas used for the bar view
//   - [Theme]: five colour schemes, cycled with t
//
// # Key Bindings
//
//	Enter  - Run (restart when done)
//	Space  - Pause/Resume
//	R      - Reset
//	[ ]    - Step back / step forward
//	+ -    - Speed
//	I      - Edit values
//	B      - Bars / cells
//	D      - Theory deck
//	P      - Next preset
//	Esc    - Back to the menu
package viz
