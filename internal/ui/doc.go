// Package ui provides semantic text formatting for gsw output.
//
// Formatters render content by meaning (profile names, emails, paths,
// commands) and fall back to plain text decorations when colors are
// unavailable, so output stays readable in logs and under NO_COLOR.
//
//	ui.Profile.Sprint("work")          // cyan, or 'work' without color
//	ui.Email.Sprint("jane@acme.com")   // green, or <jane@acme.com> without color
//	ui.Code.Sprint("gsw init work")    // yellow, or `gsw init work` without color
//
// Line helpers print a status mark followed by a message:
//
//	ui.Successf(w, "Switched to profile %s globally", ui.Profile.Sprint(name))
//	ui.Failf(w, "Profile %s not found", ui.Profile.Sprint(name))
//
// Colors are disabled when NO_COLOR is set or the terminal does not support
// them (fatih/color detection).
package ui
