// Package ui formats command line output: coloured status markers, share
// links, field errors and the ledger table.
//
// Colours come from fatih/color and are dropped when NO_COLOR is set or the
// output is not a terminal. Without colour some formatters add plain text
// decoration instead:
//
//	ui.Link.Sprint(url)       // no decoration
//	ui.Highlight.Sprint(id)   // 'single quotes'
//	ui.Muted.Sprint("none")   // (parentheses)
package ui
