// Package widgets contains the host side of masked text entry: TextField owns
// a text buffer and caret and routes every keystroke through a mask formatter,
// TextFieldView decorates a field with a title, an error label, icons and
// state-driven styling, and Container provides the layout-loaded frame both
// are drawn in. Registry picks and builds the right view for a field
// declaration.
//
// Widgets are driven from a single event loop and are not safe for
// concurrent use.
package widgets
